package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"damafashion/cli/internal/inventory"
)

type fakeSession struct {
	ready chan struct{}
	user  *inventory.User
}

func (f *fakeSession) Ready() <-chan struct{}  { return f.ready }
func (f *fakeSession) IsAuthenticated() bool   { return f.user != nil }
func (f *fakeSession) CurrentUser() (inventory.User, bool) {
	if f.user == nil {
		return inventory.User{}, false
	}
	return *f.user, true
}

func resolvedSession(u *inventory.User) *fakeSession {
	ready := make(chan struct{})
	close(ready)
	return &fakeSession{ready: ready, user: u}
}

type recNav struct {
	logins     int
	dashboards int
}

func (n *recNav) ToLogin()     { n.logins++ }
func (n *recNav) ToDashboard() { n.dashboards++ }

func testCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{Use: "x"}
	cmd.SetContext(ctx)
	return cmd
}

func TestGuardBlocksWhileSessionLoading(t *testing.T) {
	// Readiness never arrives: the guard must not run the handler and must
	// not redirect, regardless of what the state would have been.
	sess := &fakeSession{ready: make(chan struct{}), user: &inventory.User{Username: "ana"}}
	nav := &recNav{}
	g := New(sess, nav)

	ran := false
	handler := g.Require(func(cmd *cobra.Command, args []string) error {
		ran = true
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := handler(testCmd(ctx), nil)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if ran {
		t.Fatal("handler ran while session was loading")
	}
	if nav.logins != 0 || nav.dashboards != 0 {
		t.Fatal("redirect decision made while session was loading")
	}
}

func TestRequireMatrix(t *testing.T) {
	user := &inventory.User{ID: 1, Username: "ana", Role: inventory.RoleUser}
	admin := &inventory.User{ID: 2, Username: "root", Role: inventory.RoleAdmin}

	tests := []struct {
		name       string
		user       *inventory.User
		admin      bool
		wantErr    error
		wantRun    bool
		wantLogin  int
		wantDash   int
	}{
		{name: "anonymous denied", user: nil, wantErr: ErrNotAuthenticated, wantLogin: 1},
		{name: "user allowed", user: user, wantRun: true},
		{name: "admin allowed", user: admin, wantRun: true},
		{name: "admin guard denies anonymous", user: nil, admin: true, wantErr: ErrNotAuthenticated, wantLogin: 1},
		{name: "admin guard denies USER role", user: user, admin: true, wantErr: ErrForbidden, wantDash: 1},
		{name: "admin guard allows ADMIN role", user: admin, admin: true, wantRun: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := &recNav{}
			g := New(resolvedSession(tt.user), nav)

			ran := false
			next := func(cmd *cobra.Command, args []string) error {
				ran = true
				return nil
			}
			handler := g.Require(next)
			if tt.admin {
				handler = g.RequireAdmin(next)
			}

			err := handler(testCmd(context.Background()), nil)

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && err != nil {
				t.Fatalf("err = %v", err)
			}
			if ran != tt.wantRun {
				t.Fatalf("ran = %v, want %v", ran, tt.wantRun)
			}
			if nav.logins != tt.wantLogin || nav.dashboards != tt.wantDash {
				t.Fatalf("nav = %+v", nav)
			}
		})
	}
}
