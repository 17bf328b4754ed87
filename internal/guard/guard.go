// Package guard gates command execution on session state, the CLI analogue
// of a protected route. A guard never makes an access decision while the
// session is still resolving: it blocks on the controller's readiness signal
// first, showing only a loading indicator. Unauthenticated visitors are sent
// to the login screen; authenticated but under-privileged ones to the
// dashboard.
package guard

import (
	"context"
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"damafashion/cli/internal/inventory"
)

// ErrNotAuthenticated is returned when a guarded command runs without a
// session.
var ErrNotAuthenticated = errors.New("not authenticated: run 'dama login' first")

// ErrForbidden is returned when a command needs ADMIN and the session user
// is not one.
var ErrForbidden = errors.New("admin privileges required")

// Session is the read-only slice of the session controller guards consume.
type Session interface {
	Ready() <-chan struct{}
	IsAuthenticated() bool
	CurrentUser() (inventory.User, bool)
}

// Navigator performs the redirects for denied access.
type Navigator interface {
	ToLogin()
	ToDashboard()
}

// Guard wraps command handlers with an access predicate.
type Guard struct {
	sess Session
	nav  Navigator
}

// New returns a Guard over the given session and navigator.
func New(sess Session, nav Navigator) *Guard {
	return &Guard{sess: sess, nav: nav}
}

// Require wraps next so it only runs for an authenticated session.
func (g *Guard) Require(next func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := g.wait(cmd.Context()); err != nil {
			return err
		}
		if !g.sess.IsAuthenticated() {
			g.nav.ToLogin()
			return ErrNotAuthenticated
		}
		return next(cmd, args)
	}
}

// RequireAdmin wraps next so it only runs for an authenticated ADMIN.
func (g *Guard) RequireAdmin(next func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := g.wait(cmd.Context()); err != nil {
			return err
		}
		u, ok := g.sess.CurrentUser()
		if !ok {
			g.nav.ToLogin()
			return ErrNotAuthenticated
		}
		if u.Role != inventory.RoleAdmin {
			g.nav.ToDashboard()
			return ErrForbidden
		}
		return next(cmd, args)
	}
}

// wait blocks until the session has resolved, rendering nothing but a
// loading indicator in the meantime. No redirect decision is made while the
// session is loading.
func (g *Guard) wait(ctx context.Context) error {
	select {
	case <-g.sess.Ready():
		return nil
	default:
	}

	spinner, _ := pterm.DefaultSpinner.Start("Checking session...")
	defer func() {
		if spinner != nil {
			_ = spinner.Stop()
		}
	}()

	select {
	case <-g.sess.Ready():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
