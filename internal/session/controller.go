// Package session owns the in-memory session state for the CLI: the current
// user, the loading flag, and the transitions between anonymous and
// authenticated. It is the single source of truth the guards consume.
// Navigation is delegated to a Navigator so the core stays free of any
// rendering concern.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"damafashion/cli/internal/credstore"
	"damafashion/cli/internal/inventory"
)

// State is the session lifecycle position.
type State int

const (
	StateUninitialized State = iota
	StateRestoring
	StateAuthenticated
	StateAnonymous
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "uninitialized"
	}
}

// ErrSuperseded reports that a login attempt resolved after a newer one had
// already started; its result was discarded (last-started-wins).
var ErrSuperseded = errors.New("login superseded by a newer attempt")

// Navigator performs screen changes on behalf of the controller. The cmd
// layer supplies the terminal adapter.
type Navigator interface {
	ToLogin()
	ToDashboard()
}

// AuthAPI is the slice of the auth service the controller depends on.
// inventory.AuthService implements it.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (inventory.User, error)
}

// Controller is the session state machine. All mutation goes through
// Restore, Login, Logout, or HandleUnauthorized; guards and screens only
// read.
type Controller struct {
	mu      sync.Mutex
	state   State
	user    *inventory.User
	loading bool
	attempt uint64

	ready     chan struct{}
	readyOnce sync.Once

	auth   AuthAPI
	tokens credstore.Store
	nav    Navigator
	log    zerolog.Logger
}

// New returns a Controller in the uninitialized state. The loading flag
// starts true: until the first Restore, Login, or Logout resolves, guards
// must not trust IsAuthenticated.
func New(auth AuthAPI, tokens credstore.Store, nav Navigator, log zerolog.Logger) *Controller {
	return &Controller{
		state:   StateUninitialized,
		loading: true,
		ready:   make(chan struct{}),
		auth:    auth,
		tokens:  tokens,
		nav:     nav,
		log:     log,
	}
}

// Ready is closed once the first restore/login/logout has resolved. Guards
// block on it instead of polling the loading flag.
func (c *Controller) Ready() <-chan struct{} { return c.ready }

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentUser returns the authenticated user, if any.
func (c *Controller) CurrentUser() (inventory.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return inventory.User{}, false
	}
	return *c.user, true
}

// IsAuthenticated reports whether a user is present. Meaningless while
// IsLoading is true.
func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user != nil
}

// IsLoading reports whether the first session resolution is still in flight.
func (c *Controller) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Restore rehydrates the session from a persisted credential at startup.
// Without a token it settles Anonymous immediately, making no network call.
// With one it fetches the current user; any failure clears the credential
// and settles Anonymous. Restore never returns an error: at startup there is
// no caller positioned to handle one. A login or logout that resolves while
// the restore's user fetch is in flight supersedes it; the stale result is
// discarded without touching the store.
func (c *Controller) Restore(ctx context.Context) {
	c.mu.Lock()
	c.state = StateRestoring
	att := c.attempt
	c.mu.Unlock()

	if _, ok := c.tokens.Get(); !ok {
		c.settle(att, StateAnonymous, nil)
		return
	}

	u, err := c.auth.CurrentUser(ctx)

	c.mu.Lock()
	if c.attempt != att {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.log.Debug().Err(err).Msg("session restore failed, clearing credential")
		_ = c.tokens.Clear()
		c.user = nil
		c.state = StateAnonymous
	} else {
		c.user = &u
		c.state = StateAuthenticated
	}
	c.loading = false
	c.mu.Unlock()
	c.markReady()
}

// Login authenticates, stores the token, fetches the user, and navigates to
// the dashboard. On any failure the state is untouched, no partial token is
// retained, and the error is returned for the caller to display. When a
// newer attempt has started in the meantime the stale result is discarded
// and ErrSuperseded returned.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	c.mu.Lock()
	c.attempt++
	att := c.attempt
	c.mu.Unlock()

	token, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	// Credential is written before the user fetch so the authenticated
	// invariant holds the moment a user becomes visible.
	c.mu.Lock()
	if c.attempt != att {
		c.mu.Unlock()
		return ErrSuperseded
	}
	if err := c.tokens.Set(token); err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()

	u, err := c.auth.CurrentUser(ctx)

	c.mu.Lock()
	if c.attempt != att {
		// A newer attempt owns the credential store now; leave it alone.
		c.mu.Unlock()
		return ErrSuperseded
	}
	if err != nil {
		_ = c.tokens.Clear()
		c.mu.Unlock()
		return err
	}
	c.state = StateAuthenticated
	c.user = &u
	c.loading = false
	c.mu.Unlock()

	c.markReady()
	c.nav.ToDashboard()
	return nil
}

// Logout clears the credential and the in-memory user unconditionally, then
// navigates to the login screen. It is synchronous and cannot fail. Bumping
// the attempt counter supersedes any restore or login still in flight.
func (c *Controller) Logout() {
	c.mu.Lock()
	c.attempt++
	_ = c.tokens.Clear()
	c.user = nil
	c.state = StateAnonymous
	c.loading = false
	c.mu.Unlock()

	c.markReady()
	c.nav.ToLogin()
}

// HandleUnauthorized is the gateway's 401 hook: the credential store is
// already cleared by the time it fires, so only the in-memory session is
// dropped here before forcing navigation to the login screen.
func (c *Controller) HandleUnauthorized() {
	c.mu.Lock()
	c.attempt++
	c.user = nil
	c.state = StateAnonymous
	c.loading = false
	c.mu.Unlock()

	c.markReady()
	c.nav.ToLogin()
}

func (c *Controller) settle(att uint64, state State, u *inventory.User) {
	c.mu.Lock()
	if c.attempt != att {
		c.mu.Unlock()
		return
	}
	c.state = state
	c.user = u
	c.loading = false
	c.mu.Unlock()
	c.markReady()
}

func (c *Controller) markReady() {
	c.readyOnce.Do(func() { close(c.ready) })
}
