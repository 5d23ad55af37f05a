package auth

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/inkread/inkread/internal/model"
)

// Subscriber receives the new state and identity after each transition. The
// user pointer is nil while unauthenticated.
type Subscriber func(state model.AuthState, user *model.User)

// Controller is the application-wide authentication state machine. It lives
// for the process lifetime, owns all session store writes, and notifies
// subscribers only on actual transitions.
type Controller struct {
	mu          sync.RWMutex
	state       model.AuthState
	user        *model.User
	sessions    SessionStore
	api         Authenticator
	log         *logrus.Logger
	subscribers map[int]Subscriber
	nextSubID   int
}

// NewController creates the controller in the Checking state. Call Restore
// to run the startup probe.
func NewController(sessions SessionStore, api Authenticator, log *logrus.Logger) *Controller {
	return &Controller{
		state:       model.AuthStateChecking,
		sessions:    sessions,
		api:         api,
		log:         log,
		subscribers: make(map[int]Subscriber),
	}
}

// Restore resolves the startup probe. A persisted token yields the
// AuthenticatedUnverified state with a placeholder identity, since no
// profile endpoint exists to verify it against; otherwise the session is
// unauthenticated.
func (c *Controller) Restore() {
	if c.sessions.HasToken() {
		user := model.PlaceholderUser()
		c.transition(model.AuthStateAuthenticatedUnverified, &user)
		return
	}
	c.transition(model.AuthStateUnauthenticated, nil)
}

// Login authenticates, persists the token, and transitions to Authenticated.
// Errors propagate with the session left untouched.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	result, err := c.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.sessions.SetToken(result.Token)
	user := result.User
	c.transition(model.AuthStateAuthenticated, &user)
	return nil
}

// Register creates an account and immediately logs in with the same
// credentials. A failure in either step propagates and the state stays
// unauthenticated.
func (c *Controller) Register(ctx context.Context, username, email, password string) error {
	if err := c.api.Register(ctx, username, email, password); err != nil {
		return err
	}
	return c.Login(ctx, username, password)
}

// Logout always clears the local session. The remote call is best-effort:
// its failure is logged, never surfaced, and never blocks the local
// transition.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.api.Logout(ctx); err != nil {
		c.log.WithError(err).Warn("remote logout failed, clearing local session anyway")
	}

	c.sessions.Clear()
	c.transition(model.AuthStateUnauthenticated, nil)
}

// State returns the current authentication state.
func (c *Controller) State() model.AuthState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// CurrentUser returns a copy of the current identity, or nil while
// unauthenticated.
func (c *Controller) CurrentUser() *model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

// IsAuthenticated is derived from identity presence, never an independent
// flag that could desynchronize from it.
func (c *Controller) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil
}

// Subscribe registers a transition listener and returns its unsubscribe
// function.
func (c *Controller) Subscribe(fn Subscriber) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

func (c *Controller) transition(state model.AuthState, user *model.User) {
	c.mu.Lock()
	if state == c.state && sameIdentity(user, c.user) {
		c.mu.Unlock()
		return
	}
	c.state = state
	c.user = user

	subs := make([]Subscriber, 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(state, user)
	}
}

func sameIdentity(a, b *model.User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && a.Username == b.Username
}
