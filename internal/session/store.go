package session

import (
	"context"
	"sync"

	"github.com/basketeer/basketeer/internal/api"
	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/log"
)

// State is the session lifecycle state
type State int

const (
	// StateUninitialized is the state before Initialize has run
	StateUninitialized State = iota
	// StateLoading is the state while a persisted token is being validated
	StateLoading
	// StateAnonymous is a resolved session without a user
	StateAnonymous
	// StateAuthenticated is a resolved session with a trusted user
	StateAuthenticated
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Listener is notified after every resolved state transition
type Listener func(State)

// Store owns the session: the bearer token, the current user, and the
// user's permission set. The user is never populated without a token, and
// identity never changes without passing through anonymous first.
//
// The store registers itself as the API client's unauthorized handler, so
// a 401 from any endpoint collapses the session exactly once.
type Store struct {
	client *api.Client
	tokens *TokenFile
	logger *log.Logger

	mu        sync.Mutex
	state     State
	user      *api.User
	perms     map[string]struct{}
	listeners []Listener

	initOnce sync.Once
}

// NewStore creates a session store wired to the given API client and
// token file. The store becomes the client's 401 handler.
func NewStore(client *api.Client, tokens *TokenFile, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	s := &Store{
		client: client,
		tokens: tokens,
		logger: logger,
		state:  StateUninitialized,
		perms:  map[string]struct{}{},
	}
	client.OnUnauthorized(s.handleUnauthorized)
	return s
}

// Subscribe registers a listener for resolved state transitions
// (anonymous/authenticated). Listeners run synchronously, outside the
// store's lock, in registration order.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Initialize validates any persisted token against the backend and resolves
// the session to authenticated or anonymous. It runs at most once per
// process; later calls are no-ops.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		s.mu.Lock()
		s.state = StateLoading
		s.mu.Unlock()

		token := s.tokens.Load()
		if token == "" {
			s.resolve(StateAnonymous, nil, nil)
			return
		}

		s.client.SetToken(token)

		user, err := s.client.Profile(ctx)
		if err != nil {
			// Any failure discards the token: the user is never
			// trusted without a validated token.
			s.logger.WithError(err).Debug("persisted token rejected")
			s.discardToken()
			s.resolve(StateAnonymous, nil, nil)
			return
		}

		perms := s.fetchPermissions(ctx)
		s.resolve(StateAuthenticated, user, perms)
	})
}

// SendOTP requests a one-time code for the given phone number
func (s *Store) SendOTP(ctx context.Context, phone string) error {
	if phone == "" {
		return errors.New(errors.ErrCodeInputRequired, "phone number is required")
	}
	return s.client.SendOTP(ctx, phone)
}

// Login exchanges an OTP for a token, persists it, and resolves the
// session to authenticated. Logging in over an existing identity is
// rejected; log out first.
func (s *Store) Login(ctx context.Context, phone, otp string) error {
	if phone == "" || otp == "" {
		return errors.New(errors.ErrCodeInputRequired, "phone number and code are required")
	}

	s.mu.Lock()
	if s.state == StateAuthenticated {
		s.mu.Unlock()
		return errors.New(errors.ErrCodeSessionAuthenticated, "already logged in; run logout first")
	}
	s.mu.Unlock()

	resp, err := s.client.VerifyOTP(ctx, phone, otp)
	if err != nil {
		return err
	}

	if err := s.tokens.Save(resp.Token, phone); err != nil {
		return err
	}
	s.client.SetToken(resp.Token)

	perms := s.fetchPermissions(ctx)
	user := resp.User
	s.resolve(StateAuthenticated, &user, perms)
	return nil
}

// Logout discards the persisted token and clears the user. It always
// succeeds client-side; a failed file removal is only logged.
func (s *Store) Logout(ctx context.Context) {
	s.discardToken()

	s.mu.Lock()
	wasAuthenticated := s.state == StateAuthenticated
	s.user = nil
	s.perms = map[string]struct{}{}
	s.state = StateAnonymous
	s.mu.Unlock()

	if wasAuthenticated {
		s.notify(StateAnonymous)
	}
}

// UpdateUser applies a profile patch and replaces the in-memory user
// wholesale with the server-confirmed document. Stale fields are never
// partially merged.
func (s *Store) UpdateUser(ctx context.Context, patch api.ProfilePatch) error {
	if !s.IsAuthenticated() {
		return errors.New(errors.ErrCodeSessionAnonymous, "not logged in")
	}

	user, err := s.client.UpdateProfile(ctx, patch)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.state == StateAuthenticated {
		s.user = user
	}
	s.mu.Unlock()
	return nil
}

// State returns the current session state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether the session holds a trusted user
func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// User returns a copy of the current user, or nil when anonymous
func (s *Store) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	u.Roles = append([]string(nil), s.user.Roles...)
	return &u
}

// Permissions returns the codenames held by the current user
func (s *Store) Permissions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.perms))
	for codename := range s.perms {
		out = append(out, codename)
	}
	return out
}

// HasPermission reports whether the current user holds a codename
func (s *Store) HasPermission(codename string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.perms[codename]
	return ok
}

// Dispose drops all listeners. The store is unusable for notifications
// afterwards; intended for process teardown and tests.
func (s *Store) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = nil
}

// handleUnauthorized collapses the session to anonymous. Concurrent 401s
// from in-flight requests trigger at most one transition: the state check
// and the reset happen under the same lock.
func (s *Store) handleUnauthorized() {
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return
	}
	s.user = nil
	s.perms = map[string]struct{}{}
	s.state = StateAnonymous
	s.mu.Unlock()

	s.discardToken()
	s.logger.Warn("session invalidated by server")
	s.notify(StateAnonymous)
}

func (s *Store) discardToken() {
	s.client.ClearToken()
	if err := s.tokens.Clear(); err != nil {
		s.logger.WithError(err).Warn("failed to remove credentials file")
	}
}

func (s *Store) fetchPermissions(ctx context.Context) map[string]struct{} {
	perms, err := s.client.Permissions(ctx)
	if err != nil {
		// Permissions only gate panel visibility; a fetch failure
		// degrades to an empty set rather than failing the login.
		s.logger.WithError(err).Debug("permission fetch failed")
		return map[string]struct{}{}
	}

	set := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		set[p.Codename] = struct{}{}
	}
	return set
}

func (s *Store) resolve(state State, user *api.User, perms map[string]struct{}) {
	s.mu.Lock()
	s.state = state
	s.user = user
	if perms == nil {
		perms = map[string]struct{}{}
	}
	s.perms = perms
	s.mu.Unlock()

	s.notify(state)
}

func (s *Store) notify(state State) {
	s.mu.Lock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}
