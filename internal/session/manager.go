package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"ttrack/internal/service"
)

// Subscriber receives the session after every transition. A nil session
// means anonymous.
type Subscriber func(*Session)

// Manager owns the login/logout state machine. It holds zero or one live
// session, keeps the credential store consistent with it, and publishes
// every transition to subscribers in subscription order. New subscribers
// immediately receive the current state, so once Initialize has run a
// subscriber always observes a value.
type Manager struct {
	mu      sync.RWMutex
	store   *Store
	current *Session
	subs    []Subscriber
	log     zerolog.Logger
}

// NewManager creates a manager bound to the given credential store.
func NewManager(store *Store, log zerolog.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Initialize restores the persisted session, if any, without contacting
// the backend. The token's validity is unverified until first use.
// Malformed persisted data results in the anonymous state, never an error.
func (m *Manager) Initialize() {
	sess := m.store.Load()
	m.mu.Lock()
	m.current = sess
	subs := m.snapshotSubs()
	m.mu.Unlock()

	if sess != nil {
		m.log.Debug().Str("username", sess.Username).Msg("restored session")
	}
	for _, fn := range subs {
		fn(sess)
	}
}

// Login authenticates against the backend. On success the new session is
// persisted and published; on failure the prior state is kept and an
// *service.AuthError (or the transport error) is returned.
func (m *Manager) Login(ctx context.Context, auth service.Authenticator, username, password string) error {
	res, err := auth.Login(ctx, username, password)
	if err != nil {
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			return authErr
		}
		return err
	}

	sess := &Session{
		Username: res.Username,
		Email:    res.Email,
		Token:    oauth2.Token{AccessToken: res.Token, TokenType: "Bearer"},
	}
	if err := m.store.Save(sess); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = sess
	subs := m.snapshotSubs()
	m.mu.Unlock()

	m.log.Debug().Str("username", sess.Username).Msg("logged in")
	for _, fn := range subs {
		fn(sess)
	}
	return nil
}

// Logout clears the persisted credential and publishes the anonymous
// state. Always succeeds; logging out while anonymous is a no-op
// transition that still publishes nil.
func (m *Manager) Logout() {
	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("could not remove persisted session")
	}

	m.mu.Lock()
	m.current = nil
	subs := m.snapshotSubs()
	m.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

// Subscribe registers fn and immediately replays the current state to it.
func (m *Manager) Subscribe(fn Subscriber) {
	m.mu.Lock()
	m.subs = append(m.subs, fn)
	current := m.current
	m.mu.Unlock()

	fn(current)
}

// Current returns the live session, or nil when anonymous.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// IsAuthenticated reports whether a session is live.
func (m *Manager) IsAuthenticated() bool {
	return m.Current() != nil
}

// Token returns the current bearer token, or "" when anonymous.
func (m *Manager) Token() string {
	s := m.Current()
	if s == nil {
		return ""
	}
	return s.BearerToken()
}

func (m *Manager) snapshotSubs() []Subscriber {
	subs := make([]Subscriber, len(m.subs))
	copy(subs, m.subs)
	return subs
}
