package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// API is the slice of the backend the session lifecycle needs.
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, token string) (*User, error)
}

// Manager owns the session value. It is the single writer; everything else
// reads snapshots via Session() or reacts through Subscribe.
type Manager struct {
	api    API
	tokens TokenStore
	users  UserStore
	log    zerolog.Logger

	mu      sync.RWMutex
	sess    Session
	subs    map[int]func(Session)
	nextSub int
}

// NewManager creates a Manager in the loading state; call Restore once at
// startup to resolve it.
func NewManager(api API, tokens TokenStore, users UserStore, log zerolog.Logger) *Manager {
	return &Manager{
		api:    api,
		tokens: tokens,
		users:  users,
		log:    log,
		sess:   Session{Loading: true},
		subs:   make(map[int]func(Session)),
	}
}

// Session returns a snapshot of the current state. The returned User is a
// copy; mutating it has no effect on the manager.
func (m *Manager) Session() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess.clone()
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned func unsubscribes.
func (m *Manager) Subscribe(fn func(Session)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Restore loads a persisted token and validates it against the backend.
// Any failure degrades to a clean logged-out state: an expired token is a
// routine condition, not an error the caller should see.
func (m *Manager) Restore(ctx context.Context) {
	token, err := m.tokens.Load()
	if err != nil {
		m.log.Debug().Err(err).Msg("failed to load stored token")
		m.set(Session{})
		return
	}
	if token == "" {
		m.set(Session{})
		return
	}

	user, err := m.api.Me(ctx, token)
	if err != nil {
		m.log.Debug().Err(err).Msg("stored session invalid, signing out")
		m.clearStores()
		m.set(Session{})
		return
	}

	// refresh the persisted snapshot with the server's latest profile
	if err := m.users.Save(user); err != nil {
		m.log.Warn().Err(err).Msg("failed to refresh user snapshot")
	}
	m.set(Session{User: user, Token: token})
}

// SignIn authenticates against the backend, fetches the full profile and
// persists both before updating in-memory state. On failure the existing
// session is left untouched.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	token, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	user, err := m.api.Me(ctx, token)
	if err != nil {
		return err
	}

	// persistence is awaited so a crash right after sign-in doesn't lose
	// the token
	if err := m.tokens.Save(token); err != nil {
		return fmt.Errorf("failed to save authentication token: %w", err)
	}
	if err := m.users.Save(user); err != nil {
		return fmt.Errorf("failed to save user snapshot: %w", err)
	}

	m.set(Session{User: user, Token: token})
	return nil
}

// SignOut clears persisted and in-memory state. Storage errors are
// swallowed; the in-memory session is cleared regardless.
func (m *Manager) SignOut() {
	m.clearStores()
	m.set(Session{})
}

// UpdateUser merges patch into the current user and re-persists the
// snapshot. No-op when there is no current user. Does not contact the
// backend; callers changing server state must have done so already.
func (m *Manager) UpdateUser(patch UserPatch) {
	m.mu.Lock()
	if m.sess.User == nil {
		m.mu.Unlock()
		return
	}
	user := *m.sess.User
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.ProfilePhotoURL != nil {
		user.ProfilePhotoURL = *patch.ProfilePhotoURL
	}
	m.sess.User = &user
	sess := m.sess.clone()
	subs := m.snapshotSubs()
	m.mu.Unlock()

	if err := m.users.Save(&user); err != nil {
		m.log.Warn().Err(err).Msg("failed to persist user snapshot")
	}
	for _, fn := range subs {
		fn(sess)
	}
}

func (m *Manager) clearStores() {
	if err := m.tokens.Delete(); err != nil {
		m.log.Warn().Err(err).Msg("failed to delete stored token")
	}
	if err := m.users.Delete(); err != nil {
		m.log.Warn().Err(err).Msg("failed to delete user snapshot")
	}
}

func (m *Manager) set(sess Session) {
	m.mu.Lock()
	m.sess = sess
	snapshot := m.sess.clone()
	subs := m.snapshotSubs()
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// snapshotSubs must be called with mu held.
func (m *Manager) snapshotSubs() []func(Session) {
	subs := make([]func(Session), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	return subs
}

func (s Session) clone() Session {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}
