package session

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/studystack/classroom/internal/core/domain"
)

// Manager is the in-memory reactive projection of the Store: the single
// owner of "who is logged in". It is constructed fresh per process (or per
// test) rather than living in package-level state, and lives for the process
// lifetime. All mutations go through Login, Logout, or Invalidate, and every
// subscriber observes them synchronously — there is no eventual-consistency
// window between the store write and the in-memory update.
type Manager struct {
	mu      sync.Mutex
	store   Store
	current domain.Session
	subs    map[int]func(domain.Session)
	nextSub int
	log     zerolog.Logger
}

// NewManager builds a Manager seeded from the store. A corrupt store entry
// has already been wiped by the store and reads as anonymous.
func NewManager(store Store, log zerolog.Logger) (*Manager, error) {
	current, err := store.Read()
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return &Manager{
		store:   store,
		current: current,
		subs:    make(map[int]func(domain.Session)),
		log:     log,
	}, nil
}

// Login installs a new session, persisting it and updating the in-memory
// projection in one step. Repeated logins are last-write-wins.
func (m *Manager) Login(creds domain.Credentials, user domain.User) error {
	m.mu.Lock()
	if err := m.store.Write(creds, user); err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = domain.NewSession(creds, user)
	subs, sess := m.snapshotLocked()
	m.mu.Unlock()

	m.log.Debug().Str("username", user.Username).Str("role", user.Role.String()).Msg("session established")
	notify(subs, sess)
	return nil
}

// Logout clears the persisted session and resets the projection. Calling it
// on an already-anonymous session is a no-op.
func (m *Manager) Logout() error {
	m.mu.Lock()
	if !m.current.Authenticated() {
		m.mu.Unlock()
		return nil
	}
	if err := m.store.Clear(); err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = domain.Anonymous()
	subs, sess := m.snapshotLocked()
	m.mu.Unlock()

	m.log.Debug().Msg("session cleared")
	notify(subs, sess)
	return nil
}

// Invalidate is the 401 path: a best-effort, one-shot teardown. The in-memory
// session is always reset even if the store cannot be cleared.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	wasAuthenticated := m.current.Authenticated()
	if err := m.store.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("session store clear failed during invalidation")
	}
	m.current = domain.Anonymous()
	subs, sess := m.snapshotLocked()
	m.mu.Unlock()

	if wasAuthenticated {
		m.log.Debug().Msg("session invalidated by server")
		notify(subs, sess)
	}
}

// Current returns the resolved identity when authenticated.
func (m *Manager) Current() (domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.current.Authenticated() {
		return domain.User{}, false
	}
	return *m.current.User, true
}

// Session returns the full session value.
func (m *Manager) Session() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Credentials exposes the stored token pair to the HTTP transport.
func (m *Manager) Credentials() (domain.Credentials, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.current.Credentials.Present() {
		return domain.Credentials{}, false
	}
	return m.current.Credentials, true
}

// Subscribe registers fn to be called synchronously on every session change.
// The returned cancel func removes the subscription.
func (m *Manager) Subscribe(fn func(domain.Session)) (cancel func()) {
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

func (m *Manager) snapshotLocked() ([]func(domain.Session), domain.Session) {
	subs := make([]func(domain.Session), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	return subs, m.current
}

// notify runs outside the lock so a subscriber may call back into the
// Manager without deadlocking.
func notify(subs []func(domain.Session), sess domain.Session) {
	for _, fn := range subs {
		fn(sess)
	}
}
