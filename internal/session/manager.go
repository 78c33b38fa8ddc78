package session

import (
	"sync"
	"time"

	"tienda_admin/internal/domain/entities"
)

// Manager holds the single active upstream session for this process.
//
// Lifecycle is explicit: Open on a successful login, Close on logout. All
// consumers read the session through Current and pass the token onward
// themselves, so nothing in the codebase depends on ambient token state.
type Manager struct {
	mu      sync.RWMutex
	current *entities.Session
}

func NewManager() *Manager {
	return &Manager{}
}

// Open replaces any existing session with a fresh one for the given token
// and user.
func (m *Manager) Open(token string, user entities.User) entities.Session {
	s := entities.Session{Token: token, User: user, CreatedAt: time.Now().UTC()}
	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()
	return s
}

// Close tears down the active session. Closing an already-closed manager is
// a no-op.
func (m *Manager) Close() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
}

// Current returns the active session, if any.
func (m *Manager) Current() (entities.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return entities.Session{}, false
	}
	return *m.current, true
}

// Token returns the active session token, or "" when logged out.
func (m *Manager) Token() string {
	s, ok := m.Current()
	if !ok {
		return ""
	}
	return s.Token
}
