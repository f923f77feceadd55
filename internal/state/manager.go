package state

import (
	"sync"

	"ascend/internal/errors"
)

// ErrNoSession is returned when an operation targets an identity that has no
// active session.
var ErrNoSession = errors.New("no active session for user")

// Manager is the registry of active sessions, one per signed-in identity.
// It is constructed once and injected; consumers reach sessions through it
// instead of through any global.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session registry.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Put registers (or replaces) the session for an identity. Replacing on
// repeated sign-in is intentional: the fresh load wins.
func (m *Manager) Put(session *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.UserID()] = session
}

// Get returns the active session for an identity.
func (m *Manager) Get(userID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}

	return session, nil
}

// Drop removes the session for an identity; the full local state reset on
// sign-out. Dropping an absent session is a no-op.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}
