package state

import (
	"sync"
)

// Session holds the live local state for one signed-in identity. A session
// is created on sign-in, dropped on sign-out, and handed to consumers by
// reference through the Manager; it is never process-global.
type Session struct {
	mu           sync.Mutex
	userID       string
	state        State
	loadFailures []string
}

// NewSession builds a session around an initial state, usually the result of
// the sign-in load (or defaults, when loading degraded).
func NewSession(userID string, initial State, loadFailures []string) *Session {
	return &Session{
		userID:       userID,
		state:        initial,
		loadFailures: append([]string(nil), loadFailures...),
	}
}

// UserID returns the identity this session belongs to.
func (s *Session) UserID() string {
	return s.userID
}

// Snapshot returns a deep copy of the current state. The copy is safe to
// hold across a remote round-trip and to restore verbatim afterwards.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Replace swaps in a new state wholesale. Used by mutators to apply an
// optimistically computed working copy before the remote write resolves.
func (s *Session) Replace(next State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = next
}

// Restore reinstates a snapshot exactly, discarding whatever was applied
// since it was taken. Two overlapping mutations race last-write-wins; that
// is an accepted limitation of the reconciliation model.
func (s *Session) Restore(snap State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = snap
}

// LoadFailures returns the diagnostics recorded when the sign-in load had to
// degrade a collection to its empty default.
func (s *Session) LoadFailures() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.loadFailures...)
}
