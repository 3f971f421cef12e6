package quiz

import "sync"

// Session is one user's mutable quiz record. All access goes through the
// controller, which holds the session lock for the duration of a single
// event, so events for one user are processed strictly in order while
// different users proceed concurrently.
type Session struct {
	mu sync.Mutex

	Score    int
	Selector Selector
	Plan     Plan
	Position int
	Pending  *Question
}

// InProgress reports whether a question is awaiting an answer.
func (s *Session) InProgress() bool { return s.Pending != nil }

// Store keeps per-user sessions in memory. Sessions are created lazily
// on first interaction and live for the lifetime of the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the session for a user, creating a fresh one (zero score,
// AllTiers selector) when none exists.
func (s *Store) Get(userID int64) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[userID]; ok {
		return sess
	}
	sess = &Session{Selector: AllTiers}
	s.sessions[userID] = sess
	return sess
}

// Lookup returns the session for a user without creating one.
func (s *Store) Lookup(userID int64) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

// Len returns the number of known sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
