package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/desertthunder/tracklist/internal/shared"
)

// Store keeps browser sessions in memory, keyed by session ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	numbered bool
	now      func() time.Time
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
//
// numbered is the numbering option given to new sessions.
func NewStore(ttl time.Duration, numbered bool) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		numbered: numbered,
		now:      time.Now,
	}
}

// Get returns a copy of the session with id.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok || st.expired(s) {
		return nil, fmt.Errorf("%w: %s", shared.ErrSessionNotFound, id)
	}
	return s.Clone(), nil
}

// Ensure returns a copy of the session with id, creating a new one when id is unknown or expired.
//
// Every call counts as activity and pushes back the session's expiry.
func (st *Store) Ensure(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[id]; ok && !st.expired(s) {
		s.Touched = st.now()
		return s.Clone()
	}

	s := New(st.numbered)
	s.Touched = st.now()
	st.sessions[s.ID] = s
	return s.Clone()
}

// Update applies fn to the stored session with id under the store lock.
func (st *Store) Update(id string, fn func(*Session)) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok || st.expired(s) {
		return nil, fmt.Errorf("%w: %s", shared.ErrSessionNotFound, id)
	}

	fn(s)
	s.Touched = st.now()
	return s.Clone(), nil
}

// Prune removes expired sessions and returns how many were dropped.
func (st *Store) Prune() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	n := 0
	for id, s := range st.sessions {
		if st.expired(s) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of stored sessions, expired ones included.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *Store) expired(s *Session) bool {
	return st.ttl > 0 && st.now().Sub(s.Touched) > st.ttl
}
