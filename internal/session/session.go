// Package session holds the authenticated admin session shared by the service
package session

import (
	"sync"
	"time"
)

// Session is the active admin login
type Session struct {
	Token     string     `json:"-"`
	Role      string     `json:"role" example:"ADMIN"`
	Username  string     `json:"username,omitempty" example:"admin"`
	StartedAt time.Time  `json:"startedAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Store keeps at most one session. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	current *Session
	now     func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Begin replaces the current session. ExpiresAt is informational only; the kas API
// decides when the token stops being accepted.
func (s *Store) Begin(token, role, username string, expiresIn time.Duration) Session {
	now := s.now()
	sess := Session{
		Token:     token,
		Role:      role,
		Username:  username,
		StartedAt: now,
	}
	if expiresIn > 0 {
		exp := now.Add(expiresIn)
		sess.ExpiresAt = &exp
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	return sess
}

// End clears the session
func (s *Store) End() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current returns a copy of the active session
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Token implements kasapi.TokenSource. It is empty without an active session.
func (s *Store) Token() string {
	sess, ok := s.Current()
	if !ok {
		return ""
	}
	return sess.Token
}

// Authenticated reports whether a session is active
func (s *Store) Authenticated() bool {
	_, ok := s.Current()
	return ok
}
