package auth

import (
	"context"
	"sync"
	"time"
)

// SessionStore tracks live sessions server-side so sign-out actually
// invalidates a token. Lookups never error outward: any failure reads as
// "not authenticated".
type SessionStore interface {
	Start(ctx context.Context, token string, employeeID uint, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (uint, bool)
	End(ctx context.Context, token string) error
}

type memorySession struct {
	employeeID uint
	expiresAt  time.Time
}

// MemorySessions is the default single-process store.
type MemorySessions struct {
	mu       sync.Mutex
	sessions map[string]memorySession
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{sessions: make(map[string]memorySession)}
}

func (s *MemorySessions) Start(_ context.Context, token string, employeeID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{employeeID: employeeID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemorySessions) Lookup(_ context.Context, token string) (uint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return 0, false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return 0, false
	}
	return sess.employeeID, true
}

func (s *MemorySessions) End(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
