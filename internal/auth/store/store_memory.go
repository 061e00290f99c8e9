package store

import (
	"context"
	"sync"

	"insightdeck/internal/auth/models"
	"insightdeck/pkg/platform/sentinel"
)

// InMemorySessionStore is the process-wide session map. Sessions only ever
// transition from absent to active; nothing removes them.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[string]models.Session)}
}

// Save records a session under its token.
func (s *InMemorySessionStore) Save(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

// FindByToken returns the session for a bearer token.
func (s *InMemorySessionStore) FindByToken(_ context.Context, token string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.sessions[token]; ok {
		return session, nil
	}
	return models.Session{}, sentinel.ErrNotFound
}
