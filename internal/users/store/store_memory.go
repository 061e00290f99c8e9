package store

import (
	"context"
	"sync"

	"insightdeck/internal/users/models"
	"insightdeck/pkg/platform/sentinel"
)

// InMemoryUserStore holds the fixed account set for the life of the process.
// The RWMutex serializes role edits against concurrent reads; there is no
// persistence and no account creation or deletion.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

// NewInMemoryUserStore builds a store holding the given accounts.
func NewInMemoryUserStore(users []models.User) *InMemoryUserStore {
	s := &InMemoryUserStore{users: make([]models.User, len(users))}
	copy(s.users, users)
	return s
}

// List returns sanitized records for every account. Credentials never leave
// this layer through List.
func (s *InMemoryUserStore) List(_ context.Context) ([]models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]models.Profile, 0, len(s.users))
	for _, u := range s.users {
		profiles = append(profiles, u.Sanitize())
	}
	return profiles, nil
}

// FindByEmail returns the full record, credential included. Only the login
// path may call this.
func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, sentinel.ErrNotFound
}

// UpdateRole mutates the account's role in place and returns the sanitized
// record.
func (s *InMemoryUserStore) UpdateRole(_ context.Context, id string, role models.Role) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Role = role
			return s.users[i].Sanitize(), nil
		}
	}
	return models.Profile{}, sentinel.ErrNotFound
}
