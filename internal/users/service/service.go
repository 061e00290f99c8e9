package service

import (
	"context"
	"errors"

	"insightdeck/internal/users/models"
	dErrors "insightdeck/pkg/domain-errors"
	"insightdeck/pkg/platform/sentinel"
)

// Store is the account collection as seen by the user service. List and
// UpdateRole only ever surface sanitized records.
type Store interface {
	List(ctx context.Context) ([]models.Profile, error)
	UpdateRole(ctx context.Context, id string, role models.Role) (models.Profile, error)
}

// Service exposes the admin-facing account operations. There is no account
// creation or deletion; the set is fixed at process start.
type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// List returns every account, credentials stripped.
func (s *Service) List(ctx context.Context) ([]models.Profile, error) {
	return s.store.List(ctx)
}

// UpdateRole changes an account's role in place. Existing sessions keep the
// role snapshot they were minted with; only new logins observe the change.
func (s *Service) UpdateRole(ctx context.Context, id string, role models.Role) (models.Profile, error) {
	if !role.Valid() {
		return models.Profile{}, dErrors.New(dErrors.CodeBadRequest, "Role must be admin, analyst, or viewer.")
	}
	profile, err := s.store.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Profile{}, dErrors.New(dErrors.CodeNotFound, "User not found.")
		}
		return models.Profile{}, err
	}
	return profile, nil
}
