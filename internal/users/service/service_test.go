package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightdeck/internal/users/models"
	"insightdeck/internal/users/store"
	dErrors "insightdeck/pkg/domain-errors"
)

func newService() *Service {
	return New(store.NewInMemoryUserStore(store.SeedUsers()))
}

func TestList(t *testing.T) {
	profiles, err := newService().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, 3)
}

func TestUpdateRole(t *testing.T) {
	t.Run("valid role change", func(t *testing.T) {
		profile, err := newService().UpdateRole(context.Background(), "u-viewer", models.RoleAnalyst)
		require.NoError(t, err)
		assert.Equal(t, "u-viewer", profile.ID)
		assert.Equal(t, models.RoleAnalyst, profile.Role)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := newService().UpdateRole(context.Background(), "u-viewer", "superuser")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
		assert.EqualError(t, err, "Role must be admin, analyst, or viewer.")
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := newService().UpdateRole(context.Background(), "u-nobody", models.RoleAdmin)
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
		assert.EqualError(t, err, "User not found.")
	})
}
