package persistence

import (
	"context"
	"testing"

	"github.com/dentalkiosk/backend/internal/domain/identity"
	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormAdminUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAdminUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewAdminUser("FrontDesk", "correct-horse-battery", identity.RoleStaff)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "frontdesk", found.Username)
		assert.True(t, found.VerifyPassword("correct-horse-battery"))
	})

	t.Run("find by username is case insensitive", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "  FRONTDESK ")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.Equal(t, shared.ErrNotFound, err)

		_, err = repo.FindByUsername(ctx, "nobody")
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("update persists login metadata", func(t *testing.T) {
		user.RecordLogin("192.168.1.20")
		require.NoError(t, repo.Update(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.LastLoginAt)
		assert.Equal(t, "192.168.1.20", found.LastLoginIP)
	})

	t.Run("update of missing user", func(t *testing.T) {
		ghost, err := identity.NewAdminUser("ghost", "password123", identity.RoleOwner)
		require.NoError(t, err)
		assert.Equal(t, shared.ErrNotFound, repo.Update(ctx, ghost))
	})
}
