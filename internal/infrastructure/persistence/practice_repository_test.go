package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/practice"
	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/dentalkiosk/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormPracticeRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormPracticeRepository(db)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, db.Create(&models.PracticeModel{
		ID:                  practice.DefaultID,
		Name:                "Bright Smile Dental",
		PrimaryColor:        "#2563eb",
		KioskTimeoutSeconds: 120,
		AllowAnonymous:      true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}).Error)

	t.Run("find default practice", func(t *testing.T) {
		p, err := repo.Find(ctx, practice.DefaultID)
		require.NoError(t, err)
		assert.Equal(t, "Bright Smile Dental", p.Name)
		assert.Equal(t, 120, p.KioskTimeoutSeconds)
		assert.True(t, p.AllowAnonymous)
	})

	t.Run("missing practice", func(t *testing.T) {
		_, err := repo.Find(ctx, 99)
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("update settings", func(t *testing.T) {
		p, err := repo.Find(ctx, practice.DefaultID)
		require.NoError(t, err)

		require.NoError(t, p.Rename("Riverside Dental"))
		require.NoError(t, p.SetPrimaryColor("#0f766e"))
		require.NoError(t, p.SetKioskTimeout(90))
		p.AllowAnonymous = false

		require.NoError(t, repo.Update(ctx, p))

		updated, err := repo.Find(ctx, practice.DefaultID)
		require.NoError(t, err)
		assert.Equal(t, "Riverside Dental", updated.Name)
		assert.Equal(t, "#0f766e", updated.PrimaryColor)
		assert.Equal(t, 90, updated.KioskTimeoutSeconds)
		assert.False(t, updated.AllowAnonymous)
	})

	t.Run("update of missing practice", func(t *testing.T) {
		ghost := &practice.Practice{ID: 42, Name: "Nowhere"}
		assert.Equal(t, shared.ErrNotFound, repo.Update(ctx, ghost))
	})
}
