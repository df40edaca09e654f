package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/nps"
	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormNpsRollupRepository_Increment(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormNpsRollupRepository(db)
	ctx := context.Background()
	day := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	t.Run("first increment creates the row", func(t *testing.T) {
		require.NoError(t, repo.Increment(ctx, day, nps.BucketPromoter))

		rollup, err := repo.FindByDate(ctx, day)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rollup.Promoters)
		assert.Equal(t, int64(0), rollup.Passives)
		assert.Equal(t, int64(0), rollup.Detractors)
		assert.Equal(t, int64(1), rollup.TotalResponses)
		assert.Equal(t, "100", rollup.NPSScore.Round(0).String())
	})

	t.Run("subsequent increments update counters and score", func(t *testing.T) {
		require.NoError(t, repo.Increment(ctx, day, nps.BucketPromoter))
		require.NoError(t, repo.Increment(ctx, day, nps.BucketDetractor))

		rollup, err := repo.FindByDate(ctx, day)
		require.NoError(t, err)
		assert.Equal(t, int64(2), rollup.Promoters)
		assert.Equal(t, int64(1), rollup.Detractors)
		assert.Equal(t, int64(3), rollup.TotalResponses)
		// (2 - 1) / 3 * 100
		assert.Equal(t, "33", rollup.NPSScore.Round(0).String())
	})

	t.Run("passives dilute the score", func(t *testing.T) {
		require.NoError(t, repo.Increment(ctx, day, nps.BucketPassive))

		rollup, err := repo.FindByDate(ctx, day)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rollup.Passives)
		assert.Equal(t, int64(4), rollup.TotalResponses)
		// (2 - 1) / 4 * 100
		assert.Equal(t, "25", rollup.NPSScore.Round(0).String())
	})

	t.Run("separate days keep separate rows", func(t *testing.T) {
		other := day.AddDate(0, 0, 1)
		require.NoError(t, repo.Increment(ctx, other, nps.BucketDetractor))

		rollup, err := repo.FindByDate(ctx, other)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rollup.TotalResponses)
		assert.Equal(t, "-100", rollup.NPSScore.Round(0).String())
	})

	t.Run("unknown bucket rejected", func(t *testing.T) {
		err := repo.Increment(ctx, day, nps.Bucket("weird"))
		require.Error(t, err)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
	})
}

func TestGormNpsRollupRepository_FindByDateMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormNpsRollupRepository(db)

	_, err := repo.FindByDate(context.Background(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, shared.ErrNotFound, err)
}
