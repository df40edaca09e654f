package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/nps"
	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/dentalkiosk/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormNpsRollupRepository implements nps.Repository using GORM
type GormNpsRollupRepository struct {
	db *gorm.DB
}

// NewGormNpsRollupRepository creates a new GormNpsRollupRepository
func NewGormNpsRollupRepository(db *gorm.DB) *GormNpsRollupRepository {
	return &GormNpsRollupRepository{db: db}
}

// Increment applies one classified score to the rollup row for the given
// calendar day as a single upsert-with-increment. The stored score is
// recomputed inline from the incremented counters, so concurrent
// completions never lose an increment to a read-modify-write race.
// Column references in the SET expressions resolve to the existing row on
// both PostgreSQL and SQLite.
func (r *GormNpsRollupRepository) Increment(ctx context.Context, day time.Time, bucket nps.Bucket) error {
	var dp, dpa, dd int64
	switch bucket {
	case nps.BucketPromoter:
		dp = 1
	case nps.BucketPassive:
		dpa = 1
	case nps.BucketDetractor:
		dd = 1
	default:
		return shared.NewDomainError("INVALID_INPUT", "Unknown NPS bucket: "+string(bucket))
	}

	scoreDate := day.Format("2006-01-02")
	now := time.Now()
	initialScore := nps.Score(dp, dd, 1)

	return r.db.WithContext(ctx).Exec(`
		INSERT INTO nps_daily_rollups
			(score_date, promoters, passives, detractors, total_responses, nps_score, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, ?, ?, ?)
		ON CONFLICT (score_date) DO UPDATE SET
			promoters = promoters + ?,
			passives = passives + ?,
			detractors = detractors + ?,
			total_responses = total_responses + 1,
			nps_score = ((promoters + ? - (detractors + ?)) * 100.0) / (total_responses + 1),
			updated_at = ?`,
		scoreDate, dp, dpa, dd, initialScore, now, now,
		dp, dpa, dd,
		dp, dd,
		now,
	).Error
}

// FindByDate returns the rollup row for a calendar day
func (r *GormNpsRollupRepository) FindByDate(ctx context.Context, day time.Time) (*nps.DailyRollup, error) {
	var model models.NpsRollupModel
	if err := r.db.WithContext(ctx).
		Where("score_date = ?", day.Format("2006-01-02")).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

var _ nps.Repository = (*GormNpsRollupRepository)(nil)
