package nps

import (
	"context"
	"time"
)

// Repository defines the interface for NPS rollup persistence
type Repository interface {
	// Increment applies one classified score to the rollup row for the
	// given calendar day as a single atomic upsert-with-increment, and
	// recomputes the stored score. No read-modify-write pair.
	Increment(ctx context.Context, day time.Time, bucket Bucket) error

	// FindByDate returns the rollup row for a calendar day
	FindByDate(ctx context.Context, day time.Time) (*DailyRollup, error)
}
