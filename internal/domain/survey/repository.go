package survey

import (
	"context"

	"github.com/google/uuid"
)

// SurveyWithCount pairs a survey with its completed-response count for the
// admin survey listing.
type SurveyWithCount struct {
	Survey        Survey
	ResponseCount int64
}

// Repository defines the interface for survey persistence
type Repository interface {
	// FindByID finds a survey by ID with its questions sorted by display order
	FindByID(ctx context.Context, id uuid.UUID) (*Survey, error)

	// FindKioskSurveys returns active, kiosk-visible surveys ordered by
	// type then name. Questions are not loaded.
	FindKioskSurveys(ctx context.Context) ([]Survey, error)

	// FindAllWithCounts returns every survey with its completed-response
	// count, ordered by name.
	FindAllWithCounts(ctx context.Context) ([]SurveyWithCount, error)
}
