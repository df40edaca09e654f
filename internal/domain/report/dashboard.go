package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats is the headline card row of the staff dashboard. The NPS
// numbers are computed live from the answer rows, independent of the daily
// rollup table; the two agree only while rollup accounting is correct.
type DashboardStats struct {
	TotalResponses int64
	TodayResponses int64
	WeekResponses  int64           // completed within the trailing 7 days
	AverageRating  decimal.Decimal // mean of every saved 1-5 star answer, one decimal place
	NPSScore       int             // classic -100..100 score, rounded
	Promoters      int64
	Passives       int64
	Detractors     int64
}

// ChartPoint is one day's completed-response count for the activity chart.
// Days without completions are absent rather than zero-filled.
type ChartPoint struct {
	Day   time.Time
	Count int64
}

// RatingBreakdownRow is one star question's mean and answer count across
// every saved answer, abandoned responses included.
type RatingBreakdownRow struct {
	QuestionText  string
	AverageRating decimal.Decimal
	ResponseCount int64
}

// DashboardRepository defines the interface for dashboard aggregate queries
type DashboardRepository interface {
	// Stats returns the headline dashboard numbers. Today is resolved
	// against the given reference time's calendar day.
	Stats(ctx context.Context, now time.Time) (*DashboardStats, error)

	// ResponsesPerDay returns completed-response counts per calendar day
	// for the trailing window ending at the reference time, oldest first.
	ResponsesPerDay(ctx context.Context, days int, now time.Time) ([]ChartPoint, error)

	// RatingBreakdown returns each star question's mean answer and count,
	// highest mean first.
	RatingBreakdown(ctx context.Context) ([]RatingBreakdownRow, error)
}
