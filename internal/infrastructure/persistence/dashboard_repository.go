package persistence

import (
	"context"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/nps"
	"github.com/dentalkiosk/backend/internal/domain/report"
	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/dentalkiosk/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormDashboardRepository implements report.DashboardRepository using GORM
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GormDashboardRepository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// dayBounds returns the [start, end) range of the reference time's calendar
// day in its location. Computed in Go so the SQL stays portable.
func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// Stats returns the headline dashboard numbers
func (r *GormDashboardRepository) Stats(ctx context.Context, now time.Time) (*report.DashboardStats, error) {
	stats := &report.DashboardStats{AverageRating: decimal.Zero}

	if err := r.db.WithContext(ctx).
		Model(&models.ResponseModel{}).
		Where("is_complete = ?", true).
		Count(&stats.TotalResponses).Error; err != nil {
		return nil, err
	}

	dayStart, dayEnd := dayBounds(now)
	if err := r.db.WithContext(ctx).
		Model(&models.ResponseModel{}).
		Where("is_complete = ? AND completed_at >= ? AND completed_at < ?", true, dayStart, dayEnd).
		Count(&stats.TodayResponses).Error; err != nil {
		return nil, err
	}

	weekStart := dayStart.AddDate(0, 0, -6)
	if err := r.db.WithContext(ctx).
		Model(&models.ResponseModel{}).
		Where("is_complete = ? AND completed_at >= ? AND completed_at < ?", true, weekStart, dayEnd).
		Count(&stats.WeekResponses).Error; err != nil {
		return nil, err
	}

	// Answer aggregates cover every saved answer, abandoned partial
	// responses included, so they can lead the completed-response counts
	var avg *float64
	if err := r.db.WithContext(ctx).
		Table("survey_answers sa").
		Select("AVG(sa.answer_numeric)").
		Joins("JOIN survey_questions sq ON sq.id = sa.question_id").
		Where("sq.question_type = ? AND sa.answer_numeric IS NOT NULL",
			string(survey.QuestionTypeRating5)).
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	if avg != nil {
		stats.AverageRating = decimal.NewFromFloat(*avg).Round(1)
	}

	// Live over the raw nps answers rather than the rollup table, so a
	// rollup accounting bug cannot skew the headline score
	var totals struct {
		Promoters  int64
		Detractors int64
		Total      int64
	}
	if err := r.db.WithContext(ctx).
		Table("survey_answers sa").
		Select("COALESCE(SUM(CASE WHEN sa.answer_numeric >= 9 THEN 1 ELSE 0 END), 0) AS promoters, "+
			"COALESCE(SUM(CASE WHEN sa.answer_numeric <= 6 THEN 1 ELSE 0 END), 0) AS detractors, "+
			"COUNT(*) AS total").
		Joins("JOIN survey_questions sq ON sq.id = sa.question_id").
		Where("sq.question_type = ? AND sa.answer_numeric IS NOT NULL",
			string(survey.QuestionTypeNPS)).
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	stats.Promoters = totals.Promoters
	stats.Detractors = totals.Detractors
	stats.Passives = totals.Total - totals.Promoters - totals.Detractors
	stats.NPSScore = nps.ScoreRounded(totals.Promoters, totals.Detractors, totals.Total)

	return stats, nil
}

// ResponsesPerDay returns completed-response counts per calendar day for
// the trailing window, oldest first. Days without completions are absent.
func (r *GormDashboardRepository) ResponsesPerDay(ctx context.Context, days int, now time.Time) ([]report.ChartPoint, error) {
	if days <= 0 {
		days = 30
	}
	dayStart, dayEnd := dayBounds(now)
	windowStart := dayStart.AddDate(0, 0, -(days - 1))

	// DATE() truncates on both PostgreSQL and SQLite; the day comes back as
	// text so it is parsed rather than scanned as a timestamp
	type dayRow struct {
		Day   string
		Count int64
	}
	var rows []dayRow
	if err := r.db.WithContext(ctx).
		Table("survey_responses").
		Select("DATE(completed_at) AS day, COUNT(*) AS count").
		Where("is_complete = ? AND completed_at >= ? AND completed_at < ?", true, windowStart, dayEnd).
		Group("DATE(completed_at)").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	points := make([]report.ChartPoint, 0, len(rows))
	for _, row := range rows {
		if len(row.Day) < 10 {
			continue
		}
		day, err := time.ParseInLocation("2006-01-02", row.Day[:10], now.Location())
		if err != nil {
			continue
		}
		points = append(points, report.ChartPoint{Day: day, Count: row.Count})
	}
	return points, nil
}

// RatingBreakdown returns each star question's mean answer and count over
// every saved answer, highest mean first
func (r *GormDashboardRepository) RatingBreakdown(ctx context.Context) ([]report.RatingBreakdownRow, error) {
	type breakdownRow struct {
		QuestionText  string
		AverageRating float64
		ResponseCount int64
	}
	var rows []breakdownRow
	if err := r.db.WithContext(ctx).
		Table("survey_answers sa").
		Select("sq.question_text AS question_text, AVG(sa.answer_numeric) AS average_rating, COUNT(*) AS response_count").
		Joins("JOIN survey_questions sq ON sq.id = sa.question_id").
		Where("sq.question_type = ? AND sa.answer_numeric IS NOT NULL",
			string(survey.QuestionTypeRating5)).
		Group("sq.id, sq.question_text").
		Order("average_rating DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]report.RatingBreakdownRow, len(rows))
	for i, row := range rows {
		result[i] = report.RatingBreakdownRow{
			QuestionText:  row.QuestionText,
			AverageRating: decimal.NewFromFloat(row.AverageRating).Round(1),
			ResponseCount: row.ResponseCount,
		}
	}
	return result, nil
}

var _ report.DashboardRepository = (*GormDashboardRepository)(nil)
