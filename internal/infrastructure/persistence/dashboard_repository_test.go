package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/response"
	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/dentalkiosk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedCompletedAt inserts a completed response with a specific completion time
func seedCompletedAt(t *testing.T, db *gorm.DB, surveyID uuid.UUID, at time.Time) *models.ResponseModel {
	t.Helper()
	r := response.NewResponse(surveyID, "", "", "kiosk", "10.0.0.5")
	require.NoError(t, r.MarkComplete(at))
	model := &models.ResponseModel{}
	model.FromDomain(r)
	require.NoError(t, db.Create(model).Error)
	return model
}

func seedRatingAnswer(t *testing.T, db *gorm.DB, q *models.QuestionModel, responseID uuid.UUID, rating float64) {
	t.Helper()
	a, err := response.NewAnswer(responseID, q.ToDomain(), response.Numeric(rating))
	require.NoError(t, err)
	model := &models.AnswerModel{}
	model.FromDomain(a)
	require.NoError(t, db.Create(model).Error)
}

func TestGormDashboardRepository_Stats(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDashboardRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)

	s := seedSurvey(t, db, "Visit Feedback", true)
	ratingQ := seedQuestion(t, db, s.ID, "How was your visit?", survey.QuestionTypeRating5, 1)
	npsQ := seedQuestion(t, db, s.ID, "How likely are you to recommend us?", survey.QuestionTypeNPS, 2)

	r1 := seedCompletedAt(t, db, s.ID, now.Add(-time.Hour))
	r2 := seedCompletedAt(t, db, s.ID, now.Add(-2*time.Hour))
	r3 := seedCompletedAt(t, db, s.ID, now.AddDate(0, 0, -3))
	seedCompletedAt(t, db, s.ID, now.AddDate(0, 0, -10)) // outside the week window

	seedRatingAnswer(t, db, ratingQ, r1.ID, 5)
	seedRatingAnswer(t, db, ratingQ, r2.ID, 4)
	seedRatingAnswer(t, db, ratingQ, r3.ID, 3)

	seedRatingAnswer(t, db, npsQ, r1.ID, 9)
	seedRatingAnswer(t, db, npsQ, r2.ID, 9)
	seedRatingAnswer(t, db, npsQ, r3.ID, 8)

	// Incomplete responses are excluded from the response counts, but
	// their saved answers still feed the rating and nps aggregates
	incomplete := seedResponse(t, db, s.ID, false)
	seedRatingAnswer(t, db, ratingQ, incomplete.ID, 1)
	seedRatingAnswer(t, db, npsQ, incomplete.ID, 0)

	stats, err := repo.Stats(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalResponses)
	assert.Equal(t, int64(2), stats.TodayResponses)
	assert.Equal(t, int64(3), stats.WeekResponses)
	assert.Equal(t, "3.3", stats.AverageRating.String(), "mean of 5, 4, 3 and the abandoned 1")
	// (2 - 1) / 4 * 100, rounded
	assert.Equal(t, 25, stats.NPSScore)
	assert.Equal(t, int64(2), stats.Promoters)
	assert.Equal(t, int64(1), stats.Passives)
	assert.Equal(t, int64(1), stats.Detractors, "the only detractor is on the abandoned response")
}

func TestGormDashboardRepository_StatsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDashboardRepository(db)

	stats, err := repo.Stats(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalResponses)
	assert.Equal(t, int64(0), stats.TodayResponses)
	assert.True(t, stats.AverageRating.IsZero())
	assert.Equal(t, 0, stats.NPSScore)
}

func TestGormDashboardRepository_ResponsesPerDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDashboardRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)

	s := seedSurvey(t, db, "Visit Feedback", true)
	seedCompletedAt(t, db, s.ID, now)
	seedCompletedAt(t, db, s.ID, now)
	seedCompletedAt(t, db, s.ID, now.AddDate(0, 0, -2))
	seedCompletedAt(t, db, s.ID, now.AddDate(0, 0, -10)) // outside window

	points, err := repo.ResponsesPerDay(ctx, 7, now)
	require.NoError(t, err)
	require.Len(t, points, 2, "days without completions are absent")

	assert.Equal(t, now.AddDate(0, 0, -2).Format("2006-01-02"), points[0].Day.Format("2006-01-02"))
	assert.Equal(t, int64(1), points[0].Count)
	assert.Equal(t, now.Format("2006-01-02"), points[1].Day.Format("2006-01-02"))
	assert.Equal(t, int64(2), points[1].Count)
}

func TestGormDashboardRepository_RatingBreakdown(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDashboardRepository(db)
	ctx := context.Background()
	now := time.Now()

	s := seedSurvey(t, db, "Visit Feedback", true)
	visitQ := seedQuestion(t, db, s.ID, "How was your visit?", survey.QuestionTypeRating5, 1)
	waitQ := seedQuestion(t, db, s.ID, "How was the wait?", survey.QuestionTypeRating5, 2)

	for _, ratings := range [][2]float64{{5, 3}, {5, 2}, {4, 4}} {
		r := seedCompletedAt(t, db, s.ID, now)
		seedRatingAnswer(t, db, visitQ, r.ID, ratings[0])
		seedRatingAnswer(t, db, waitQ, r.ID, ratings[1])
	}

	// Answers on an abandoned response count too
	incomplete := seedResponse(t, db, s.ID, false)
	seedRatingAnswer(t, db, visitQ, incomplete.ID, 1)

	rows, err := repo.RatingBreakdown(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "How was your visit?", rows[0].QuestionText, "highest mean first")
	assert.Equal(t, "3.8", rows[0].AverageRating.String(), "mean of 5, 5, 4, 1")
	assert.Equal(t, int64(4), rows[0].ResponseCount)
	assert.Equal(t, "How was the wait?", rows[1].QuestionText)
	assert.Equal(t, "3", rows[1].AverageRating.String())
	assert.Equal(t, int64(3), rows[1].ResponseCount)
}
