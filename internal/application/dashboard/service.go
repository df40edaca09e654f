package dashboard

import (
	"context"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/report"
	"github.com/dentalkiosk/backend/internal/domain/response"
	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
	defaultChartDays = 30
	maxChartDays     = 90
)

// Service serves the staff dashboard: headline stats, response browsing,
// and the activity charts.
type Service struct {
	dashboardRepo report.DashboardRepository
	responseRepo  response.Repository
	surveyRepo    survey.Repository
	logger        *zap.Logger
}

// NewService creates a new dashboard service
func NewService(
	dashboardRepo report.DashboardRepository,
	responseRepo response.Repository,
	surveyRepo survey.Repository,
	logger *zap.Logger,
) *Service {
	return &Service{
		dashboardRepo: dashboardRepo,
		responseRepo:  responseRepo,
		surveyRepo:    surveyRepo,
		logger:        logger,
	}
}

// Stats returns the headline dashboard numbers
func (s *Service) Stats(ctx context.Context) (*StatsResult, error) {
	stats, err := s.dashboardRepo.Stats(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return &StatsResult{
		TotalResponses: stats.TotalResponses,
		TodayResponses: stats.TodayResponses,
		WeekResponses:  stats.WeekResponses,
		AverageRating:  stats.AverageRating.StringFixed(1),
		NPSScore:       stats.NPSScore,
		Promoters:      stats.Promoters,
		Passives:       stats.Passives,
		Detractors:     stats.Detractors,
	}, nil
}

// ListResponses returns a page of completed responses, newest first
func (s *Service) ListResponses(ctx context.Context, input ListResponsesInput) ([]ResponseListItem, error) {
	if input.Limit < 1 {
		input.Limit = defaultListLimit
	}
	if input.Limit > maxListLimit {
		input.Limit = maxListLimit
	}
	if input.Offset < 0 {
		input.Offset = 0
	}

	items, err := s.responseRepo.List(ctx, response.ListFilter{
		SurveyID: input.SurveyID,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, err
	}

	result := make([]ResponseListItem, len(items))
	for i, item := range items {
		result[i] = ResponseListItem{
			ID:          item.ID,
			SurveyName:  item.SurveyName,
			PatientName: displayName(item.PatientName, item.IsAnonymous),
			IsAnonymous: item.IsAnonymous,
			DeviceType:  item.DeviceType,
			CompletedAt: item.CompletedAt,
		}
	}
	return result, nil
}

// ResponseDetails returns one response with its decoded answers in
// question display order
func (s *Service) ResponseDetails(ctx context.Context, responseID uuid.UUID) (*ResponseDetail, error) {
	r, err := s.responseRepo.FindByID(ctx, responseID)
	if err != nil {
		return nil, err
	}

	sv, err := s.surveyRepo.FindByID(ctx, r.SurveyID)
	if err != nil {
		return nil, err
	}

	answers, err := s.responseRepo.AnswerDetails(ctx, responseID)
	if err != nil {
		return nil, err
	}

	detail := &ResponseDetail{
		ID:           r.ID,
		SurveyName:   sv.Name,
		PatientName:  displayName(r.PatientName, r.IsAnonymous),
		PatientEmail: r.PatientEmail,
		IsAnonymous:  r.IsAnonymous,
		DeviceType:   r.DeviceType,
		IPAddress:    r.IPAddress,
		IsComplete:   r.IsComplete,
		StartedAt:    r.CreatedAt,
		CompletedAt:  r.CompletedAt,
		Answers:      make([]AnswerView, len(answers)),
	}
	for i, a := range answers {
		view := AnswerView{
			QuestionID:   a.QuestionID,
			QuestionText: a.QuestionText,
			QuestionType: a.QuestionType,
			Options:      a.QuestionOptions,
		}
		if v, ok := a.Value.NumericValue(); ok {
			view.NumericValue = &v
		}
		if v, ok := a.Value.TextValue(); ok {
			view.TextValue = &v
		}
		if v, ok := a.Value.ChoicesValue(); ok {
			view.Choices = v
		}
		detail.Answers[i] = view
	}
	return detail, nil
}

// SurveysWithCounts returns every survey with its completed-response count
func (s *Service) SurveysWithCounts(ctx context.Context) ([]SurveyOverview, error) {
	surveys, err := s.surveyRepo.FindAllWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]SurveyOverview, len(surveys))
	for i, sc := range surveys {
		result[i] = SurveyOverview{
			ID:            sc.Survey.ID,
			Name:          sc.Survey.Name,
			SurveyType:    sc.Survey.SurveyType,
			IsActive:      sc.Survey.IsActive,
			ShowOnKiosk:   sc.Survey.ShowOnKiosk,
			ResponseCount: sc.ResponseCount,
		}
	}
	return result, nil
}

// Chart returns completed-response counts per day for a trailing window,
// oldest first. Days without completions are absent rather than zero-filled.
func (s *Service) Chart(ctx context.Context, days int) ([]ChartPoint, error) {
	if days < 1 {
		days = defaultChartDays
	}
	if days > maxChartDays {
		days = maxChartDays
	}

	points, err := s.dashboardRepo.ResponsesPerDay(ctx, days, time.Now())
	if err != nil {
		return nil, err
	}

	result := make([]ChartPoint, len(points))
	for i, p := range points {
		result[i] = ChartPoint{
			Day:   p.Day.Format("2006-01-02"),
			Count: p.Count,
		}
	}
	return result, nil
}

// Ratings returns each star question's mean answer and count, highest
// mean first
func (s *Service) Ratings(ctx context.Context) ([]RatingBreakdownItem, error) {
	rows, err := s.dashboardRepo.RatingBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]RatingBreakdownItem, len(rows))
	for i, row := range rows {
		result[i] = RatingBreakdownItem{
			QuestionText:  row.QuestionText,
			AverageRating: row.AverageRating.StringFixed(1),
			ResponseCount: row.ResponseCount,
		}
	}
	return result, nil
}

// displayName masks the patient name on anonymous responses
func displayName(name string, anonymous bool) string {
	if anonymous || name == "" {
		return "Anonymous"
	}
	return name
}
