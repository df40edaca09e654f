package kiosk

import (
	"context"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/nps"
	"github.com/dentalkiosk/backend/internal/domain/practice"
	"github.com/dentalkiosk/backend/internal/domain/response"
	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service drives the patient-facing survey flow: survey discovery, response
// lifecycle, and incremental answer capture.
type Service struct {
	surveyRepo   survey.Repository
	responseRepo response.Repository
	npsRepo      nps.Repository
	practiceRepo practice.Repository
	logger       *zap.Logger
}

// NewService creates a new kiosk service
func NewService(
	surveyRepo survey.Repository,
	responseRepo response.Repository,
	npsRepo nps.Repository,
	practiceRepo practice.Repository,
	logger *zap.Logger,
) *Service {
	return &Service{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		npsRepo:      npsRepo,
		practiceRepo: practiceRepo,
		logger:       logger,
	}
}

// ListSurveys returns the surveys offered on the kiosk picker
func (s *Service) ListSurveys(ctx context.Context) ([]SurveySummary, error) {
	surveys, err := s.surveyRepo.FindKioskSurveys(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]SurveySummary, len(surveys))
	for i, sv := range surveys {
		summaries[i] = SurveySummary{
			ID:            sv.ID,
			Name:          sv.Name,
			Description:   sv.Description,
			SurveyType:    sv.SurveyType,
			EstimatedTime: sv.EstimatedTime,
		}
	}
	return summaries, nil
}

// GetSurvey returns a survey with its ordered questions for taking. Surveys
// not offered on the kiosk are hidden from this surface even when the ID is
// known.
func (s *Service) GetSurvey(ctx context.Context, surveyID uuid.UUID) (*SurveyDetail, error) {
	sv, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if !sv.OfferedOnKiosk() {
		return nil, shared.ErrNotFound
	}

	detail := &SurveyDetail{
		ID:              sv.ID,
		Name:            sv.Name,
		Description:     sv.Description,
		SurveyType:      sv.SurveyType,
		EstimatedTime:   sv.EstimatedTime,
		ThankYouMessage: sv.ThankYouMessage,
		Questions:       make([]QuestionInfo, len(sv.Questions)),
	}
	for i, q := range sv.Questions {
		detail.Questions[i] = QuestionInfo{
			ID:           q.ID,
			Text:         q.Text,
			Type:         q.Type,
			Options:      q.Options,
			DisplayOrder: q.DisplayOrder,
			IsRequired:   q.IsRequired,
			HelpText:     q.HelpText,
		}
	}
	return detail, nil
}

// StartResponse creates a response at survey start. Anonymity is derived
// from the absence of a patient name, and rejected when the practice
// requires identification.
func (s *Service) StartResponse(ctx context.Context, input StartResponseInput) (*StartResponseResult, error) {
	sv, err := s.surveyRepo.FindByID(ctx, input.SurveyID)
	if err != nil {
		return nil, err
	}
	if !sv.OfferedOnKiosk() {
		return nil, shared.ErrNotFound
	}

	r := response.NewResponse(input.SurveyID, input.PatientName, input.PatientEmail, input.DeviceType, input.IPAddress)

	if r.IsAnonymous {
		p, err := s.practiceRepo.Find(ctx, practice.DefaultID)
		if err != nil {
			return nil, err
		}
		if !p.AllowAnonymous {
			return nil, shared.NewDomainError("ANONYMOUS_NOT_ALLOWED", "This practice requires a name to take surveys")
		}
	}

	if err := s.responseRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("Response started",
		zap.String("response_id", r.ID.String()),
		zap.String("survey_id", input.SurveyID.String()),
		zap.Bool("anonymous", r.IsAnonymous),
	)

	return &StartResponseResult{
		ResponseID:  r.ID,
		IsAnonymous: r.IsAnonymous,
		StartedAt:   r.CreatedAt,
	}, nil
}

// SaveAnswer validates and stores one answer, overwriting any previous
// answer for the same question. Answers to completed responses are rejected.
func (s *Service) SaveAnswer(ctx context.Context, input SaveAnswerInput) error {
	r, err := s.responseRepo.FindByID(ctx, input.ResponseID)
	if err != nil {
		return err
	}
	if r.IsComplete {
		return shared.NewDomainError("INVALID_STATE", "Response is already complete")
	}

	q, err := s.findQuestion(ctx, r.SurveyID, input.QuestionID)
	if err != nil {
		return err
	}

	a, err := response.NewAnswer(r.ID, q, answerValue(input))
	if err != nil {
		return err
	}

	return s.responseRepo.UpsertAnswer(ctx, a)
}

// ResumePosition rebuilds the kiosk's place in a partially answered
// response from the persisted answers, so a reloaded kiosk resumes where
// the patient left off. The position is the furthest question forward
// navigation can reach: the first unanswered required question, or the
// last question when nothing blocks.
func (s *Service) ResumePosition(ctx context.Context, responseID uuid.UUID) (*ResumePositionResult, error) {
	r, err := s.responseRepo.FindByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if r.IsComplete {
		return nil, shared.NewDomainError("INVALID_STATE", "Response is already complete")
	}

	sv, err := s.surveyRepo.FindByID(ctx, r.SurveyID)
	if err != nil {
		return nil, err
	}

	answered, err := s.responseRepo.AnsweredQuestionIDs(ctx, responseID)
	if err != nil {
		return nil, err
	}

	flow := survey.NewFlow(sv.Questions)
	for flow.Next(answered) {
	}

	result := &ResumePositionResult{
		ResponseID:     responseID,
		QuestionIndex:  flow.Index(),
		TotalQuestions: len(sv.Questions),
		CanComplete:    len(flow.MissingRequired(answered)) == 0,
	}
	if q, ok := flow.Current(); ok {
		id := q.ID
		result.QuestionID = &id
	}
	return result, nil
}

// CompleteResponse re-validates that every required question is answered,
// marks the response complete, and feeds its NPS answer into the daily
// rollup. The rollup runs after the completion flag flips, so a response
// that loses the completion race never double-counts.
func (s *Service) CompleteResponse(ctx context.Context, responseID uuid.UUID) (*CompleteResponseResult, error) {
	r, err := s.responseRepo.FindByID(ctx, responseID)
	if err != nil {
		return nil, err
	}

	sv, err := s.surveyRepo.FindByID(ctx, r.SurveyID)
	if err != nil {
		return nil, err
	}

	answered, err := s.responseRepo.AnsweredQuestionIDs(ctx, responseID)
	if err != nil {
		return nil, err
	}

	flow := survey.NewFlow(sv.Questions)
	if missing := flow.MissingRequired(answered); len(missing) > 0 {
		return nil, &MissingRequiredError{QuestionIDs: missing}
	}

	completedAt := time.Now()
	if err := s.responseRepo.MarkComplete(ctx, responseID, completedAt); err != nil {
		return nil, err
	}

	if score, ok, err := s.responseRepo.NPSScore(ctx, responseID); err != nil {
		// The response is already complete; a rollup failure is logged
		// rather than surfaced as a kiosk error
		s.logger.Error("Failed to read NPS answer for rollup",
			zap.String("response_id", responseID.String()),
			zap.Error(err),
		)
	} else if ok {
		if err := s.npsRepo.Increment(ctx, completedAt, nps.Classify(score)); err != nil {
			s.logger.Error("Failed to update NPS rollup",
				zap.String("response_id", responseID.String()),
				zap.Int("score", score),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Response completed",
		zap.String("response_id", responseID.String()),
		zap.String("survey_id", r.SurveyID.String()),
	)

	return &CompleteResponseResult{
		ResponseID:      responseID,
		CompletedAt:     completedAt,
		ThankYouMessage: sv.ThankYouMessage,
	}, nil
}

// findQuestion locates a question within the response's survey
func (s *Service) findQuestion(ctx context.Context, surveyID, questionID uuid.UUID) (*survey.Question, error) {
	sv, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	for i := range sv.Questions {
		if sv.Questions[i].ID == questionID {
			return &sv.Questions[i], nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Question does not belong to this survey")
}

// answerValue maps the transport-level input to the domain answer variant
func answerValue(input SaveAnswerInput) response.AnswerValue {
	switch {
	case input.NumericValue != nil:
		return response.Numeric(*input.NumericValue)
	case input.Choices != nil:
		return response.Choices(input.Choices)
	case input.TextValue != nil:
		return response.Text(*input.TextValue)
	default:
		return response.Empty()
	}
}
