package kiosk

import (
	"time"

	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/google/uuid"
)

// SurveySummary is one card on the kiosk's survey picker
type SurveySummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	SurveyType    string    `json:"survey_type"`
	EstimatedTime string    `json:"estimated_time"`
}

// SurveyDetail is a full survey with its ordered questions for taking
type SurveyDetail struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	SurveyType      string         `json:"survey_type"`
	EstimatedTime   string         `json:"estimated_time"`
	ThankYouMessage string         `json:"thank_you_message"`
	Questions       []QuestionInfo `json:"questions"`
}

// QuestionInfo is one question as presented on the kiosk
type QuestionInfo struct {
	ID           uuid.UUID           `json:"id"`
	Text         string              `json:"text"`
	Type         survey.QuestionType `json:"type"`
	Options      []string            `json:"options,omitempty"`
	DisplayOrder int                 `json:"display_order"`
	IsRequired   bool                `json:"is_required"`
	HelpText     string              `json:"help_text,omitempty"`
}

// StartResponseInput contains the input for starting a survey response
type StartResponseInput struct {
	SurveyID     uuid.UUID
	PatientName  string
	PatientEmail string
	DeviceType   string
	IPAddress    string
}

// StartResponseResult contains the created response handle
type StartResponseResult struct {
	ResponseID  uuid.UUID
	IsAnonymous bool
	StartedAt   time.Time
}

// SaveAnswerInput contains the input for saving one answer. Exactly one of
// the three value fields should be populated, matching the question type.
type SaveAnswerInput struct {
	ResponseID   uuid.UUID
	QuestionID   uuid.UUID
	NumericValue *float64
	TextValue    *string
	Choices      []string
}

// ResumePositionResult tells a reloaded kiosk where to pick a response
// back up: the furthest question forward navigation reaches given the
// answers already persisted.
type ResumePositionResult struct {
	ResponseID     uuid.UUID
	QuestionIndex  int
	QuestionID     *uuid.UUID
	TotalQuestions int
	CanComplete    bool
}

// CompleteResponseResult reports the outcome of submitting a response
type CompleteResponseResult struct {
	ResponseID      uuid.UUID
	CompletedAt     time.Time
	ThankYouMessage string
}

// MissingRequiredError reports which required questions are still
// unanswered when completion is attempted.
type MissingRequiredError struct {
	QuestionIDs []uuid.UUID
}

func (e *MissingRequiredError) Error() string {
	return "required questions are unanswered"
}
