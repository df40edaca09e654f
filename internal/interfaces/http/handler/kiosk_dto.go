package handler

import "time"

// StartResponseRequest begins a survey response from the kiosk
type StartResponseRequest struct {
	SurveyID     string `json:"survey_id" binding:"required,uuid"`
	PatientName  string `json:"patient_name" binding:"omitempty,max=100"`
	PatientEmail string `json:"patient_email" binding:"omitempty,email"`
	DeviceType   string `json:"device_type" binding:"omitempty,oneof=kiosk tablet web"`
}

// StartResponseResponse is the created response handle
type StartResponseResponse struct {
	ResponseID  string    `json:"response_id"`
	IsAnonymous bool      `json:"is_anonymous"`
	StartedAt   time.Time `json:"started_at"`
}

// SaveAnswerRequest carries one answer value. Exactly one of the value
// fields should be set, matching the question type.
type SaveAnswerRequest struct {
	NumericValue *float64 `json:"numeric_value"`
	TextValue    *string  `json:"text_value"`
	Choices      []string `json:"choices"`
}

// ResumePositionResponse tells a reloaded kiosk where to pick up
type ResumePositionResponse struct {
	ResponseID     string  `json:"response_id"`
	QuestionIndex  int     `json:"question_index"`
	QuestionID     *string `json:"question_id,omitempty"`
	TotalQuestions int     `json:"total_questions"`
	CanComplete    bool    `json:"can_complete"`
}

// CompleteResponseResponse reports a submitted response
type CompleteResponseResponse struct {
	ResponseID      string    `json:"response_id"`
	CompletedAt     time.Time `json:"completed_at"`
	ThankYouMessage string    `json:"thank_you_message"`
}

// KioskPracticeResponse is the practice branding consumed by the kiosk UI
type KioskPracticeResponse struct {
	Name                string `json:"name"`
	PrimaryColor        string `json:"primary_color"`
	KioskTimeoutSeconds int    `json:"kiosk_timeout_seconds"`
	AllowAnonymous      bool   `json:"allow_anonymous"`
}
