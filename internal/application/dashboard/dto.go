package dashboard

import (
	"time"

	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/google/uuid"
)

// StatsResult carries the headline dashboard numbers
type StatsResult struct {
	TotalResponses int64  `json:"total_responses"`
	TodayResponses int64  `json:"today_responses"`
	WeekResponses  int64  `json:"week_responses"`
	AverageRating  string `json:"average_rating"`
	NPSScore       int    `json:"nps_score"`
	Promoters      int64  `json:"promoters"`
	Passives       int64  `json:"passives"`
	Detractors     int64  `json:"detractors"`
}

// ListResponsesInput narrows the response listing
type ListResponsesInput struct {
	SurveyID *uuid.UUID
	Limit    int
	Offset   int
}

// ResponseListItem is one row of the admin response listing
type ResponseListItem struct {
	ID          uuid.UUID  `json:"id"`
	SurveyName  string     `json:"survey_name"`
	PatientName string     `json:"patient_name"`
	IsAnonymous bool       `json:"is_anonymous"`
	DeviceType  string     `json:"device_type"`
	CompletedAt *time.Time `json:"completed_at"`
}

// AnswerView is one decoded answer for the response detail screen
type AnswerView struct {
	QuestionID   uuid.UUID           `json:"question_id"`
	QuestionText string              `json:"question_text"`
	QuestionType survey.QuestionType `json:"question_type"`
	Options      []string            `json:"options,omitempty"`
	NumericValue *float64            `json:"numeric_value,omitempty"`
	TextValue    *string             `json:"text_value,omitempty"`
	Choices      []string            `json:"choices,omitempty"`
}

// ResponseDetail is one response with its decoded answers
type ResponseDetail struct {
	ID           uuid.UUID    `json:"id"`
	SurveyName   string       `json:"survey_name"`
	PatientName  string       `json:"patient_name"`
	PatientEmail string       `json:"patient_email"`
	IsAnonymous  bool         `json:"is_anonymous"`
	DeviceType   string       `json:"device_type"`
	IPAddress    string       `json:"ip_address"`
	IsComplete   bool         `json:"is_complete"`
	StartedAt    time.Time    `json:"started_at"`
	CompletedAt  *time.Time   `json:"completed_at"`
	Answers      []AnswerView `json:"answers"`
}

// SurveyOverview is one row of the admin survey listing
type SurveyOverview struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	SurveyType    string    `json:"survey_type"`
	IsActive      bool      `json:"is_active"`
	ShowOnKiosk   bool      `json:"show_on_kiosk"`
	ResponseCount int64     `json:"response_count"`
}

// ChartPoint is one day's completed-response count
type ChartPoint struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// RatingBreakdownItem is one star question's mean and answer count
type RatingBreakdownItem struct {
	QuestionText  string `json:"question_text"`
	AverageRating string `json:"average_rating"`
	ResponseCount int64  `json:"response_count"`
}
