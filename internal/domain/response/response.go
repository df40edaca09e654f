package response

import (
	"strings"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/google/uuid"
)

// Response is one patient's attempt at one survey. It is created when the
// patient starts the survey and marked complete on submission. Answers are
// persisted incrementally and owned by the response.
type Response struct {
	shared.BaseEntity
	SurveyID     uuid.UUID
	PatientName  string
	PatientEmail string
	IsAnonymous  bool
	DeviceType   string
	IPAddress    string
	IsComplete   bool
	CompletedAt  *time.Time
}

// NewResponse creates a response at survey start. The anonymous flag is
// derived from the absence of a patient name.
func NewResponse(surveyID uuid.UUID, patientName, patientEmail, deviceType, ipAddress string) *Response {
	patientName = strings.TrimSpace(patientName)
	return &Response{
		BaseEntity:   shared.NewBaseEntity(),
		SurveyID:     surveyID,
		PatientName:  patientName,
		PatientEmail: strings.TrimSpace(patientEmail),
		IsAnonymous:  patientName == "",
		DeviceType:   deviceType,
		IPAddress:    ipAddress,
	}
}

// MarkComplete sets the completion flag and timestamp. Completing twice is
// rejected so the NPS rollup is only fed once per response.
func (r *Response) MarkComplete(at time.Time) error {
	if r.IsComplete {
		return shared.NewDomainError("INVALID_STATE", "Response is already complete")
	}
	r.IsComplete = true
	r.CompletedAt = &at
	r.Touch()
	return nil
}

// Answer is one question's captured value within a response. At most one
// answer exists per (response, question) pair; saves overwrite.
type Answer struct {
	shared.BaseEntity
	ResponseID uuid.UUID
	QuestionID uuid.UUID
	Value      AnswerValue
}

// NewAnswer creates an answer after checking the value against the
// question's declared type.
func NewAnswer(responseID uuid.UUID, q *survey.Question, value AnswerValue) (*Answer, error) {
	if err := value.CheckAgainst(q.Type); err != nil {
		return nil, err
	}
	return &Answer{
		BaseEntity: shared.NewBaseEntity(),
		ResponseID: responseID,
		QuestionID: q.ID,
		Value:      value,
	}, nil
}
