package models

import (
	"encoding/json"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/response"
	"github.com/google/uuid"
)

// ResponseModel is the persistence model for the Response domain entity.
type ResponseModel struct {
	BaseModel
	SurveyID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PatientName  string     `gorm:"type:varchar(200)"`
	PatientEmail string     `gorm:"type:varchar(200)"`
	IsAnonymous  bool       `gorm:"not null;default:false"`
	DeviceType   string     `gorm:"type:varchar(50)"`
	IPAddress    string     `gorm:"type:varchar(45)"`
	IsComplete   bool       `gorm:"not null;default:false;index"`
	CompletedAt  *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (ResponseModel) TableName() string {
	return "survey_responses"
}

// ToDomain converts the persistence model to a domain Response entity.
func (m *ResponseModel) ToDomain() *response.Response {
	return &response.Response{
		BaseEntity:   m.BaseModel.ToDomain(),
		SurveyID:     m.SurveyID,
		PatientName:  m.PatientName,
		PatientEmail: m.PatientEmail,
		IsAnonymous:  m.IsAnonymous,
		DeviceType:   m.DeviceType,
		IPAddress:    m.IPAddress,
		IsComplete:   m.IsComplete,
		CompletedAt:  m.CompletedAt,
	}
}

// FromDomain populates the persistence model from a domain Response entity.
func (m *ResponseModel) FromDomain(r *response.Response) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.SurveyID = r.SurveyID
	m.PatientName = r.PatientName
	m.PatientEmail = r.PatientEmail
	m.IsAnonymous = r.IsAnonymous
	m.DeviceType = r.DeviceType
	m.IPAddress = r.IPAddress
	m.IsComplete = r.IsComplete
	m.CompletedAt = r.CompletedAt
}

// AnswerModel is the persistence model for the Answer domain entity.
// Exactly one of the three value columns is populated per row, matching
// the answer's variant. AnswerChoices is a JSON-encoded string array.
type AnswerModel struct {
	BaseModel
	ResponseID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_answer_response_question,priority:1"`
	QuestionID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_answer_response_question,priority:2"`
	AnswerNumeric *float64
	AnswerText    *string `gorm:"type:text"`
	AnswerChoices *string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AnswerModel) TableName() string {
	return "survey_answers"
}

// ToDomain converts the persistence model to a domain Answer entity.
func (m *AnswerModel) ToDomain() *response.Answer {
	return &response.Answer{
		BaseEntity: m.BaseModel.ToDomain(),
		ResponseID: m.ResponseID,
		QuestionID: m.QuestionID,
		Value:      m.decodeValue(),
	}
}

func (m *AnswerModel) decodeValue() response.AnswerValue {
	switch {
	case m.AnswerNumeric != nil:
		return response.Numeric(*m.AnswerNumeric)
	case m.AnswerChoices != nil:
		var choices []string
		_ = json.Unmarshal([]byte(*m.AnswerChoices), &choices)
		return response.Choices(choices)
	case m.AnswerText != nil:
		return response.Text(*m.AnswerText)
	default:
		return response.Empty()
	}
}

// FromDomain populates the persistence model from a domain Answer entity.
func (m *AnswerModel) FromDomain(a *response.Answer) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.ResponseID = a.ResponseID
	m.QuestionID = a.QuestionID
	m.AnswerNumeric = nil
	m.AnswerText = nil
	m.AnswerChoices = nil

	if n, ok := a.Value.NumericValue(); ok {
		m.AnswerNumeric = &n
		return
	}
	if choices, ok := a.Value.ChoicesValue(); ok {
		if encoded, err := json.Marshal(choices); err == nil {
			s := string(encoded)
			m.AnswerChoices = &s
		}
		return
	}
	if text, ok := a.Value.TextValue(); ok {
		m.AnswerText = &text
	}
}
