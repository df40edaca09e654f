package models

import (
	"encoding/json"

	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/google/uuid"
)

// SurveyModel is the persistence model for the Survey domain entity.
type SurveyModel struct {
	BaseModel
	Name            string          `gorm:"type:varchar(200);not null"`
	Description     string          `gorm:"type:text"`
	SurveyType      string          `gorm:"type:varchar(50);index"`
	IsActive        bool            `gorm:"not null;default:false;index"`
	ShowOnKiosk     bool            `gorm:"not null;default:false"`
	EstimatedTime   string          `gorm:"type:varchar(50)"`
	ThankYouMessage string          `gorm:"type:text"`
	Questions       []QuestionModel `gorm:"foreignKey:SurveyID"`
}

// TableName returns the table name for GORM
func (SurveyModel) TableName() string {
	return "surveys"
}

// ToDomain converts the persistence model to a domain Survey entity.
func (m *SurveyModel) ToDomain() *survey.Survey {
	s := &survey.Survey{
		BaseEntity:      m.BaseModel.ToDomain(),
		Name:            m.Name,
		Description:     m.Description,
		SurveyType:      m.SurveyType,
		IsActive:        m.IsActive,
		ShowOnKiosk:     m.ShowOnKiosk,
		EstimatedTime:   m.EstimatedTime,
		ThankYouMessage: m.ThankYouMessage,
	}
	if len(m.Questions) > 0 {
		s.Questions = make([]survey.Question, len(m.Questions))
		for i, q := range m.Questions {
			s.Questions[i] = *q.ToDomain()
		}
	}
	return s
}

// FromDomain populates the persistence model from a domain Survey entity.
func (m *SurveyModel) FromDomain(s *survey.Survey) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.Description = s.Description
	m.SurveyType = s.SurveyType
	m.IsActive = s.IsActive
	m.ShowOnKiosk = s.ShowOnKiosk
	m.EstimatedTime = s.EstimatedTime
	m.ThankYouMessage = s.ThankYouMessage
}

// QuestionModel is the persistence model for the Question domain entity.
// Options is a JSON-encoded string array, null for types without options.
type QuestionModel struct {
	BaseModel
	SurveyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	QuestionText string    `gorm:"type:text;not null"`
	QuestionType string    `gorm:"type:varchar(30);not null"`
	Options      *string   `gorm:"type:text"`
	DisplayOrder int       `gorm:"not null;uniqueIndex:idx_question_survey_order,priority:2"`
	IsRequired   bool      `gorm:"not null;default:false"`
	HelpText     string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (QuestionModel) TableName() string {
	return "survey_questions"
}

// ToDomain converts the persistence model to a domain Question entity.
func (m *QuestionModel) ToDomain() *survey.Question {
	q := &survey.Question{
		BaseEntity:   m.BaseModel.ToDomain(),
		SurveyID:     m.SurveyID,
		Text:         m.QuestionText,
		Type:         survey.QuestionType(m.QuestionType),
		DisplayOrder: m.DisplayOrder,
		IsRequired:   m.IsRequired,
		HelpText:     m.HelpText,
	}
	if m.Options != nil && *m.Options != "" {
		// A row with corrupt options JSON keeps an empty list rather than
		// failing the whole survey load
		_ = json.Unmarshal([]byte(*m.Options), &q.Options)
	}
	return q
}

// FromDomain populates the persistence model from a domain Question entity.
func (m *QuestionModel) FromDomain(q *survey.Question) {
	m.FromDomainBaseEntity(q.BaseEntity)
	m.SurveyID = q.SurveyID
	m.QuestionText = q.Text
	m.QuestionType = string(q.Type)
	m.DisplayOrder = q.DisplayOrder
	m.IsRequired = q.IsRequired
	m.HelpText = q.HelpText
	if len(q.Options) > 0 {
		encoded, err := json.Marshal(q.Options)
		if err == nil {
			s := string(encoded)
			m.Options = &s
		}
	} else {
		m.Options = nil
	}
}
