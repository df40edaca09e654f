package survey

import (
	"strings"

	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// QuestionType identifies how a question is presented and which answer
// field it stores into.
type QuestionType string

const (
	QuestionTypeRating5        QuestionType = "rating_5"
	QuestionTypeNPS            QuestionType = "nps"
	QuestionTypeYesNo          QuestionType = "yes_no"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeCheckbox       QuestionType = "checkbox"
	QuestionTypeText           QuestionType = "text"
	QuestionTypeTextarea       QuestionType = "textarea"
	QuestionTypeDate           QuestionType = "date"
	QuestionTypeSignature      QuestionType = "signature"
	QuestionTypeSectionHeader  QuestionType = "section_header"
)

// IsValid reports whether the question type is one of the known types.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeRating5, QuestionTypeNPS, QuestionTypeYesNo,
		QuestionTypeMultipleChoice, QuestionTypeCheckbox, QuestionTypeText,
		QuestionTypeTextarea, QuestionTypeDate, QuestionTypeSignature,
		QuestionTypeSectionHeader:
		return true
	}
	return false
}

// CollectsAnswer reports whether the question type captures a patient answer.
// Section headers are purely navigational dividers.
func (t QuestionType) CollectsAnswer() bool {
	return t != QuestionTypeSectionHeader
}

// HasOptions reports whether the question type carries an ordered option list.
func (t QuestionType) HasOptions() bool {
	return t == QuestionTypeMultipleChoice || t == QuestionTypeCheckbox
}

// Survey is a named questionnaire offered on the kiosk.
type Survey struct {
	shared.BaseEntity
	Name            string
	Description     string
	SurveyType      string
	IsActive        bool
	ShowOnKiosk     bool
	EstimatedTime   string
	ThankYouMessage string
	Questions       []Question
}

// Question is one prompt within a survey. Options is only populated for
// choice and checkbox types. DisplayOrder is unique per survey.
type Question struct {
	shared.BaseEntity
	SurveyID     uuid.UUID
	Text         string
	Type         QuestionType
	Options      []string
	DisplayOrder int
	IsRequired   bool
	HelpText     string
}

// NewSurvey creates a survey with the given name. New surveys start inactive
// and hidden from the kiosk until configured.
func NewSurvey(name string) (*Survey, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Survey name cannot be empty")
	}
	return &Survey{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// NewQuestion creates a question for a survey.
func NewQuestion(surveyID uuid.UUID, text string, qType QuestionType, displayOrder int) (*Question, error) {
	if !qType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown question type: "+string(qType))
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Question text cannot be empty")
	}
	if displayOrder < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Display order cannot be negative")
	}
	return &Question{
		BaseEntity:   shared.NewBaseEntity(),
		SurveyID:     surveyID,
		Text:         text,
		Type:         qType,
		DisplayOrder: displayOrder,
	}, nil
}

// SetOptions sets the ordered option list. Only legal for choice and
// checkbox questions.
func (q *Question) SetOptions(options []string) error {
	if !q.Type.HasOptions() {
		return shared.NewDomainError("INVALID_STATE", "Question type "+string(q.Type)+" does not take options")
	}
	if len(options) == 0 {
		return shared.NewDomainError("INVALID_INPUT", "Option list cannot be empty")
	}
	q.Options = options
	q.Touch()
	return nil
}

// OfferedOnKiosk reports whether the survey is shown to walk-up patients.
func (s *Survey) OfferedOnKiosk() bool {
	return s.IsActive && s.ShowOnKiosk
}

// AnswerableQuestionIDs returns the IDs of all questions that collect an
// answer, in display order.
func (s *Survey) AnswerableQuestionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.Questions))
	for _, q := range s.Questions {
		if q.Type.CollectsAnswer() {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// RequiredQuestionIDs returns the IDs of required questions that collect an
// answer. Section headers are never required regardless of their flag.
func (s *Survey) RequiredQuestionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0)
	for _, q := range s.Questions {
		if q.IsRequired && q.Type.CollectsAnswer() {
			ids = append(ids, q.ID)
		}
	}
	return ids
}
