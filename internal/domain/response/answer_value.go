package response

import (
	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/dentalkiosk/backend/internal/domain/survey"
)

// AnswerKind tags which variant of AnswerValue is populated.
type AnswerKind int

const (
	KindEmpty AnswerKind = iota
	KindNumeric
	KindText
	KindChoices
)

// AnswerValue is a tagged variant over the three storage fields an answer
// can populate. Exactly one variant is meaningful per question type:
// numeric for ratings and NPS, text for free-form and encoded payloads,
// choices for checkbox selections (order preserved for display).
type AnswerValue struct {
	kind    AnswerKind
	numeric float64
	text    string
	choices []string
}

// Numeric creates a numeric answer value.
func Numeric(v float64) AnswerValue {
	return AnswerValue{kind: KindNumeric, numeric: v}
}

// Text creates a text answer value.
func Text(v string) AnswerValue {
	return AnswerValue{kind: KindText, text: v}
}

// Choices creates a multi-selection answer value.
func Choices(v []string) AnswerValue {
	return AnswerValue{kind: KindChoices, choices: v}
}

// Empty is the zero answer value.
func Empty() AnswerValue {
	return AnswerValue{kind: KindEmpty}
}

// Kind returns the populated variant tag.
func (v AnswerValue) Kind() AnswerKind { return v.kind }

// NumericValue returns the numeric variant and whether it is populated.
func (v AnswerValue) NumericValue() (float64, bool) {
	return v.numeric, v.kind == KindNumeric
}

// TextValue returns the text variant and whether it is populated.
func (v AnswerValue) TextValue() (string, bool) {
	return v.text, v.kind == KindText
}

// ChoicesValue returns the choices variant and whether it is populated.
func (v AnswerValue) ChoicesValue() ([]string, bool) {
	return v.choices, v.kind == KindChoices
}

// IsEmpty reports whether no variant is populated.
func (v AnswerValue) IsEmpty() bool { return v.kind == KindEmpty }

// CheckAgainst validates that this variant is legal for the question's
// declared type, including the numeric ranges for ratings and NPS scores.
func (v AnswerValue) CheckAgainst(t survey.QuestionType) error {
	switch t {
	case survey.QuestionTypeSectionHeader:
		return shared.NewDomainError("INVALID_STATE", "Section headers never collect an answer")

	case survey.QuestionTypeRating5:
		n, ok := v.NumericValue()
		if !ok {
			return shared.NewDomainError("INVALID_INPUT", "Rating questions take a numeric answer")
		}
		if n != float64(int(n)) || n < 1 || n > 5 {
			return shared.NewDomainError("INVALID_INPUT", "Rating must be an integer between 1 and 5")
		}
		return nil

	case survey.QuestionTypeNPS:
		n, ok := v.NumericValue()
		if !ok {
			return shared.NewDomainError("INVALID_INPUT", "NPS questions take a numeric answer")
		}
		if n != float64(int(n)) || n < 0 || n > 10 {
			return shared.NewDomainError("INVALID_INPUT", "NPS score must be an integer between 0 and 10")
		}
		return nil

	case survey.QuestionTypeCheckbox:
		if _, ok := v.ChoicesValue(); !ok {
			return shared.NewDomainError("INVALID_INPUT", "Checkbox questions take a list of selected options")
		}
		return nil

	case survey.QuestionTypeYesNo, survey.QuestionTypeMultipleChoice,
		survey.QuestionTypeText, survey.QuestionTypeTextarea,
		survey.QuestionTypeDate, survey.QuestionTypeSignature:
		if _, ok := v.TextValue(); !ok {
			return shared.NewDomainError("INVALID_INPUT", "Question type "+string(t)+" takes a text answer")
		}
		return nil
	}

	return shared.NewDomainError("INVALID_INPUT", "Unknown question type: "+string(t))
}
