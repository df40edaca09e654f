package survey

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionType(t *testing.T) {
	t.Run("all known types are valid", func(t *testing.T) {
		types := []QuestionType{
			QuestionTypeRating5, QuestionTypeNPS, QuestionTypeYesNo,
			QuestionTypeMultipleChoice, QuestionTypeCheckbox, QuestionTypeText,
			QuestionTypeTextarea, QuestionTypeDate, QuestionTypeSignature,
			QuestionTypeSectionHeader,
		}
		for _, qt := range types {
			assert.True(t, qt.IsValid(), string(qt))
		}
	})

	t.Run("unknown type is invalid", func(t *testing.T) {
		assert.False(t, QuestionType("slider").IsValid())
	})

	t.Run("section header collects no answer", func(t *testing.T) {
		assert.False(t, QuestionTypeSectionHeader.CollectsAnswer())
		assert.True(t, QuestionTypeRating5.CollectsAnswer())
	})

	t.Run("only choice types carry options", func(t *testing.T) {
		assert.True(t, QuestionTypeMultipleChoice.HasOptions())
		assert.True(t, QuestionTypeCheckbox.HasOptions())
		assert.False(t, QuestionTypeText.HasOptions())
	})
}

func TestNewSurvey(t *testing.T) {
	t.Run("creates survey with trimmed name", func(t *testing.T) {
		s, err := NewSurvey("  Patient Satisfaction  ")
		require.NoError(t, err)
		assert.Equal(t, "Patient Satisfaction", s.Name)
		assert.False(t, s.OfferedOnKiosk())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewSurvey("   ")
		assert.Error(t, err)
	})
}

func TestNewQuestion(t *testing.T) {
	surveyID := uuid.New()

	t.Run("creates question", func(t *testing.T) {
		q, err := NewQuestion(surveyID, "How was your visit?", QuestionTypeRating5, 0)
		require.NoError(t, err)
		assert.Equal(t, surveyID, q.SurveyID)
		assert.False(t, q.IsRequired)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewQuestion(surveyID, "How was your visit?", QuestionType("slider"), 0)
		assert.Error(t, err)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := NewQuestion(surveyID, " ", QuestionTypeText, 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative display order", func(t *testing.T) {
		_, err := NewQuestion(surveyID, "Comments", QuestionTypeText, -1)
		assert.Error(t, err)
	})
}

func TestQuestionSetOptions(t *testing.T) {
	t.Run("sets options on checkbox question", func(t *testing.T) {
		q, err := NewQuestion(uuid.New(), "Which services?", QuestionTypeCheckbox, 1)
		require.NoError(t, err)

		err = q.SetOptions([]string{"Cleaning", "Whitening", "Filling"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Cleaning", "Whitening", "Filling"}, q.Options)
	})

	t.Run("rejects options on text question", func(t *testing.T) {
		q, err := NewQuestion(uuid.New(), "Comments", QuestionTypeTextarea, 1)
		require.NoError(t, err)

		err = q.SetOptions([]string{"a"})
		assert.Error(t, err)
	})

	t.Run("rejects empty option list", func(t *testing.T) {
		q, err := NewQuestion(uuid.New(), "Pick one", QuestionTypeMultipleChoice, 1)
		require.NoError(t, err)

		err = q.SetOptions(nil)
		assert.Error(t, err)
	})
}

func TestSurveyQuestionSets(t *testing.T) {
	s, err := NewSurvey("Checkup Feedback")
	require.NoError(t, err)

	header, _ := NewQuestion(s.ID, "About your visit", QuestionTypeSectionHeader, 0)
	header.IsRequired = true // flag is meaningless on headers
	rating, _ := NewQuestion(s.ID, "Rate us", QuestionTypeRating5, 1)
	rating.IsRequired = true
	comments, _ := NewQuestion(s.ID, "Comments", QuestionTypeTextarea, 2)
	s.Questions = []Question{*header, *rating, *comments}

	t.Run("answerable excludes section headers", func(t *testing.T) {
		ids := s.AnswerableQuestionIDs()
		assert.Equal(t, []uuid.UUID{rating.ID, comments.ID}, ids)
	})

	t.Run("required excludes headers and optional questions", func(t *testing.T) {
		ids := s.RequiredQuestionIDs()
		assert.Equal(t, []uuid.UUID{rating.ID}, ids)
	})
}
