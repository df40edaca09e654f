package survey

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFlowQuestions(t *testing.T) []Question {
	t.Helper()
	surveyID := uuid.New()

	header, err := NewQuestion(surveyID, "Your visit", QuestionTypeSectionHeader, 0)
	require.NoError(t, err)
	rating, err := NewQuestion(surveyID, "Rate your visit", QuestionTypeRating5, 1)
	require.NoError(t, err)
	rating.IsRequired = true
	comments, err := NewQuestion(surveyID, "Anything else?", QuestionTypeTextarea, 2)
	require.NoError(t, err)

	return []Question{*header, *rating, *comments}
}

func TestFlowNavigation(t *testing.T) {
	t.Run("starts at first question", func(t *testing.T) {
		f := NewFlow(buildFlowQuestions(t))
		assert.Equal(t, 0, f.Index())
		assert.False(t, f.AtEnd())
	})

	t.Run("section header is always passable", func(t *testing.T) {
		f := NewFlow(buildFlowQuestions(t))
		assert.True(t, f.Next(nil))
		assert.Equal(t, 1, f.Index())
	})

	t.Run("required question blocks until answered", func(t *testing.T) {
		qs := buildFlowQuestions(t)
		f := NewFlow(qs)
		f.Seek(1)

		assert.False(t, f.Next(nil))
		assert.Equal(t, 1, f.Index())

		answered := map[uuid.UUID]bool{qs[1].ID: true}
		assert.True(t, f.Next(answered))
		assert.Equal(t, 2, f.Index())
	})

	t.Run("optional question never blocks", func(t *testing.T) {
		f := NewFlow(buildFlowQuestions(t))
		f.Seek(2)
		assert.True(t, f.CanAdvance(nil))
	})

	t.Run("previous always allowed above zero", func(t *testing.T) {
		f := NewFlow(buildFlowQuestions(t))
		assert.False(t, f.Prev())
		f.Seek(2)
		assert.True(t, f.Prev())
		assert.Equal(t, 1, f.Index())
	})

	t.Run("next stops at last question", func(t *testing.T) {
		qs := buildFlowQuestions(t)
		f := NewFlow(qs)
		f.Seek(2)
		assert.True(t, f.AtEnd())
		assert.False(t, f.Next(map[uuid.UUID]bool{qs[1].ID: true}))
		assert.Equal(t, 2, f.Index())
	})

	t.Run("seek clamps to valid range", func(t *testing.T) {
		f := NewFlow(buildFlowQuestions(t))
		f.Seek(99)
		assert.Equal(t, 2, f.Index())
		f.Seek(-5)
		assert.Equal(t, 0, f.Index())
	})

	t.Run("empty survey", func(t *testing.T) {
		f := NewFlow(nil)
		assert.Equal(t, -1, f.Index())
		_, ok := f.Current()
		assert.False(t, ok)
		assert.False(t, f.Next(nil))
	})
}

func TestFlowMissingRequired(t *testing.T) {
	qs := buildFlowQuestions(t)
	f := NewFlow(qs)

	t.Run("reports unanswered required questions", func(t *testing.T) {
		missing := f.MissingRequired(nil)
		assert.Equal(t, []uuid.UUID{qs[1].ID}, missing)
	})

	t.Run("empty when answered", func(t *testing.T) {
		missing := f.MissingRequired(map[uuid.UUID]bool{qs[1].ID: true})
		assert.Empty(t, missing)
	})
}
