package response

import (
	"testing"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	surveyID := uuid.New()

	t.Run("named response is not anonymous", func(t *testing.T) {
		r := NewResponse(surveyID, "Jane Roe", "jane@example.com", "kiosk", "10.0.0.5")
		assert.False(t, r.IsAnonymous)
		assert.Equal(t, "Jane Roe", r.PatientName)
		assert.False(t, r.IsComplete)
		assert.Nil(t, r.CompletedAt)
	})

	t.Run("anonymous flag derived from empty name", func(t *testing.T) {
		r := NewResponse(surveyID, "   ", "", "kiosk", "10.0.0.5")
		assert.True(t, r.IsAnonymous)
		assert.Empty(t, r.PatientName)
	})
}

func TestResponseMarkComplete(t *testing.T) {
	t.Run("sets flag and timestamp", func(t *testing.T) {
		r := NewResponse(uuid.New(), "", "", "kiosk", "")
		at := time.Now()

		require.NoError(t, r.MarkComplete(at))
		assert.True(t, r.IsComplete)
		require.NotNil(t, r.CompletedAt)
		assert.Equal(t, at, *r.CompletedAt)
	})

	t.Run("rejects double completion", func(t *testing.T) {
		r := NewResponse(uuid.New(), "", "", "kiosk", "")
		require.NoError(t, r.MarkComplete(time.Now()))
		assert.Error(t, r.MarkComplete(time.Now()))
	})
}

func TestNewAnswer(t *testing.T) {
	responseID := uuid.New()

	t.Run("accepts value matching question type", func(t *testing.T) {
		q, err := survey.NewQuestion(uuid.New(), "Rate us", survey.QuestionTypeRating5, 0)
		require.NoError(t, err)

		a, err := NewAnswer(responseID, q, Numeric(5))
		require.NoError(t, err)
		assert.Equal(t, responseID, a.ResponseID)
		assert.Equal(t, q.ID, a.QuestionID)
	})

	t.Run("rejects mismatched variant", func(t *testing.T) {
		q, err := survey.NewQuestion(uuid.New(), "Comments", survey.QuestionTypeTextarea, 0)
		require.NoError(t, err)

		_, err = NewAnswer(responseID, q, Numeric(3))
		assert.Error(t, err)
	})
}
