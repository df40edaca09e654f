package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/dentalkiosk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormSurveyRepository_FindByID(t *testing.T) {
	t.Run("returns not found for missing survey", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormSurveyRepository(gormDB)

		surveyID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "surveys" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(surveyID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		s, err := repo.FindByID(context.Background(), surveyID)
		assert.Nil(t, s)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSurveyRepository_FindKioskSurveys(t *testing.T) {
	t.Run("filters to active kiosk surveys", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormSurveyRepository(gormDB)

		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "name", "survey_type", "is_active", "show_on_kiosk"}).
			AddRow(id, "Visit Feedback", "feedback", true, true)

		mock.ExpectQuery(`SELECT \* FROM "surveys" WHERE is_active = \$1 AND show_on_kiosk = \$2 ORDER BY survey_type ASC, name ASC`).
			WithArgs(true, true).
			WillReturnRows(rows)

		surveys, err := repo.FindKioskSurveys(context.Background())
		require.NoError(t, err)
		require.Len(t, surveys, 1)
		assert.Equal(t, "Visit Feedback", surveys[0].Name)
		assert.True(t, surveys[0].OfferedOnKiosk())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSurveyRepository_FindAllWithCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSurveyRepository(db)
	ctx := context.Background()

	feedback := seedSurvey(t, db, "Visit Feedback", true)
	intake := seedSurvey(t, db, "New Patient Intake", false)

	// Two completed responses for feedback, one incomplete that must not count
	seedResponse(t, db, feedback.ID, true)
	seedResponse(t, db, feedback.ID, true)
	seedResponse(t, db, feedback.ID, false)

	result, err := repo.FindAllWithCounts(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)

	byName := map[string]int64{}
	for _, r := range result {
		byName[r.Survey.Name] = r.ResponseCount
	}
	assert.Equal(t, int64(2), byName["Visit Feedback"])
	assert.Equal(t, int64(0), byName["New Patient Intake"])
	_ = intake
}

func TestGormSurveyRepository_FindByIDLoadsQuestionsInOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSurveyRepository(db)
	ctx := context.Background()

	s := seedSurvey(t, db, "Visit Feedback", true)
	seedQuestion(t, db, s.ID, "Second question", survey.QuestionTypeNPS, 2)
	seedQuestion(t, db, s.ID, "First question", survey.QuestionTypeRating5, 1)

	loaded, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Questions, 2)
	assert.Equal(t, "First question", loaded.Questions[0].Text)
	assert.Equal(t, "Second question", loaded.Questions[1].Text)
}

// seedSurvey inserts a survey row directly
func seedSurvey(t *testing.T, db *gorm.DB, name string, kiosk bool) *models.SurveyModel {
	t.Helper()
	s, err := survey.NewSurvey(name)
	require.NoError(t, err)
	s.IsActive = kiosk
	s.ShowOnKiosk = kiosk
	model := &models.SurveyModel{}
	model.FromDomain(s)
	require.NoError(t, db.Create(model).Error)
	return model
}

// seedQuestion inserts a question row directly
func seedQuestion(t *testing.T, db *gorm.DB, surveyID uuid.UUID, text string, qType survey.QuestionType, order int) *models.QuestionModel {
	t.Helper()
	q, err := survey.NewQuestion(surveyID, text, qType, order)
	require.NoError(t, err)
	model := &models.QuestionModel{}
	model.FromDomain(q)
	require.NoError(t, db.Create(model).Error)
	return model
}
