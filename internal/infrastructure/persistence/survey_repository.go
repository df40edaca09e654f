package persistence

import (
	"context"
	"errors"

	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/dentalkiosk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSurveyRepository implements survey.Repository using GORM
type GormSurveyRepository struct {
	db *gorm.DB
}

// NewGormSurveyRepository creates a new GormSurveyRepository
func NewGormSurveyRepository(db *gorm.DB) *GormSurveyRepository {
	return &GormSurveyRepository{db: db}
}

// FindByID finds a survey by ID with its questions sorted by display order
func (r *GormSurveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*survey.Survey, error) {
	var model models.SurveyModel
	if err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindKioskSurveys returns active, kiosk-visible surveys ordered by type
// then name. Questions are not loaded; the kiosk fetches them per survey.
func (r *GormSurveyRepository) FindKioskSurveys(ctx context.Context) ([]survey.Survey, error) {
	var surveyModels []models.SurveyModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND show_on_kiosk = ?", true, true).
		Order("survey_type ASC, name ASC").
		Find(&surveyModels).Error; err != nil {
		return nil, err
	}

	surveys := make([]survey.Survey, len(surveyModels))
	for i, model := range surveyModels {
		surveys[i] = *model.ToDomain()
	}
	return surveys, nil
}

// FindAllWithCounts returns every survey with its completed-response count,
// ordered by name.
func (r *GormSurveyRepository) FindAllWithCounts(ctx context.Context) ([]survey.SurveyWithCount, error) {
	var surveyModels []models.SurveyModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&surveyModels).Error; err != nil {
		return nil, err
	}

	type countRow struct {
		SurveyID uuid.UUID
		Count    int64
	}
	var counts []countRow
	if err := r.db.WithContext(ctx).
		Model(&models.ResponseModel{}).
		Select("survey_id, COUNT(*) AS count").
		Where("is_complete = ?", true).
		Group("survey_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	countBySurvey := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		countBySurvey[c.SurveyID] = c.Count
	}

	result := make([]survey.SurveyWithCount, len(surveyModels))
	for i, model := range surveyModels {
		result[i] = survey.SurveyWithCount{
			Survey:        *model.ToDomain(),
			ResponseCount: countBySurvey[model.ID],
		}
	}
	return result, nil
}

var _ survey.Repository = (*GormSurveyRepository)(nil)
