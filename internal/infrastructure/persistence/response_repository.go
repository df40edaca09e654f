package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/response"
	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/dentalkiosk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormResponseRepository implements response.Repository using GORM
type GormResponseRepository struct {
	db *gorm.DB
}

// NewGormResponseRepository creates a new GormResponseRepository
func NewGormResponseRepository(db *gorm.DB) *GormResponseRepository {
	return &GormResponseRepository{db: db}
}

// Create persists a new response at survey start
func (r *GormResponseRepository) Create(ctx context.Context, resp *response.Response) error {
	model := &models.ResponseModel{}
	model.FromDomain(resp)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a response by ID
func (r *GormResponseRepository) FindByID(ctx context.Context, id uuid.UUID) (*response.Response, error) {
	var model models.ResponseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// MarkComplete sets the completion flag and timestamp. The is_complete
// guard in the WHERE clause makes concurrent completions race-safe: only
// one statement flips the flag.
func (r *GormResponseRepository) MarkComplete(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.ResponseModel{}).
		Where("id = ? AND is_complete = ?", id, false).
		Updates(map[string]any{
			"is_complete":  true,
			"completed_at": at,
			"updated_at":   at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either missing or already complete; distinguish for the caller
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.ResponseModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.ErrNotFound
		}
		return shared.NewDomainError("INVALID_STATE", "Response is already complete")
	}
	return nil
}

// UpsertAnswer inserts or overwrites the answer for the (response, question)
// pair as a single atomic INSERT ... ON CONFLICT statement.
func (r *GormResponseRepository) UpsertAnswer(ctx context.Context, a *response.Answer) error {
	model := &models.AnswerModel{}
	model.FromDomain(a)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "response_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"answer_numeric", "answer_text", "answer_choices", "updated_at",
			}),
		}).
		Create(model).Error
}

// AnsweredQuestionIDs returns the IDs of questions that have a stored
// answer for the response
func (r *GormResponseRepository) AnsweredQuestionIDs(ctx context.Context, responseID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.AnswerModel{}).
		Where("response_id = ?", responseID).
		Pluck("question_id", &ids).Error; err != nil {
		return nil, err
	}
	answered := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		answered[id] = true
	}
	return answered, nil
}

// NPSScore returns the numeric answer to the response's nps-typed question,
// or ok=false when the response carries none
func (r *GormResponseRepository) NPSScore(ctx context.Context, responseID uuid.UUID) (int, bool, error) {
	// Scan into a pointer so an empty result set is distinguishable from a
	// stored score of 0
	var score *float64
	err := r.db.WithContext(ctx).
		Table("survey_answers sa").
		Select("sa.answer_numeric").
		Joins("JOIN survey_questions sq ON sq.id = sa.question_id").
		Where("sa.response_id = ? AND sq.question_type = ? AND sa.answer_numeric IS NOT NULL",
			responseID, string(survey.QuestionTypeNPS)).
		Limit(1).
		Scan(&score).Error
	if err != nil {
		return 0, false, err
	}
	if score == nil {
		return 0, false, nil
	}
	return int(*score), true, nil
}

// List returns completed responses matching the filter, joined with survey
// names, ordered by completion time descending
func (r *GormResponseRepository) List(ctx context.Context, filter response.ListFilter) ([]response.ListItem, error) {
	type listRow struct {
		models.ResponseModel
		SurveyName string
	}

	query := r.db.WithContext(ctx).
		Table("survey_responses sr").
		Select("sr.*, s.name AS survey_name").
		Joins("JOIN surveys s ON s.id = sr.survey_id").
		Where("sr.is_complete = ?", true).
		Order("sr.completed_at DESC")

	if filter.SurveyID != nil {
		query = query.Where("sr.survey_id = ?", *filter.SurveyID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []listRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]response.ListItem, len(rows))
	for i, row := range rows {
		items[i] = response.ListItem{
			Response:   *row.ResponseModel.ToDomain(),
			SurveyName: row.SurveyName,
		}
	}
	return items, nil
}

// AnswerDetails returns all answers for a response joined with question
// metadata, ordered by display order
func (r *GormResponseRepository) AnswerDetails(ctx context.Context, responseID uuid.UUID) ([]response.AnswerDetail, error) {
	type detailRow struct {
		models.AnswerModel
		QuestionText    string
		QuestionType    string
		QuestionOptions *string
		DisplayOrder    int
	}

	var rows []detailRow
	if err := r.db.WithContext(ctx).
		Table("survey_answers sa").
		Select("sa.*, sq.question_text, sq.question_type, sq.options AS question_options, sq.display_order").
		Joins("JOIN survey_questions sq ON sq.id = sa.question_id").
		Where("sa.response_id = ?", responseID).
		Order("sq.display_order ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	details := make([]response.AnswerDetail, len(rows))
	for i, row := range rows {
		qModel := models.QuestionModel{
			QuestionText: row.QuestionText,
			QuestionType: row.QuestionType,
			Options:      row.QuestionOptions,
			DisplayOrder: row.DisplayOrder,
		}
		q := qModel.ToDomain()
		details[i] = response.AnswerDetail{
			Answer:          *row.AnswerModel.ToDomain(),
			QuestionText:    q.Text,
			QuestionType:    q.Type,
			QuestionOptions: q.Options,
			DisplayOrder:    q.DisplayOrder,
		}
	}
	return details, nil
}

var _ response.Repository = (*GormResponseRepository)(nil)
