package persistence

import (
	"context"
	"errors"

	"github.com/dentalkiosk/backend/internal/domain/practice"
	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/dentalkiosk/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPracticeRepository implements practice.Repository using GORM
type GormPracticeRepository struct {
	db *gorm.DB
}

// NewGormPracticeRepository creates a new GormPracticeRepository
func NewGormPracticeRepository(db *gorm.DB) *GormPracticeRepository {
	return &GormPracticeRepository{db: db}
}

// Find returns the practice row by ID
func (r *GormPracticeRepository) Find(ctx context.Context, id int64) (*practice.Practice, error) {
	var model models.PracticeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Update persists changed practice settings
func (r *GormPracticeRepository) Update(ctx context.Context, p *practice.Practice) error {
	model := &models.PracticeModel{}
	model.FromDomain(p)
	result := r.db.WithContext(ctx).
		Model(&models.PracticeModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":                  model.Name,
			"primary_color":         model.PrimaryColor,
			"kiosk_timeout_seconds": model.KioskTimeoutSeconds,
			"allow_anonymous":       model.AllowAnonymous,
			"updated_at":            model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ practice.Repository = (*GormPracticeRepository)(nil)
