package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/dentalkiosk/backend/internal/domain/identity"
	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/dentalkiosk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAdminUserRepository implements identity.Repository using GORM
type GormAdminUserRepository struct {
	db *gorm.DB
}

// NewGormAdminUserRepository creates a new GormAdminUserRepository
func NewGormAdminUserRepository(db *gorm.DB) *GormAdminUserRepository {
	return &GormAdminUserRepository{db: db}
}

// Create creates a new admin user
func (r *GormAdminUserRepository) Create(ctx context.Context, user *identity.AdminUser) error {
	model := &models.AdminUserModel{}
	model.FromDomain(user)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing admin user
func (r *GormAdminUserRepository) Update(ctx context.Context, user *identity.AdminUser) error {
	model := &models.AdminUserModel{}
	model.FromDomain(user)
	result := r.db.WithContext(ctx).
		Model(&models.AdminUserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":      model.Username,
			"password_hash": model.PasswordHash,
			"display_name":  model.DisplayName,
			"role":          model.Role,
			"is_active":     model.IsActive,
			"last_login_at": model.LastLoginAt,
			"last_login_ip": model.LastLoginIP,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an admin user by ID
func (r *GormAdminUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.AdminUser, error) {
	var model models.AdminUserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUsername finds an admin user by username
func (r *GormAdminUserRepository) FindByUsername(ctx context.Context, username string) (*identity.AdminUser, error) {
	var model models.AdminUserModel
	if err := r.db.WithContext(ctx).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

var _ identity.Repository = (*GormAdminUserRepository)(nil)
