package identity

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for admin user persistence
type Repository interface {
	// Create creates a new admin user
	Create(ctx context.Context, user *AdminUser) error

	// Update updates an existing admin user
	Update(ctx context.Context, user *AdminUser) error

	// FindByID finds an admin user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*AdminUser, error)

	// FindByUsername finds an admin user by username
	FindByUsername(ctx context.Context, username string) (*AdminUser, error)
}
