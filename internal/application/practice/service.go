package practice

import (
	"context"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/practice"
	"go.uber.org/zap"
)

// Settings is the practice configuration as exposed over the API. The kiosk
// reads it for branding and idle timeout; admins read and write it.
type Settings struct {
	Name                string    `json:"name"`
	PrimaryColor        string    `json:"primary_color"`
	KioskTimeoutSeconds int       `json:"kiosk_timeout_seconds"`
	AllowAnonymous      bool      `json:"allow_anonymous"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// UpdateInput carries the admin settings form. Nil fields are left unchanged.
type UpdateInput struct {
	Name                *string
	PrimaryColor        *string
	KioskTimeoutSeconds *int
	AllowAnonymous      *bool
}

// Service reads and updates the single practice row
type Service struct {
	practiceRepo practice.Repository
	logger       *zap.Logger
}

// NewService creates a new practice service
func NewService(practiceRepo practice.Repository, logger *zap.Logger) *Service {
	return &Service{practiceRepo: practiceRepo, logger: logger}
}

// Get returns the current practice settings
func (s *Service) Get(ctx context.Context) (*Settings, error) {
	p, err := s.practiceRepo.Find(ctx, practice.DefaultID)
	if err != nil {
		return nil, err
	}
	return settingsFrom(p), nil
}

// Update applies the given changes after domain validation and persists them
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Settings, error) {
	p, err := s.practiceRepo.Find(ctx, practice.DefaultID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := p.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.PrimaryColor != nil {
		if err := p.SetPrimaryColor(*input.PrimaryColor); err != nil {
			return nil, err
		}
	}
	if input.KioskTimeoutSeconds != nil {
		if err := p.SetKioskTimeout(*input.KioskTimeoutSeconds); err != nil {
			return nil, err
		}
	}
	if input.AllowAnonymous != nil {
		p.AllowAnonymous = *input.AllowAnonymous
		p.UpdatedAt = time.Now()
	}

	if err := s.practiceRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Practice settings updated", zap.String("name", p.Name))
	return settingsFrom(p), nil
}

func settingsFrom(p *practice.Practice) *Settings {
	return &Settings{
		Name:                p.Name,
		PrimaryColor:        p.PrimaryColor,
		KioskTimeoutSeconds: p.KioskTimeoutSeconds,
		AllowAnonymous:      p.AllowAnonymous,
		UpdatedAt:           p.UpdatedAt,
	}
}
