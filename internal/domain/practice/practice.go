package practice

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/shared"
)

// DefaultID is the single practice row consulted on every request.
const DefaultID int64 = 1

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Practice is the single configurable tenant: display name, brand color,
// and kiosk behavior settings.
type Practice struct {
	ID                  int64
	Name                string
	PrimaryColor        string
	KioskTimeoutSeconds int
	AllowAnonymous      bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Rename sets the practice display name.
func (p *Practice) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Practice name cannot be empty")
	}
	p.Name = name
	p.UpdatedAt = time.Now()
	return nil
}

// SetPrimaryColor sets the brand color as a hex triplet.
func (p *Practice) SetPrimaryColor(color string) error {
	if !hexColorPattern.MatchString(color) {
		return shared.NewDomainError("INVALID_INPUT", "Primary color must be a hex color like #2563eb")
	}
	p.PrimaryColor = color
	p.UpdatedAt = time.Now()
	return nil
}

// SetKioskTimeout sets the inactivity timeout after which the kiosk returns
// to the welcome screen.
func (p *Practice) SetKioskTimeout(seconds int) error {
	if seconds < 10 {
		return shared.NewDomainError("INVALID_INPUT", "Kiosk timeout must be at least 10 seconds")
	}
	p.KioskTimeoutSeconds = seconds
	p.UpdatedAt = time.Now()
	return nil
}

// Repository defines the interface for practice persistence
type Repository interface {
	// Find returns the practice row by ID
	Find(ctx context.Context, id int64) (*Practice, error)

	// Update persists changed practice settings
	Update(ctx context.Context, p *Practice) error
}
