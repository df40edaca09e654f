package models

import (
	"time"

	"github.com/dentalkiosk/backend/internal/domain/practice"
)

// PracticeModel is the persistence model for the Practice domain entity.
// A single row with a small integer key, not a UUID entity.
type PracticeModel struct {
	ID                  int64     `gorm:"primary_key"`
	Name                string    `gorm:"type:varchar(200);not null"`
	PrimaryColor        string    `gorm:"type:varchar(7);not null;default:'#2563eb'"`
	KioskTimeoutSeconds int       `gorm:"not null;default:120"`
	AllowAnonymous      bool      `gorm:"not null;default:true"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PracticeModel) TableName() string {
	return "practices"
}

// ToDomain converts the persistence model to a domain Practice entity.
func (m *PracticeModel) ToDomain() *practice.Practice {
	return &practice.Practice{
		ID:                  m.ID,
		Name:                m.Name,
		PrimaryColor:        m.PrimaryColor,
		KioskTimeoutSeconds: m.KioskTimeoutSeconds,
		AllowAnonymous:      m.AllowAnonymous,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Practice entity.
func (m *PracticeModel) FromDomain(p *practice.Practice) {
	m.ID = p.ID
	m.Name = p.Name
	m.PrimaryColor = p.PrimaryColor
	m.KioskTimeoutSeconds = p.KioskTimeoutSeconds
	m.AllowAnonymous = p.AllowAnonymous
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
