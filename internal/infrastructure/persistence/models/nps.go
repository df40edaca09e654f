package models

import (
	"time"

	"github.com/dentalkiosk/backend/internal/domain/nps"
	"github.com/shopspring/decimal"
)

// NpsRollupModel is the persistence model for the per-day NPS aggregate.
// Keyed by calendar date, maintained by atomic upsert-with-increment.
type NpsRollupModel struct {
	ID             int64           `gorm:"primary_key"`
	ScoreDate      time.Time       `gorm:"type:date;not null;uniqueIndex"`
	Promoters      int64           `gorm:"not null;default:0"`
	Passives       int64           `gorm:"not null;default:0"`
	Detractors     int64           `gorm:"not null;default:0"`
	TotalResponses int64           `gorm:"not null;default:0"`
	NpsScore       decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (NpsRollupModel) TableName() string {
	return "nps_daily_rollups"
}

// ToDomain converts the persistence model to a domain DailyRollup.
func (m *NpsRollupModel) ToDomain() *nps.DailyRollup {
	return &nps.DailyRollup{
		ScoreDate:      m.ScoreDate,
		Promoters:      m.Promoters,
		Passives:       m.Passives,
		Detractors:     m.Detractors,
		TotalResponses: m.TotalResponses,
		NPSScore:       m.NpsScore,
	}
}
