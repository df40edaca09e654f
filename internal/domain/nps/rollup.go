package nps

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bucket classifies an NPS answer on the standard 11-point scale.
type Bucket string

const (
	BucketPromoter  Bucket = "promoter"  // 9-10
	BucketPassive   Bucket = "passive"   // 7-8
	BucketDetractor Bucket = "detractor" // 0-6
)

// Classify maps a 0-10 likelihood-to-recommend score to its bucket.
func Classify(score int) Bucket {
	switch {
	case score >= 9:
		return BucketPromoter
	case score <= 6:
		return BucketDetractor
	default:
		return BucketPassive
	}
}

// DailyRollup is the per-calendar-day aggregate maintained incrementally on
// each completed response carrying an nps answer.
type DailyRollup struct {
	ScoreDate      time.Time
	Promoters      int64
	Passives       int64
	Detractors     int64
	TotalResponses int64
	NPSScore       decimal.Decimal
}

// Score computes (promoters - detractors) / total * 100. Zero when there is
// no data.
func Score(promoters, detractors, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(promoters - detractors).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100))
}

// ScoreRounded computes the live dashboard NPS, rounded to the nearest
// integer.
func ScoreRounded(promoters, detractors, total int64) int {
	return int(Score(promoters, detractors, total).Round(0).IntPart())
}
