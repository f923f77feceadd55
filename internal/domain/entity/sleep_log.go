package entity

import (
	"time"
)

// SleepQuality is the ordinal quality rating of one night's sleep.
type SleepQuality string

const (
	SleepQualityPoor      SleepQuality = "poor"
	SleepQualityFair      SleepQuality = "fair"
	SleepQualityGood      SleepQuality = "good"
	SleepQualityExcellent SleepQuality = "excellent"
)

// IsValid reports whether the quality is one of the known ordinal values.
func (q SleepQuality) IsValid() bool {
	switch q {
	case SleepQualityPoor, SleepQualityFair, SleepQualityGood, SleepQualityExcellent:
		return true
	default:
		return false
	}
}

// Score maps the ordinal quality onto a 0-100 scale for attribute derivation.
func (q SleepQuality) Score() int {
	switch q {
	case SleepQualityPoor:
		return 25
	case SleepQualityFair:
		return 50
	case SleepQualityGood:
		return 75
	case SleepQualityExcellent:
		return 100
	default:
		return 0
	}
}

// SleepLog is one night's record. Immutable once created except for deletion.
type SleepLog struct {
	ID                 string       // Server-assigned document ID.
	Date               string       // Calendar date (YYYY-MM-DD) the night belongs to.
	TimeToBed          string       // Local clock time (HH:MM) the user went to bed.
	TimeWokeUp         string       // Local clock time (HH:MM) the user woke up.
	SleepDurationHours float64      // Derived: wake minus bed, rolled to the next day when wake <= bed.
	Quality            SleepQuality // Ordinal quality rating.
	Notes              string       // Free-form notes.
	CreatedAt          time.Time    // Server-stamped creation time.
}
