package model

import (
	"time"

	"ascend/internal/domain/entity"
)

// SleepLogDoc mirrors one document in the 'users/{uid}/sleepLogs'
// sub-collection.
type SleepLogDoc struct {
	Date               string    `firestore:"date"`
	TimeToBed          string    `firestore:"timeToBed"`
	TimeWokeUp         string    `firestore:"timeWokeUp"`
	SleepDurationHours float64   `firestore:"sleepDurationHours"`
	Quality            string    `firestore:"quality"`
	Notes              string    `firestore:"notes,omitempty"`
	CreatedAt          time.Time `firestore:"createdAt,serverTimestamp"`
}

// FromSleepLogDomain maps a domain sleep log onto its document shape.
func FromSleepLogDomain(log *entity.SleepLog) *SleepLogDoc {
	return &SleepLogDoc{
		Date:               log.Date,
		TimeToBed:          log.TimeToBed,
		TimeWokeUp:         log.TimeWokeUp,
		SleepDurationHours: log.SleepDurationHours,
		Quality:            string(log.Quality),
		Notes:              log.Notes,
		CreatedAt:          log.CreatedAt,
	}
}

// ToSleepLogDomain maps a document back to the domain entity.
func (d *SleepLogDoc) ToSleepLogDomain(id string) entity.SleepLog {
	return entity.SleepLog{
		ID:                 id,
		Date:               d.Date,
		TimeToBed:          d.TimeToBed,
		TimeWokeUp:         d.TimeWokeUp,
		SleepDurationHours: d.SleepDurationHours,
		Quality:            entity.SleepQuality(d.Quality),
		Notes:              d.Notes,
		CreatedAt:          d.CreatedAt,
	}
}
