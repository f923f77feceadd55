package model

import (
	"time"

	"ascend/internal/domain/entity"
)

// HabitDoc mirrors one document in the 'users/{uid}/habits' sub-collection.
type HabitDoc struct {
	Name              string    `firestore:"name"`
	Category          string    `firestore:"category"`
	Completed         bool      `firestore:"completed"`
	XP                int       `firestore:"xp"`
	Streak            int       `firestore:"streak"`
	LastCompletedDate string    `firestore:"lastCompletedDate,omitempty"`
	CreatedAt         time.Time `firestore:"createdAt,serverTimestamp"`
}

// FromHabitDomain maps a domain habit onto its document shape.
func FromHabitDomain(habit *entity.Habit) *HabitDoc {
	return &HabitDoc{
		Name:              habit.Name,
		Category:          habit.Category,
		Completed:         habit.Completed,
		XP:                habit.XP,
		Streak:            habit.Streak,
		LastCompletedDate: habit.LastCompletedDate,
		CreatedAt:         habit.CreatedAt,
	}
}

// ToHabitDomain maps a document back to the domain entity.
func (d *HabitDoc) ToHabitDomain(id string) entity.Habit {
	return entity.Habit{
		ID:                id,
		Name:              d.Name,
		Category:          d.Category,
		Completed:         d.Completed,
		XP:                d.XP,
		Streak:            d.Streak,
		LastCompletedDate: d.LastCompletedDate,
		CreatedAt:         d.CreatedAt,
	}
}
