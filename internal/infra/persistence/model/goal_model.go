package model

import (
	"time"

	"ascend/internal/domain/entity"
)

// GoalDoc mirrors one document in the 'users/{uid}/goals' sub-collection.
type GoalDoc struct {
	Title       string    `firestore:"title"`
	Description string    `firestore:"description,omitempty"`
	Measurable  string    `firestore:"measurable,omitempty"`
	Achievable  string    `firestore:"achievable,omitempty"`
	Relevant    string    `firestore:"relevant,omitempty"`
	TimeBound   time.Time `firestore:"timeBound"`
	XP          int       `firestore:"xp"`
	IsCompleted bool      `firestore:"isCompleted"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
}

// FromGoalDomain maps a domain goal onto its document shape.
func FromGoalDomain(goal *entity.Goal) *GoalDoc {
	return &GoalDoc{
		Title:       goal.Title,
		Description: goal.Description,
		Measurable:  goal.Measurable,
		Achievable:  goal.Achievable,
		Relevant:    goal.Relevant,
		TimeBound:   goal.TimeBound,
		XP:          goal.XP,
		IsCompleted: goal.IsCompleted,
		CreatedAt:   goal.CreatedAt,
	}
}

// ToGoalDomain maps a document back to the domain entity.
func (d *GoalDoc) ToGoalDomain(id string) entity.Goal {
	return entity.Goal{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Measurable:  d.Measurable,
		Achievable:  d.Achievable,
		Relevant:    d.Relevant,
		TimeBound:   d.TimeBound,
		XP:          d.XP,
		IsCompleted: d.IsCompleted,
		CreatedAt:   d.CreatedAt,
	}
}
