package progression

import (
	"ascend/internal/domain/entity"
)

// EraStatus classifies how an era relates to the given profile.
type EraStatus string

const (
	EraStatusCurrent   EraStatus = "current"
	EraStatusCompleted EraStatus = "completed"
	EraStatusAvailable EraStatus = "available"
	EraStatusLocked    EraStatus = "locked"
)

// StatusOf resolves an era's status from profile state alone. Overlays never
// participate: current/completed/available is decided by currentEraId,
// completedEraIds and the XP gate only.
func StatusOf(era *entity.Era, profile *entity.UserProfile) EraStatus {
	switch {
	case profile.CurrentEraID == era.ID:
		return EraStatusCurrent
	case profile.HasCompletedEra(era.ID):
		return EraStatusCompleted
	case profile.XP >= era.XPRequiredToStart:
		return EraStatusAvailable
	default:
		return EraStatusLocked
	}
}

// CanStart reports whether the profile may start the era. Completed eras can
// never be restarted, the current era cannot be started again, and the XP
// gate must be met.
func CanStart(era *entity.Era, profile *entity.UserProfile) bool {
	if profile.HasCompletedEra(era.ID) {
		return false
	}
	if profile.CurrentEraID == era.ID {
		return false
	}

	return profile.XP >= era.XPRequiredToStart
}

// ObjectivesMet reports whether all of an era's objectives read as met.
// Objectives are not tracked individually while an era is in progress; they
// become retroactively true only once the era is in completedEraIds. An era
// with no objectives trivially has them all met.
func ObjectivesMet(era *entity.Era, profile *entity.UserProfile) bool {
	if len(era.Objectives) == 0 {
		return true
	}

	return profile.HasCompletedEra(era.ID)
}

// CanComplete is the UI-facing predicate for finishing the current era: all
// objectives met (or none defined) and XP at or above the start gate raised
// by any dominating rewards. It is deliberately redundant with the objective
// rule; the dominating sum keeps endgame eras from completing on arrival.
func CanComplete(era *entity.Era, profile *entity.UserProfile) bool {
	if profile.CurrentEraID != era.ID {
		return false
	}
	if !ObjectivesMet(era, profile) {
		return false
	}

	threshold := era.XPRequiredToStart + era.DominatingXP()

	return profile.XP >= threshold
}
