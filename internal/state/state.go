// Package state owns the locally held view of a signed-in user's remote
// documents. Mutators work value-based: take a snapshot, apply the change to
// a working copy, swap it in, and restore the snapshot if the remote write
// fails. Snapshots are deep copies, never captured references, so a rollback
// cannot alias state touched by a later call.
package state

import (
	"time"

	"ascend/internal/domain/entity"
)

// State is the local mirror of one user's profile and collections.
type State struct {
	Profile   entity.UserProfile
	Habits    []entity.Habit
	Goals     []entity.Goal
	SleepLogs []entity.SleepLog
	UserEras  []entity.Era
}

// Clone returns a deep copy of the state. Every slice, map and pointer field
// is duplicated so the copy shares no mutable memory with the original.
func (st State) Clone() State {
	out := st

	out.Profile = cloneProfile(st.Profile)
	out.Habits = append([]entity.Habit(nil), st.Habits...)
	out.Goals = append([]entity.Goal(nil), st.Goals...)
	out.SleepLogs = append([]entity.SleepLog(nil), st.SleepLogs...)

	out.UserEras = make([]entity.Era, len(st.UserEras))
	for i, era := range st.UserEras {
		out.UserEras[i] = CloneEra(era)
	}

	return out
}

func cloneProfile(p entity.UserProfile) entity.UserProfile {
	out := p
	out.CompletedEraIDs = append([]string(nil), p.CompletedEraIDs...)
	out.UnlockedSkillIDs = append([]string(nil), p.UnlockedSkillIDs...)

	if p.EraCustomizations != nil {
		out.EraCustomizations = make(map[string]entity.EraOverlay, len(p.EraCustomizations))
		for id, overlay := range p.EraCustomizations {
			out.EraCustomizations[id] = cloneOverlay(overlay)
		}
	}

	return out
}

func cloneOverlay(o entity.EraOverlay) entity.EraOverlay {
	out := o
	out.Name = cloneStringPtr(o.Name)
	out.Description = cloneStringPtr(o.Description)
	out.CompletionDescription = cloneStringPtr(o.CompletionDescription)
	out.CompletionConditionText = cloneStringPtr(o.CompletionConditionText)
	out.SpecialMechanicsText = cloneStringPtr(o.SpecialMechanicsText)
	out.Icon = cloneStringPtr(o.Icon)
	out.ColorToken = cloneStringPtr(o.ColorToken)
	out.XPRequiredToStart = cloneIntPtr(o.XPRequiredToStart)
	out.StartedAt = cloneTimePtr(o.StartedAt)
	out.CompletedAt = cloneTimePtr(o.CompletedAt)

	return out
}

// CloneEra returns a deep copy of an era, including its objective and reward
// slices and timestamp pointers.
func CloneEra(era entity.Era) entity.Era {
	out := era
	out.Objectives = append([]entity.EraObjective(nil), era.Objectives...)
	out.Rewards = append([]entity.EraReward(nil), era.Rewards...)
	out.StartedAt = cloneTimePtr(era.StartedAt)
	out.CompletedAt = cloneTimePtr(era.CompletedAt)

	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

func cloneTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
