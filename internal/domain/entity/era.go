package entity

import (
	"time"
)

// RewardKind classifies what an era reward grants on completion.
type RewardKind string

const (
	RewardKindXP             RewardKind = "xp"
	RewardKindUnlock         RewardKind = "unlock"
	RewardKindItem           RewardKind = "item"
	RewardKindAttributeBoost RewardKind = "attribute-boost"
)

// EraObjective is one narrative objective of an era. Objectives are not
// independently tracked while an era is in progress; they read as met only
// once the era itself is completed.
type EraObjective struct {
	ID          string
	Description string
}

// EraReward is one reward granted when an era is completed. Dominating marks
// an XP reward whose value is additionally folded into the era's completion
// threshold on top of its start gate.
type EraReward struct {
	ID          string
	Kind        RewardKind
	Description string
	Value       int
	Dominating  bool
}

// EraTheme carries the presentation hints for an era. The core only stores
// and passes these identifiers, it never resolves them.
type EraTheme struct {
	Icon       string
	ColorToken string
}

// Era is a themed progression milestone. Predefined eras come from the static
// catalog and are read-only templates; user-created eras are live per-user
// documents, discriminated by IsUserCreated.
type Era struct {
	ID                      string
	Name                    string
	Description             string
	CompletionDescription   string
	Objectives              []EraObjective
	CompletionConditionText string
	SpecialMechanicsText    string
	Rewards                 []EraReward
	Theme                   EraTheme
	NextEraID               string
	XPRequiredToStart       int
	StartedAt               *time.Time
	CompletedAt             *time.Time
	IsUserCreated           bool
	CreatedAt               time.Time // Server-stamped creation time; zero for catalog templates.
}

// XPReward sums the values of all plain XP rewards of the era.
func (e *Era) XPReward() int {
	total := 0
	for _, r := range e.Rewards {
		if r.Kind == RewardKindXP {
			total += r.Value
		}
	}

	return total
}

// DominatingXP sums the values of rewards flagged as dominating; the result
// raises the completion threshold above the start gate.
func (e *Era) DominatingXP() int {
	total := 0
	for _, r := range e.Rewards {
		if r.Dominating {
			total += r.Value
		}
	}

	return total
}

// EraOverlay is the per-user field-level override record merged over a
// predefined era template at resolve time. Every field is optional; empty
// fields are pruned after each merge so the stored overlay stays minimal.
// Objectives and rewards of predefined eras are never overridable.
type EraOverlay struct {
	Name                    *string
	Description             *string
	CompletionDescription   *string
	CompletionConditionText *string
	SpecialMechanicsText    *string
	XPRequiredToStart       *int
	Icon                    *string
	ColorToken              *string
	StartedAt               *time.Time
	CompletedAt             *time.Time
}

// IsEmpty reports whether the overlay carries no overrides at all.
func (o EraOverlay) IsEmpty() bool {
	return o.Name == nil &&
		o.Description == nil &&
		o.CompletionDescription == nil &&
		o.CompletionConditionText == nil &&
		o.SpecialMechanicsText == nil &&
		o.XPRequiredToStart == nil &&
		o.Icon == nil &&
		o.ColorToken == nil &&
		o.StartedAt == nil &&
		o.CompletedAt == nil
}

// Apply returns a copy of the template with the overlay's populated fields
// merged over it. The template itself is never mutated.
func (o EraOverlay) Apply(template Era) Era {
	merged := template
	if o.Name != nil {
		merged.Name = *o.Name
	}
	if o.Description != nil {
		merged.Description = *o.Description
	}
	if o.CompletionDescription != nil {
		merged.CompletionDescription = *o.CompletionDescription
	}
	if o.CompletionConditionText != nil {
		merged.CompletionConditionText = *o.CompletionConditionText
	}
	if o.SpecialMechanicsText != nil {
		merged.SpecialMechanicsText = *o.SpecialMechanicsText
	}
	if o.XPRequiredToStart != nil {
		merged.XPRequiredToStart = *o.XPRequiredToStart
	}
	if o.Icon != nil {
		merged.Theme.Icon = *o.Icon
	}
	if o.ColorToken != nil {
		merged.Theme.ColorToken = *o.ColorToken
	}
	if o.StartedAt != nil {
		merged.StartedAt = o.StartedAt
	}
	if o.CompletedAt != nil {
		merged.CompletedAt = o.CompletedAt
	}

	return merged
}
