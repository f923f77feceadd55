// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// UserProfile is the per-identity progression document. It is the single
// owner of XP and of all era-related bookkeeping; rank and attribute values
// are never stored here, they are derived on read.
type UserProfile struct {
	ID                string                // Identity-provider UID, doubles as the document key.
	DisplayName       string                // The user's display name, seeded from the identity provider.
	Email             string                // The user's primary contact email.
	XP                int                   // Non-negative experience total, adjusted by completions and reversals.
	AvatarRef         string                // Opaque reference to the user's avatar image.
	CurrentEraID      string                // ID of the era in progress, empty when no era is active.
	CompletedEraIDs   []string              // Ordered, append-only set of completed era IDs.
	EraCustomizations map[string]EraOverlay // Per-era field overrides for predefined eras, keyed by era ID.
	UnlockedSkillIDs  []string              // Set of purchased passive skill IDs.
	CreatedAt         time.Time             // Timestamp of first sign-in.
	UpdatedAt         time.Time             // Timestamp of the last modification to this profile.
}

// HasCompletedEra reports whether the given era is recorded as completed.
func (p *UserProfile) HasCompletedEra(eraID string) bool {
	for _, id := range p.CompletedEraIDs {
		if id == eraID {
			return true
		}
	}

	return false
}

// HasUnlockedSkill reports whether the given passive skill has been purchased.
func (p *UserProfile) HasUnlockedSkill(skillID string) bool {
	for _, id := range p.UnlockedSkillIDs {
		if id == skillID {
			return true
		}
	}

	return false
}

// Identity is the opaque authenticated-identity handed over by the identity
// provider boundary. The core never sees tokens, only this projection.
type Identity struct {
	ID          string
	DisplayName string
	Email       string
	PhotoRef    string
}
