// Package model contains the Firestore document shapes of the persistence
// layer. Documents are mapped to and from pure domain entities at the
// repository boundary; field names follow the store's camelCase convention.
package model

import (
	"time"

	"ascend/internal/domain/entity"
)

// ProfileDoc mirrors the 'users/{uid}' document. The document ID is the
// identity-provider UID, so it is not stored as a field.
type ProfileDoc struct {
	DisplayName       string                `firestore:"displayName"`
	Email             string                `firestore:"email"`
	XP                int                   `firestore:"xp"`
	AvatarRef         string                `firestore:"avatarRef,omitempty"`
	CurrentEraID      string                `firestore:"currentEraId,omitempty"`
	CompletedEraIDs   []string              `firestore:"completedEraIds"`
	EraCustomizations map[string]OverlayDoc `firestore:"eraCustomizations,omitempty"`
	UnlockedSkillIDs  []string              `firestore:"unlockedSkillIds"`
	CreatedAt         time.Time             `firestore:"createdAt"`
	UpdatedAt         time.Time             `firestore:"updatedAt"`
}

// OverlayDoc is one per-era customization record embedded in the profile
// document. Pruned fields are omitted entirely, keeping overlays minimal.
type OverlayDoc struct {
	Name                    *string    `firestore:"name,omitempty"`
	Description             *string    `firestore:"description,omitempty"`
	CompletionDescription   *string    `firestore:"completionDescription,omitempty"`
	CompletionConditionText *string    `firestore:"completionConditionText,omitempty"`
	SpecialMechanicsText    *string    `firestore:"specialMechanicsText,omitempty"`
	XPRequiredToStart       *int       `firestore:"xpRequiredToStart,omitempty"`
	Icon                    *string    `firestore:"icon,omitempty"`
	ColorToken              *string    `firestore:"colorToken,omitempty"`
	StartedAt               *time.Time `firestore:"startedAt,omitempty"`
	CompletedAt             *time.Time `firestore:"completedAt,omitempty"`
}

// FromProfileDomain maps a domain profile onto its document shape.
func FromProfileDomain(profile *entity.UserProfile) *ProfileDoc {
	doc := &ProfileDoc{
		DisplayName:      profile.DisplayName,
		Email:            profile.Email,
		XP:               profile.XP,
		AvatarRef:        profile.AvatarRef,
		CurrentEraID:     profile.CurrentEraID,
		CompletedEraIDs:  emptyIfNil(profile.CompletedEraIDs),
		UnlockedSkillIDs: emptyIfNil(profile.UnlockedSkillIDs),
		CreatedAt:        profile.CreatedAt,
		UpdatedAt:        profile.UpdatedAt,
	}

	if len(profile.EraCustomizations) > 0 {
		doc.EraCustomizations = make(map[string]OverlayDoc, len(profile.EraCustomizations))
		for eraID, overlay := range profile.EraCustomizations {
			doc.EraCustomizations[eraID] = fromOverlayDomain(overlay)
		}
	}

	return doc
}

// ToProfileDomain maps a document back to the domain entity. The document ID
// is supplied by the caller since it never appears inside the document.
func (d *ProfileDoc) ToProfileDomain(id string) *entity.UserProfile {
	profile := &entity.UserProfile{
		ID:                id,
		DisplayName:       d.DisplayName,
		Email:             d.Email,
		XP:                d.XP,
		AvatarRef:         d.AvatarRef,
		CurrentEraID:      d.CurrentEraID,
		CompletedEraIDs:   emptyIfNil(d.CompletedEraIDs),
		UnlockedSkillIDs:  emptyIfNil(d.UnlockedSkillIDs),
		EraCustomizations: map[string]entity.EraOverlay{},
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}

	for eraID, overlay := range d.EraCustomizations {
		profile.EraCustomizations[eraID] = overlay.toDomain()
	}

	return profile
}

func fromOverlayDomain(o entity.EraOverlay) OverlayDoc {
	return OverlayDoc{
		Name:                    o.Name,
		Description:             o.Description,
		CompletionDescription:   o.CompletionDescription,
		CompletionConditionText: o.CompletionConditionText,
		SpecialMechanicsText:    o.SpecialMechanicsText,
		XPRequiredToStart:       o.XPRequiredToStart,
		Icon:                    o.Icon,
		ColorToken:              o.ColorToken,
		StartedAt:               o.StartedAt,
		CompletedAt:             o.CompletedAt,
	}
}

func (d OverlayDoc) toDomain() entity.EraOverlay {
	return entity.EraOverlay{
		Name:                    d.Name,
		Description:             d.Description,
		CompletionDescription:   d.CompletionDescription,
		CompletionConditionText: d.CompletionConditionText,
		SpecialMechanicsText:    d.SpecialMechanicsText,
		XPRequiredToStart:       d.XPRequiredToStart,
		Icon:                    d.Icon,
		ColorToken:              d.ColorToken,
		StartedAt:               d.StartedAt,
		CompletedAt:             d.CompletedAt,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
