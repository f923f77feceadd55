package model

import (
	"time"

	"ascend/internal/domain/entity"
)

// EraDoc mirrors one document in the 'users/{uid}/eras' sub-collection.
// Only user-created eras live here; predefined eras stay in the static
// catalog and are customized via profile overlays instead.
type EraDoc struct {
	Name                    string        `firestore:"name"`
	Description             string        `firestore:"description,omitempty"`
	CompletionDescription   string        `firestore:"completionDescription,omitempty"`
	Objectives              []ObjectiveDoc `firestore:"objectives"`
	CompletionConditionText string        `firestore:"completionConditionText,omitempty"`
	SpecialMechanicsText    string        `firestore:"specialMechanicsText,omitempty"`
	Rewards                 []RewardDoc   `firestore:"rewards"`
	Icon                    string        `firestore:"icon,omitempty"`
	ColorToken              string        `firestore:"colorToken,omitempty"`
	NextEraID               string        `firestore:"nextEraId,omitempty"`
	XPRequiredToStart       int           `firestore:"xpRequiredToStart"`
	StartedAt               *time.Time    `firestore:"startedAt,omitempty"`
	CompletedAt             *time.Time    `firestore:"completedAt,omitempty"`
	CreatedAt               time.Time     `firestore:"createdAt,serverTimestamp"`
}

// ObjectiveDoc is one narrative objective embedded in an era document.
type ObjectiveDoc struct {
	ID          string `firestore:"id"`
	Description string `firestore:"description"`
}

// RewardDoc is one reward embedded in an era document.
type RewardDoc struct {
	ID          string `firestore:"id"`
	Kind        string `firestore:"kind"`
	Description string `firestore:"description,omitempty"`
	Value       int    `firestore:"value"`
	Dominating  bool   `firestore:"dominating,omitempty"`
}

// FromEraDomain maps a domain era onto its document shape.
func FromEraDomain(era *entity.Era) *EraDoc {
	doc := &EraDoc{
		Name:                    era.Name,
		Description:             era.Description,
		CompletionDescription:   era.CompletionDescription,
		Objectives:              make([]ObjectiveDoc, 0, len(era.Objectives)),
		CompletionConditionText: era.CompletionConditionText,
		SpecialMechanicsText:    era.SpecialMechanicsText,
		Rewards:                 make([]RewardDoc, 0, len(era.Rewards)),
		Icon:                    era.Theme.Icon,
		ColorToken:              era.Theme.ColorToken,
		NextEraID:               era.NextEraID,
		XPRequiredToStart:       era.XPRequiredToStart,
		StartedAt:               era.StartedAt,
		CompletedAt:             era.CompletedAt,
		CreatedAt:               era.CreatedAt,
	}

	for _, o := range era.Objectives {
		doc.Objectives = append(doc.Objectives, ObjectiveDoc{ID: o.ID, Description: o.Description})
	}
	for _, r := range era.Rewards {
		doc.Rewards = append(doc.Rewards, RewardDoc{
			ID:          r.ID,
			Kind:        string(r.Kind),
			Description: r.Description,
			Value:       r.Value,
			Dominating:  r.Dominating,
		})
	}

	return doc
}

// ToEraDomain maps a document back to the domain entity. Everything in this
// sub-collection is user-created by definition.
func (d *EraDoc) ToEraDomain(id string) entity.Era {
	era := entity.Era{
		ID:                      id,
		Name:                    d.Name,
		Description:             d.Description,
		CompletionDescription:   d.CompletionDescription,
		Objectives:              make([]entity.EraObjective, 0, len(d.Objectives)),
		CompletionConditionText: d.CompletionConditionText,
		SpecialMechanicsText:    d.SpecialMechanicsText,
		Rewards:                 make([]entity.EraReward, 0, len(d.Rewards)),
		Theme:                   entity.EraTheme{Icon: d.Icon, ColorToken: d.ColorToken},
		NextEraID:               d.NextEraID,
		XPRequiredToStart:       d.XPRequiredToStart,
		StartedAt:               d.StartedAt,
		CompletedAt:             d.CompletedAt,
		IsUserCreated:           true,
		CreatedAt:               d.CreatedAt,
	}

	for _, o := range d.Objectives {
		era.Objectives = append(era.Objectives, entity.EraObjective{ID: o.ID, Description: o.Description})
	}
	for _, r := range d.Rewards {
		era.Rewards = append(era.Rewards, entity.EraReward{
			ID:          r.ID,
			Kind:        entity.RewardKind(r.Kind),
			Description: r.Description,
			Value:       r.Value,
			Dominating:  r.Dominating,
		})
	}

	return era
}
