package usecase

import (
	"context"

	"ascend/internal/domain/entity"
	"ascend/internal/domain/progression"
)

// EraUsecase defines the interface for era resolution, customization and the
// start/complete state machine.
type EraUsecase interface {
	// ListEras resolves every era visible to the user: the predefined
	// catalog with overlays applied, plus the user's own eras.
	ListEras(ctx context.Context, userID string) ([]ResolvedEra, error)

	// ResolveEra resolves one era by ID: user-created first (it is the live
	// document), predefined template with overlay otherwise.
	ResolveEra(ctx context.Context, userID string, eraID string) (*ResolvedEra, error)

	// UpdateEra edits an era. User-created eras take the fields directly
	// (objectives and rewards included, with stable IDs assigned where
	// missing); predefined eras take only the overlayable fields, merged
	// into the customization record and pruned when cleared.
	UpdateEra(ctx context.Context, userID string, eraID string, input *UpdateEraInput) (*ResolvedEra, error)

	// CreateUserEra allocates a fresh user-created era with one default XP
	// reward and no start gate.
	CreateUserEra(ctx context.Context, userID string, input *CreateUserEraInput) (*ResolvedEra, error)

	// DeleteUserEra removes a user-created era; if it is the current era the
	// profile's current-era pointer is cleared in the same write.
	DeleteUserEra(ctx context.Context, userID string, eraID string) error

	// StartEra makes an era current, stamping its start time.
	StartEra(ctx context.Context, userID string, eraID string) (*ResolvedEra, error)

	// CompleteCurrentEra finishes the era in progress: XP rewards are
	// credited, the era joins completedEraIds and no era remains current.
	CompleteCurrentEra(ctx context.Context, userID string) (*ResolvedEra, error)
}

// ResolvedEra is an era after overlay resolution, annotated with the
// profile-derived status and the start/complete predicates.
type ResolvedEra struct {
	Era         entity.Era            `json:"era"`
	Status      progression.EraStatus `json:"status"`
	CanStart    bool                  `json:"can_start"`
	CanComplete bool                  `json:"can_complete"`
}

// --- Input DTOs ---

// UpdateEraInput carries partial era edits. Nil fields are left untouched.
// Objectives and Rewards only apply to user-created eras.
type UpdateEraInput struct {
	Name                    *string               `json:"name,omitempty"`
	Description             *string               `json:"description,omitempty"`
	CompletionDescription   *string               `json:"completion_description,omitempty"`
	CompletionConditionText *string               `json:"completion_condition_text,omitempty"`
	SpecialMechanicsText    *string               `json:"special_mechanics_text,omitempty"`
	XPRequiredToStart       *int                  `json:"xp_required_to_start,omitempty"`
	Icon                    *string               `json:"icon,omitempty"`
	ColorToken              *string               `json:"color_token,omitempty"`
	Objectives              []entity.EraObjective `json:"objectives,omitempty"`
	Rewards                 []entity.EraReward    `json:"rewards,omitempty"`
}

// CreateUserEraInput defines the data required to create a user era.
type CreateUserEraInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
