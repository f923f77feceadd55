package usecase

import (
	"context"

	"ascend/internal/domain/entity"
)

// SkillUsecase defines the interface for the passive skill tree.
type SkillUsecase interface {
	// ListSkills returns the catalog annotated with the user's unlock state.
	ListSkills(ctx context.Context, userID string) ([]SkillStatus, error)

	// UnlockSkill purchases a skill: the cost is deducted from XP and the
	// skill joins the profile's unlocked set in one atomic write. Rejected
	// before any state change when XP is insufficient.
	UnlockSkill(ctx context.Context, userID string, skillID string) (*entity.UserProfile, error)
}

// SkillStatus is a catalog entry plus the user's unlock state.
type SkillStatus struct {
	Skill    entity.PassiveSkill `json:"skill"`
	Unlocked bool                `json:"unlocked"`
}
