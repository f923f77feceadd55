package usecase

import (
	"context"

	"ascend/internal/domain/entity"
	"ascend/internal/domain/progression"
)

// ProgressionUsecase exposes the derived progression view: profile, rank and
// attributes. Everything here is a pure recomputation over the session
// state; nothing is stored.
type ProgressionUsecase interface {
	GetOverview(ctx context.Context, userID string) (*ProgressionOverview, error)
}

// ProgressionOverview is the derived progression summary for a profile.
type ProgressionOverview struct {
	Profile    *entity.UserProfile    `json:"profile"`
	Rank       progression.RankStatus `json:"rank"`
	Attributes map[string]int         `json:"attributes"`
}
