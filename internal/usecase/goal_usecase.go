package usecase

import (
	"context"
	"time"

	"ascend/internal/domain/entity"
)

// GoalUsecase defines the interface for goal-related business operations.
type GoalUsecase interface {
	ListGoals(ctx context.Context, userID string) ([]entity.Goal, error)
	CreateGoal(ctx context.Context, userID string, input *CreateGoalInput) (*entity.Goal, error)
	ToggleGoal(ctx context.Context, userID string, goalID string) (*entity.Goal, error)
	DeleteGoal(ctx context.Context, userID string, goalID string) error
}

// --- Input DTOs ---

// CreateGoalInput defines the data required to create a SMART goal.
type CreateGoalInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Measurable  string    `json:"measurable"`
	Achievable  string    `json:"achievable"`
	Relevant    string    `json:"relevant"`
	TimeBound   time.Time `json:"time_bound"`
}
