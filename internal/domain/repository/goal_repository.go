package repository

import (
	"context"
	"errors"

	"ascend/internal/domain/entity"
)

// Domain-specific errors for goal persistence.
var (
	// ErrGoalNotFound is returned when a goal document is not found.
	ErrGoalNotFound = errors.New("goal not found")
)

// GoalRepository defines the operations on a user's goal sub-collection.
type GoalRepository interface {
	// List retrieves all goals for a user in creation order.
	List(ctx context.Context, userID string) ([]entity.Goal, error)

	// Create persists a new goal and assigns its document ID in place.
	Create(ctx context.Context, userID string, goal *entity.Goal) error

	// Save overwrites an existing goal document.
	Save(ctx context.Context, userID string, goal *entity.Goal) error

	// Delete removes a goal document by ID.
	Delete(ctx context.Context, userID string, goalID string) error
}
