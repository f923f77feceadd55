package repository

import (
	"context"
	"errors"

	"ascend/internal/domain/entity"
)

// Domain-specific errors for habit persistence.
var (
	// ErrHabitNotFound is returned when a habit document is not found.
	ErrHabitNotFound = errors.New("habit not found")
)

// HabitRepository defines the operations on a user's habit sub-collection.
type HabitRepository interface {
	// List retrieves all habits for a user in creation order.
	List(ctx context.Context, userID string) ([]entity.Habit, error)

	// Create persists a new habit and assigns its document ID in place.
	Create(ctx context.Context, userID string, habit *entity.Habit) error

	// Save overwrites an existing habit document.
	Save(ctx context.Context, userID string, habit *entity.Habit) error

	// Delete removes a habit document by ID.
	Delete(ctx context.Context, userID string, habitID string) error
}
