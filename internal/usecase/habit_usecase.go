package usecase

import (
	"context"

	"ascend/internal/domain/entity"
)

// HabitUsecase defines the interface for habit-related business operations.
// Toggle and Delete are reconciling mutators: local state is updated
// optimistically and rolled back if the paired remote write fails.
type HabitUsecase interface {
	ListHabits(ctx context.Context, userID string) ([]entity.Habit, error)
	CreateHabit(ctx context.Context, userID string, input *CreateHabitInput) (*entity.Habit, error)
	ToggleHabit(ctx context.Context, userID string, habitID string) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, userID string, habitID string) error
}

// --- Input DTOs ---

// CreateHabitInput defines the data required to create a habit. The XP
// reward is not an input; it is fixed from the category at creation.
type CreateHabitInput struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
}
