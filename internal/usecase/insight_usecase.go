package usecase

import (
	"context"

	"ascend/internal/domain/service"
)

// InsightUsecase wraps the generative text boundary. Failures here surface
// as notifications only and never touch progression state.
type InsightUsecase interface {
	// SummarizeHabits builds the raw habit report from the user's session
	// state and asks the text service for a summary.
	SummarizeHabits(ctx context.Context, userID string, preferences string) (*service.HabitSummary, error)

	// GetQuote fetches a motivational quote for one of the fixed categories.
	GetQuote(ctx context.Context, category string) (string, error)
}
