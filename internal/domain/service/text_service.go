package service

import (
	"context"
)

// Quote categories accepted by the text service.
const (
	QuoteCategorySuccess         = "success"
	QuoteCategoryStudy           = "study"
	QuoteCategorySelfImprovement = "self-improvement"
	QuoteCategoryDiscipline      = "discipline"
)

// ValidQuoteCategory reports whether the category is one of the fixed set.
func ValidQuoteCategory(category string) bool {
	switch category {
	case QuoteCategorySuccess, QuoteCategoryStudy, QuoteCategorySelfImprovement, QuoteCategoryDiscipline:
		return true
	default:
		return false
	}
}

// HabitSummary is the text service's answer to a habit summarization request.
type HabitSummary struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}

// TextService is the generative text boundary. Both operations are plain
// request/response calls with no retry or backoff; failures surface to the
// caller and never touch progression state.
type TextService interface {
	// SummarizeHabits produces a narrative summary plus suggestions from raw
	// habit data and the user's free-form preferences text.
	SummarizeHabits(ctx context.Context, rawHabitData string, preferences string) (*HabitSummary, error)

	// GenerateQuote produces a motivational quote for one of the fixed
	// categories.
	GenerateQuote(ctx context.Context, category string) (string, error)
}
