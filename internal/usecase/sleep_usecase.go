package usecase

import (
	"context"

	"ascend/internal/domain/entity"
)

// SleepUsecase defines the interface for sleep log operations. Logs are
// immutable once created; the only mutations are create and delete.
type SleepUsecase interface {
	ListSleepLogs(ctx context.Context, userID string) ([]entity.SleepLog, error)
	CreateSleepLog(ctx context.Context, userID string, input *CreateSleepLogInput) (*entity.SleepLog, error)
	DeleteSleepLog(ctx context.Context, userID string, logID string) error
}

// --- Input DTOs ---

// CreateSleepLogInput defines the data required to record one night. The
// duration is derived from the two clock times, never supplied.
type CreateSleepLogInput struct {
	Date       string `json:"date" validate:"required"`
	TimeToBed  string `json:"time_to_bed" validate:"required"`
	TimeWokeUp string `json:"time_woke_up" validate:"required"`
	Quality    string `json:"quality" validate:"required"`
	Notes      string `json:"notes"`
}
