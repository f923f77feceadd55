package repository

import (
	"context"
	"errors"

	"ascend/internal/domain/entity"
)

// Domain-specific errors for sleep log persistence.
var (
	// ErrSleepLogNotFound is returned when a sleep log document is not found.
	ErrSleepLogNotFound = errors.New("sleep log not found")
)

// SleepLogRepository defines the operations on a user's sleep log
// sub-collection. Logs are immutable once created, so there is no Save.
type SleepLogRepository interface {
	// List retrieves all sleep logs for a user in creation order.
	List(ctx context.Context, userID string) ([]entity.SleepLog, error)

	// Create persists a new sleep log and assigns its document ID in place.
	Create(ctx context.Context, userID string, log *entity.SleepLog) error

	// Delete removes a sleep log document by ID.
	Delete(ctx context.Context, userID string, logID string) error
}
