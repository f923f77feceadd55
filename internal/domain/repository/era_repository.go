package repository

import (
	"context"
	"errors"

	"ascend/internal/domain/entity"
)

// Domain-specific errors for era persistence.
var (
	// ErrEraNotFound is returned when a user-created era document is not found.
	ErrEraNotFound = errors.New("era not found")
)

// EraRepository defines the operations on a user's created-era
// sub-collection. Predefined eras live in the static catalog and never pass
// through here; their per-user edits are overlays on the profile document.
type EraRepository interface {
	// List retrieves all user-created eras in creation order.
	List(ctx context.Context, userID string) ([]entity.Era, error)

	// Create persists a new user-created era under the given ID.
	Create(ctx context.Context, userID string, era *entity.Era) error

	// Save overwrites an existing user-created era document.
	Save(ctx context.Context, userID string, era *entity.Era) error

	// Delete removes a user-created era document by ID.
	Delete(ctx context.Context, userID string, eraID string) error
}
