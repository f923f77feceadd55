package repository

import (
	"context"
	"errors"

	"ascend/internal/domain/entity"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no profile document exists for the identity.
	ErrProfileNotFound = errors.New("profile not found")
)

// ProfileRepository defines the operations on the per-user profile document.
type ProfileRepository interface {
	// Find retrieves the profile document for an identity.
	// Returns ErrProfileNotFound when the user has never signed in.
	Find(ctx context.Context, userID string) (*entity.UserProfile, error)

	// Save writes the full profile document, creating it if absent.
	Save(ctx context.Context, profile *entity.UserProfile) error
}
