// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"ascend/internal/domain/entity"
)

// SessionUsecase drives the identity lifecycle: a verified sign-in loads (or
// initializes) the user's full state, a sign-out resets it.
type SessionUsecase interface {
	// SignIn loads the profile and all collections for a verified identity,
	// creating a default profile on first sign-in. A failed collection load
	// degrades that collection to empty and is reported in LoadFailures;
	// sign-in itself still succeeds.
	SignIn(ctx context.Context, identity *entity.Identity) (*SignInResult, error)

	// SignOut drops the user's session, discarding all local state.
	SignOut(ctx context.Context, userID string) error
}

// SignInResult reports the loaded state summary after sign-in.
type SignInResult struct {
	Profile      *entity.UserProfile `json:"profile"`
	NewUser      bool                `json:"new_user"`
	LoadFailures []string            `json:"load_failures,omitempty"`
}
