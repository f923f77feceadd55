package service

import (
	"context"

	"ascend/internal/domain/entity"
)

// IdentityVerifier verifies an identity-provider token and projects it onto
// the core's identity shape. Sign-in and sign-out themselves happen at the
// provider; the core only consumes the verified result.
type IdentityVerifier interface {
	// Verify checks the opaque provider token and returns the authenticated
	// identity it asserts.
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}
