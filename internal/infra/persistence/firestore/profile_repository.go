package firestore

import (
	"context"

	"ascend/internal/domain/entity"
	"ascend/internal/domain/repository"
	"ascend/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// profileRepository implements the domain.ProfileRepository interface on the
// 'users/{uid}' document.
type profileRepository struct {
	f *firestoreRepositoryFactory
}

// Find retrieves the profile document for an identity.
func (repo *profileRepository) Find(ctx context.Context, userID string) (*entity.UserProfile, error) {
	snap, err := repo.f.userDoc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile document")
	}

	var doc model.ProfileDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	return doc.ToProfileDomain(snap.Ref.ID), nil
}

// Save writes the full profile document, creating it if absent. The write is
// queued on the pending batch.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	repo.f.set(repo.f.userDoc(profile.ID), model.FromProfileDomain(profile))

	return nil
}
