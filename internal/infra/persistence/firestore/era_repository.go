package firestore

import (
	"context"
	"time"

	"ascend/internal/domain/entity"
	"ascend/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// eraRepository implements the domain.EraRepository interface on the
// 'users/{uid}/eras' sub-collection. Only user-created eras live here;
// predefined eras stay in the static catalog.
type eraRepository struct {
	f *firestoreRepositoryFactory
}

// List retrieves all user-created eras in creation order.
func (repo *eraRepository) List(ctx context.Context, userID string) ([]entity.Era, error) {
	snaps, err := repo.f.subCollection(userID, erasCollection).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list eras")
	}

	eras := make([]entity.Era, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.EraDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode era document")
		}
		eras = append(eras, doc.ToEraDomain(snap.Ref.ID))
	}

	return eras, nil
}

// Create persists a new user-created era under its pre-assigned ID. The
// write is queued on the pending batch.
func (repo *eraRepository) Create(ctx context.Context, userID string, era *entity.Era) error {
	doc := model.FromEraDomain(era)
	// Zero so the serverTimestamp sentinel stamps the creation time.
	doc.CreatedAt = time.Time{}
	repo.f.set(repo.f.subCollection(userID, erasCollection).Doc(era.ID), doc)

	return nil
}

// Save overwrites an existing era document on the pending batch.
func (repo *eraRepository) Save(ctx context.Context, userID string, era *entity.Era) error {
	repo.f.set(repo.f.subCollection(userID, erasCollection).Doc(era.ID), model.FromEraDomain(era))

	return nil
}

// Delete removes an era document on the pending batch.
func (repo *eraRepository) Delete(ctx context.Context, userID string, eraID string) error {
	repo.f.delete(repo.f.subCollection(userID, erasCollection).Doc(eraID))

	return nil
}
