package firestore

import (
	"context"
	"time"

	"ascend/internal/domain/entity"
	"ascend/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// sleepLogRepository implements the domain.SleepLogRepository interface on
// the 'users/{uid}/sleepLogs' sub-collection.
type sleepLogRepository struct {
	f *firestoreRepositoryFactory
}

// List retrieves all sleep logs for a user in creation order.
func (repo *sleepLogRepository) List(ctx context.Context, userID string) ([]entity.SleepLog, error) {
	snaps, err := repo.f.subCollection(userID, sleepLogsCollection).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sleep logs")
	}

	logs := make([]entity.SleepLog, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.SleepLogDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode sleep log document")
		}
		logs = append(logs, doc.ToSleepLogDomain(snap.Ref.ID))
	}

	return logs, nil
}

// Create persists a new sleep log, assigning its document ID in place. The
// write is queued on the pending batch.
func (repo *sleepLogRepository) Create(ctx context.Context, userID string, log *entity.SleepLog) error {
	ref := repo.f.subCollection(userID, sleepLogsCollection).NewDoc()
	log.ID = ref.ID
	doc := model.FromSleepLogDomain(log)
	// Zero so the serverTimestamp sentinel stamps the creation time.
	doc.CreatedAt = time.Time{}
	repo.f.set(ref, doc)

	return nil
}

// Delete removes a sleep log document on the pending batch.
func (repo *sleepLogRepository) Delete(ctx context.Context, userID string, logID string) error {
	repo.f.delete(repo.f.subCollection(userID, sleepLogsCollection).Doc(logID))

	return nil
}
