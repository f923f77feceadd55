package firestore

import (
	"context"
	"time"

	"ascend/internal/domain/entity"
	"ascend/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// goalRepository implements the domain.GoalRepository interface on the
// 'users/{uid}/goals' sub-collection.
type goalRepository struct {
	f *firestoreRepositoryFactory
}

// List retrieves all goals for a user in creation order.
func (repo *goalRepository) List(ctx context.Context, userID string) ([]entity.Goal, error) {
	snaps, err := repo.f.subCollection(userID, goalsCollection).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list goals")
	}

	goals := make([]entity.Goal, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.GoalDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode goal document")
		}
		goals = append(goals, doc.ToGoalDomain(snap.Ref.ID))
	}

	return goals, nil
}

// Create persists a new goal, assigning its document ID in place. The write
// is queued on the pending batch.
func (repo *goalRepository) Create(ctx context.Context, userID string, goal *entity.Goal) error {
	ref := repo.f.subCollection(userID, goalsCollection).NewDoc()
	goal.ID = ref.ID
	doc := model.FromGoalDomain(goal)
	// Zero so the serverTimestamp sentinel stamps the creation time.
	doc.CreatedAt = time.Time{}
	repo.f.set(ref, doc)

	return nil
}

// Save overwrites an existing goal document on the pending batch.
func (repo *goalRepository) Save(ctx context.Context, userID string, goal *entity.Goal) error {
	repo.f.set(repo.f.subCollection(userID, goalsCollection).Doc(goal.ID), model.FromGoalDomain(goal))

	return nil
}

// Delete removes a goal document on the pending batch.
func (repo *goalRepository) Delete(ctx context.Context, userID string, goalID string) error {
	repo.f.delete(repo.f.subCollection(userID, goalsCollection).Doc(goalID))

	return nil
}
