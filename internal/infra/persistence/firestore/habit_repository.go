package firestore

import (
	"context"
	"time"

	"ascend/internal/domain/entity"
	"ascend/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// habitRepository implements the domain.HabitRepository interface on the
// 'users/{uid}/habits' sub-collection.
type habitRepository struct {
	f *firestoreRepositoryFactory
}

// List retrieves all habits for a user in creation order.
func (repo *habitRepository) List(ctx context.Context, userID string) ([]entity.Habit, error) {
	snaps, err := repo.f.subCollection(userID, habitsCollection).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}

	habits := make([]entity.Habit, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.HabitDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode habit document")
		}
		habits = append(habits, doc.ToHabitDomain(snap.Ref.ID))
	}

	return habits, nil
}

// Create persists a new habit, assigning its document ID in place. The write
// is queued on the pending batch.
func (repo *habitRepository) Create(ctx context.Context, userID string, habit *entity.Habit) error {
	ref := repo.f.subCollection(userID, habitsCollection).NewDoc()
	habit.ID = ref.ID
	doc := model.FromHabitDomain(habit)
	// Zero so the serverTimestamp sentinel stamps the creation time.
	doc.CreatedAt = time.Time{}
	repo.f.set(ref, doc)

	return nil
}

// Save overwrites an existing habit document on the pending batch.
func (repo *habitRepository) Save(ctx context.Context, userID string, habit *entity.Habit) error {
	repo.f.set(repo.f.subCollection(userID, habitsCollection).Doc(habit.ID), model.FromHabitDomain(habit))

	return nil
}

// Delete removes a habit document on the pending batch.
func (repo *habitRepository) Delete(ctx context.Context, userID string, habitID string) error {
	repo.f.delete(repo.f.subCollection(userID, habitsCollection).Doc(habitID))

	return nil
}
