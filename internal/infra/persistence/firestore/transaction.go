package firestore

import (
	"context"

	"ascend/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// Per-user sub-collection names under 'users/{uid}'.
const (
	usersCollection     = "users"
	habitsCollection    = "habits"
	goalsCollection     = "goals"
	sleepLogsCollection = "sleepLogs"
	erasCollection      = "eras"
)

// firestoreTransactionManager implements the domain's TransactionManager
// interface over a Firestore write batch. Reads inside Execute go straight
// to the store; writes are queued on the batch and committed all-or-nothing
// at the end, so partial remote application is impossible.
type firestoreTransactionManager struct {
	client *firestore.Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory
// interface. It holds one pending write batch and hands out repository
// instances bound to it.
type firestoreRepositoryFactory struct {
	client *firestore.Client
	batch  *firestore.WriteBatch
	writes int
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs the given function against a fresh write batch and commits it
// when the function succeeds. An error from fn discards the batch unwritten.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	factory := &firestoreRepositoryFactory{
		client: tm.client,
		batch:  tm.client.Batch(),
	}

	if err := fn(factory); err != nil {
		return err
	}

	// Committing an empty batch is an error in the client library, and a
	// read-only Execute is legitimate.
	if factory.writes == 0 {
		return nil
	}

	if _, err := factory.batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit write batch")
	}

	return nil
}

// Profiles returns the user profile repository bound to this batch.
func (f *firestoreRepositoryFactory) Profiles() repository.ProfileRepository {
	return &profileRepository{f: f}
}

// Habits returns the habit sub-collection repository bound to this batch.
func (f *firestoreRepositoryFactory) Habits() repository.HabitRepository {
	return &habitRepository{f: f}
}

// Goals returns the goal sub-collection repository bound to this batch.
func (f *firestoreRepositoryFactory) Goals() repository.GoalRepository {
	return &goalRepository{f: f}
}

// SleepLogs returns the sleep log sub-collection repository bound to this batch.
func (f *firestoreRepositoryFactory) SleepLogs() repository.SleepLogRepository {
	return &sleepLogRepository{f: f}
}

// Eras returns the user-created era sub-collection repository bound to this batch.
func (f *firestoreRepositoryFactory) Eras() repository.EraRepository {
	return &eraRepository{f: f}
}

// set queues a document write on the pending batch.
func (f *firestoreRepositoryFactory) set(ref *firestore.DocumentRef, doc any) {
	f.batch.Set(ref, doc)
	f.writes++
}

// delete queues a document removal on the pending batch.
func (f *firestoreRepositoryFactory) delete(ref *firestore.DocumentRef) {
	f.batch.Delete(ref)
	f.writes++
}

// userDoc resolves the profile document reference for an identity.
func (f *firestoreRepositoryFactory) userDoc(userID string) *firestore.DocumentRef {
	return f.client.Collection(usersCollection).Doc(userID)
}

// subCollection resolves one of the per-user sub-collections.
func (f *firestoreRepositoryFactory) subCollection(userID, name string) *firestore.CollectionRef {
	return f.userDoc(userID).Collection(name)
}
