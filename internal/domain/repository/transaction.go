// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the document store infrastructure.
package repository

import "context"

// TransactionManager defines the interface for atomic multi-document writes.
// This allows the use case layer to batch mutations across the profile and
// its sub-collections without depending on a specific store client.
type TransactionManager interface {
	// Execute runs a function against a write batch. Reads go straight to
	// the store; every write issued through the factory's repositories is
	// queued on the batch and committed all-or-nothing when fn returns nil.
	// If fn returns an error, nothing is written.
	Execute(ctx context.Context, fn func(batchRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one write scope,
// either a pending batch inside Execute or the plain client outside it.
type RepositoryFactory interface {
	// Profiles returns the user profile repository.
	Profiles() ProfileRepository

	// Habits returns the habit sub-collection repository.
	Habits() HabitRepository

	// Goals returns the goal sub-collection repository.
	Goals() GoalRepository

	// SleepLogs returns the sleep log sub-collection repository.
	SleepLogs() SleepLogRepository

	// Eras returns the user-created era sub-collection repository.
	Eras() EraRepository
}
