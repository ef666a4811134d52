package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations obtained from the factory use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so that multi-statement operations (account creation,
// like + counter increment, presence + history append) are atomic.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// PresenceRepo returns a PresenceRepository bound to the current transaction.
	PresenceRepo() PresenceRepository

	// EngagementRepo returns an EngagementRepository bound to the current transaction.
	EngagementRepo() EngagementRepository
}
