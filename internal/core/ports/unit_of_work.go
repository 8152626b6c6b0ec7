package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CargoRepository returns a CargoRepository bound to the current
	// transaction. The repository will use the transaction started by
	// Begin().
	CargoRepository() CargoRepository

	// HandlingEventRepository returns a HandlingEventRepository bound to
	// the current transaction.
	HandlingEventRepository() HandlingEventRepository

	// LocationRepository returns a LocationRepository bound to the current
	// transaction.
	LocationRepository() LocationRepository

	// VoyageRepository returns a VoyageRepository bound to the current
	// transaction.
	VoyageRepository() VoyageRepository
}
