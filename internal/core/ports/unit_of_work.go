package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary over the planner repositories.
// Repositories obtained after Begin run inside the transaction; before Begin
// they use the plain connection.
type UnitOfWork interface {
	// Begin starts a transaction. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction.
	// Returns error if no transaction is active.
	Rollback(ctx context.Context) error

	TruckRepository() TruckRepository
	ArticleRepository() ArticleRepository
	OrderLineRepository() OrderLineRepository
	LoadHistoryRepository() LoadHistoryRepository
}
