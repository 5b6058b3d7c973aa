package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary spanning the order ledger and
// the product catalog. Changes made through its repositories become visible to
// other callers only on Commit.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit publishes the staged changes.
	// Returns error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the staged changes.
	// Returns error if no transaction is active.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the transaction.
	OrderRepository() OrderRepository

	// ProductRepository returns a ProductRepository bound to the transaction.
	ProductRepository() ProductRepository
}
