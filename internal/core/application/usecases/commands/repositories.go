// Package commands contains the operations that change the order ledger or
// the product catalog. Each command is a validated value object built by its
// constructor; each handler runs it inside one unit of work.
package commands

import (
	"context"

	"shopfloor/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions that only touch the order ledger.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW manages transactions that only touch the catalog.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UoW spans the catalog and the ledger: adding an order reads the
	// product and appends the order in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   p, err := uow.ProductRepository().Get(ctx, name)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
