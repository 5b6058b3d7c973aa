// Package ports defines the contracts between the shop floor core and its
// adapters: repositories, the unit of work, event publishing and document
// rendering.
package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
)

// OrderReader is the read side of the order ledger. Every method returns
// orders in insertion order.
type OrderReader interface {
	// GetAll returns the whole ledger.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus returns the orders currently in status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllWithDeadlineBetween returns the orders whose deadline falls in
	// [from, to], both ends included.
	GetAllWithDeadlineBetween(ctx context.Context, from kernel.Date, to kernel.Date) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
// The ledger is append-only: orders are added and updated, never removed.
type OrderRepository interface {
	OrderReader

	// Add appends a new order to the ledger.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status change of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with id or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
