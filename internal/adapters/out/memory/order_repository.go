package memory

import (
	"context"
	"fmt"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on a Ledger. Aggregates
// are copied in and out, so a caller mutating an order changes nothing
// until Update.
type OrderRepository struct {
	access stateAccess
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.access.write(func(state *ledgerState) error {
		if _, exists := state.orderIndex[aggregate.ID()]; exists {
			return errs.NewValueIsInvalidErrorWithCause(
				"order id",
				fmt.Errorf("order %s already exists", aggregate.ID()),
			)
		}

		state.orderIndex[aggregate.ID()] = len(state.orders)
		state.orders = append(state.orders, cloneOrder(aggregate))
		return nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.access.write(func(state *ledgerState) error {
		i, exists := state.orderIndex[aggregate.ID()]
		if !exists {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}

		state.orders[i] = cloneOrder(aggregate)
		return nil
	})
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *order.Order
	err := r.access.read(func(state *ledgerState) error {
		i, exists := state.orderIndex[id]
		if !exists {
			return errs.NewObjectNotFoundError("order", id.String())
		}

		found = cloneOrder(state.orders[i])
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.filter(ctx, func(*order.Order) bool { return true })
}

func (r *OrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return r.filter(ctx, func(o *order.Order) bool {
		return o.Status() == status
	})
}

func (r *OrderRepository) GetAllWithDeadlineBetween(
	ctx context.Context,
	from kernel.Date,
	to kernel.Date,
) ([]*order.Order, error) {
	return r.filter(ctx, func(o *order.Order) bool {
		return o.Deadline().Between(from, to)
	})
}

func (r *OrderRepository) filter(ctx context.Context, match func(*order.Order) bool) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var orders []*order.Order
	err := r.access.read(func(state *ledgerState) error {
		matched := make([]*order.Order, 0)
		for _, o := range state.orders {
			if match(o) {
				matched = append(matched, o)
			}
		}
		orders = cloneOrders(matched)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
