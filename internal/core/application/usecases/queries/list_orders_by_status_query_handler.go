package queries

import (
	"context"

	"shopfloor/internal/core/ports"
)

type ListOrdersByStatusQueryHandler struct {
	orders ports.OrderReader
}

func NewListOrdersByStatusQueryHandler(orders ports.OrderReader) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{orders: orders}
}

func (h ListOrdersByStatusQueryHandler) Handle(ctx context.Context, query ListOrdersByStatusQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllInStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}
