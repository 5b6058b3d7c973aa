package queries

import (
	"context"

	"shopfloor/internal/core/ports"
)

type ListOrdersByDeadlineRangeQueryHandler struct {
	orders ports.OrderReader
}

func NewListOrdersByDeadlineRangeQueryHandler(orders ports.OrderReader) ListOrdersByDeadlineRangeQueryHandler {
	return ListOrdersByDeadlineRangeQueryHandler{orders: orders}
}

func (h ListOrdersByDeadlineRangeQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByDeadlineRangeQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllWithDeadlineBetween(ctx, query.From(), query.To())
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}
