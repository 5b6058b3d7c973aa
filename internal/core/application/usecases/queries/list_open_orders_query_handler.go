package queries

import (
	"context"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/core/ports"
)

type ListOpenOrdersQueryHandler struct {
	orders ports.OrderReader
}

func NewListOpenOrdersQueryHandler(orders ports.OrderReader) ListOpenOrdersQueryHandler {
	return ListOpenOrdersQueryHandler{orders: orders}
}

func (h ListOpenOrdersQueryHandler) Handle(ctx context.Context, query ListOpenOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	open, err := h.orders.GetAllInStatus(ctx, order.Open)
	if err != nil {
		return nil, err
	}

	return newOrderViews(services.SortByPriority(open)), nil
}
