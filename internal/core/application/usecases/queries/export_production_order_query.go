package queries

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/core/ports"
	"shopfloor/internal/pkg/guard"
)

var ErrExportProductionOrderQueryIsNotConstructed = errors.New(
	"ExportProductionOrderQuery must be created via NewExportProductionOrderQuery constructor",
)

// ExportProductionOrderQuery renders the prioritized open orders as a
// production order document.
type ExportProductionOrderQuery struct {
	guard guard.ConstructorGuard
}

func NewExportProductionOrderQuery() ExportProductionOrderQuery {
	return ExportProductionOrderQuery{guard: guard.NewConstructorGuard()}
}

func (q ExportProductionOrderQuery) Validate() error {
	return q.guard.Validate(ErrExportProductionOrderQueryIsNotConstructed)
}

// Document is a rendered file ready to be served.
type Document struct {
	ContentType string
	Content     []byte
}

type ExportProductionOrderQueryHandler struct {
	orders   ports.OrderReader
	renderer ports.ProductionOrderRenderer
}

func NewExportProductionOrderQueryHandler(
	orders ports.OrderReader,
	renderer ports.ProductionOrderRenderer,
) ExportProductionOrderQueryHandler {
	return ExportProductionOrderQueryHandler{
		orders:   orders,
		renderer: renderer,
	}
}

func (h ExportProductionOrderQueryHandler) Handle(
	ctx context.Context,
	query ExportProductionOrderQuery,
) (Document, error) {
	if err := query.Validate(); err != nil {
		return Document{}, err
	}

	open, err := h.orders.GetAllInStatus(ctx, order.Open)
	if err != nil {
		return Document{}, err
	}

	content, err := h.renderer.Render(ctx, services.SortByPriority(open))
	if err != nil {
		return Document{}, err
	}

	return Document{
		ContentType: h.renderer.ContentType(),
		Content:     content,
	}, nil
}
