package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/order"
)

// ProductionOrderRenderer turns the prioritized open orders into a printable
// production order document. The core only supplies the rows.
type ProductionOrderRenderer interface {
	Render(ctx context.Context, orders []*order.Order) ([]byte, error)

	// ContentType is the MIME type of the rendered document.
	ContentType() string
}
