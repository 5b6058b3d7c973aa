package queries

import (
	"context"

	"shopfloor/internal/core/ports"
)

// GetProductQueryHandler returns errs.ObjectNotFoundError for unknown names.
type GetProductQueryHandler struct {
	products ports.ProductReader
}

func NewGetProductQueryHandler(products ports.ProductReader) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	p, err := h.products.Get(ctx, query.Name())
	if err != nil {
		return ProductView{}, err
	}

	return newProductView(p), nil
}
