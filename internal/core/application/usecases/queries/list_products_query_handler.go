package queries

import (
	"context"

	"shopfloor/internal/core/ports"
)

type ListProductsQueryHandler struct {
	products ports.ProductReader
}

func NewListProductsQueryHandler(products ports.ProductReader) ListProductsQueryHandler {
	return ListProductsQueryHandler{products: products}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return views, nil
}
