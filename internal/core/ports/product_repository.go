package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/product"
)

// ProductReader is the read side of the product catalog.
type ProductReader interface {
	// Get returns the product called name or an errs.ObjectNotFoundError.
	Get(ctx context.Context, name string) (*product.Product, error)

	// GetAll lists the catalog in insertion order.
	GetAll(ctx context.Context) ([]*product.Product, error)
}

// ProductRepository adds the write side. Products are keyed by name and
// never deleted.
type ProductRepository interface {
	ProductReader

	// Upsert overwrites the standard hours of an existing product or appends
	// a new one.
	Upsert(ctx context.Context, p *product.Product) error
}
