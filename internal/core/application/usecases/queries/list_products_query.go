package queries

import (
	"errors"

	"shopfloor/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery lists the catalog in insertion order.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}
