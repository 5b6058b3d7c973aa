package queries

import (
	"errors"

	"shopfloor/internal/pkg/guard"
)

var ErrListOpenOrdersQueryIsNotConstructed = errors.New(
	"ListOpenOrdersQuery must be created via NewListOpenOrdersQuery constructor",
)

// ListOpenOrdersQuery lists the Open orders by descending score. Orders with
// equal scores keep their insertion order.
//
// Example:
//
//	orders, err := handler.Handle(ctx, queries.NewListOpenOrdersQuery())
//	for _, o := range orders {
//	    fmt.Printf("%s %.2f\n", o.Name, o.Score)
//	}
type ListOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOpenOrdersQuery() ListOpenOrdersQuery {
	return ListOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOpenOrdersQueryIsNotConstructed)
}
