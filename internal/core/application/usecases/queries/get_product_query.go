package queries

import (
	"errors"
	"strings"

	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery looks a product up by name.
type GetProductQuery struct {
	name string

	guard guard.ConstructorGuard
}

func NewGetProductQuery(name string) (GetProductQuery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GetProductQuery{}, errs.NewValueIsRequiredError("product name")
	}

	return GetProductQuery{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) Name() string {
	return q.name
}
