package queries

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/pkg/guard"
)

var ErrListOrdersByDeadlineRangeQueryIsNotConstructed = errors.New(
	"ListOrdersByDeadlineRangeQuery must be created via NewListOrdersByDeadlineRangeQuery constructor",
)

// ListOrdersByDeadlineRangeQuery lists the orders, of any status, whose
// deadline falls in [from, to]. A range ending before it starts is invalid.
type ListOrdersByDeadlineRangeQuery struct {
	from kernel.Date
	to   kernel.Date

	guard guard.ConstructorGuard
}

func NewListOrdersByDeadlineRangeQuery(from kernel.Date, to kernel.Date) (ListOrdersByDeadlineRangeQuery, error) {
	if err := services.ValidateDateRange(from, to); err != nil {
		return ListOrdersByDeadlineRangeQuery{}, err
	}

	return ListOrdersByDeadlineRangeQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersByDeadlineRangeQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByDeadlineRangeQueryIsNotConstructed)
}

func (q ListOrdersByDeadlineRangeQuery) From() kernel.Date {
	return q.from
}

func (q ListOrdersByDeadlineRangeQuery) To() kernel.Date {
	return q.to
}
