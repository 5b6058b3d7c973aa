package queries

import (
	"errors"
	"fmt"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var (
	ErrGetOrdersSummaryQueryIsNotConstructed = errors.New(
		"GetOrdersSummaryQuery must be created via NewGetOrdersSummaryQuery constructor",
	)
	ErrGetCapacityUtilizationQueryIsNotConstructed = errors.New(
		"GetCapacityUtilizationQuery must be created via NewGetCapacityUtilizationQuery constructor",
	)
	ErrGetDeadlineAlertsQueryIsNotConstructed = errors.New(
		"GetDeadlineAlertsQuery must be created via NewGetDeadlineAlertsQuery constructor",
	)
	ErrGetPeriodSummaryQueryIsNotConstructed = errors.New(
		"GetPeriodSummaryQuery must be created via NewGetPeriodSummaryQuery constructor",
	)
)

// GetOrdersSummaryQuery counts open, completed and overdue orders of the
// whole ledger as of the reference date.
type GetOrdersSummaryQuery struct {
	reference kernel.Date

	guard guard.ConstructorGuard
}

func NewGetOrdersSummaryQuery(reference kernel.Date) (GetOrdersSummaryQuery, error) {
	if err := reference.Validate(); err != nil {
		return GetOrdersSummaryQuery{}, err
	}

	return GetOrdersSummaryQuery{reference: reference, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersSummaryQueryIsNotConstructed)
}

func (q GetOrdersSummaryQuery) Reference() kernel.Date {
	return q.reference
}

// GetCapacityUtilizationQuery compares planned hours with weekly capacity.
type GetCapacityUtilizationQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCapacityUtilizationQuery() GetCapacityUtilizationQuery {
	return GetCapacityUtilizationQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCapacityUtilizationQuery) Validate() error {
	return q.guard.Validate(ErrGetCapacityUtilizationQueryIsNotConstructed)
}

// GetDeadlineAlertsQuery lists the Open orders due within windowDays of the
// reference date, overdue ones included.
type GetDeadlineAlertsQuery struct {
	reference  kernel.Date
	windowDays int

	guard guard.ConstructorGuard
}

func NewGetDeadlineAlertsQuery(reference kernel.Date, windowDays int) (GetDeadlineAlertsQuery, error) {
	var windowErr error
	if windowDays < 0 {
		windowErr = errs.NewValueIsInvalidErrorWithCause(
			"window days",
			fmt.Errorf("%d is less than 0", windowDays),
		)
	}
	if err := errors.Join(reference.Validate(), windowErr); err != nil {
		return GetDeadlineAlertsQuery{}, err
	}

	return GetDeadlineAlertsQuery{
		reference:  reference,
		windowDays: windowDays,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewGetDefaultDeadlineAlertsQuery uses services.DefaultAlertWindowDays.
func NewGetDefaultDeadlineAlertsQuery(reference kernel.Date) (GetDeadlineAlertsQuery, error) {
	return NewGetDeadlineAlertsQuery(reference, services.DefaultAlertWindowDays)
}

func (q GetDeadlineAlertsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeadlineAlertsQueryIsNotConstructed)
}

func (q GetDeadlineAlertsQuery) Reference() kernel.Date {
	return q.reference
}

func (q GetDeadlineAlertsQuery) WindowDays() int {
	return q.windowDays
}

// GetPeriodSummaryQuery counts the orders whose deadline falls in
// [from, to], with overdue judged against the reference date.
type GetPeriodSummaryQuery struct {
	from      kernel.Date
	to        kernel.Date
	reference kernel.Date

	guard guard.ConstructorGuard
}

func NewGetPeriodSummaryQuery(from kernel.Date, to kernel.Date, reference kernel.Date) (GetPeriodSummaryQuery, error) {
	if err := errors.Join(
		services.ValidateDateRange(from, to),
		reference.Validate(),
	); err != nil {
		return GetPeriodSummaryQuery{}, err
	}

	return GetPeriodSummaryQuery{
		from:      from,
		to:        to,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetPeriodSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetPeriodSummaryQueryIsNotConstructed)
}

func (q GetPeriodSummaryQuery) From() kernel.Date {
	return q.from
}

func (q GetPeriodSummaryQuery) To() kernel.Date {
	return q.to
}

func (q GetPeriodSummaryQuery) Reference() kernel.Date {
	return q.reference
}
