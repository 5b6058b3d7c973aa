package services

import (
	"fmt"
	"slices"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/shop"
	"shopfloor/internal/pkg/errs"
)

// DefaultAlertWindowDays is how many days before its deadline an open order
// starts showing up in deadline alerts.
const DefaultAlertWindowDays = 3

// Summary holds the order counters of a ledger snapshot.
type Summary struct {
	Open      int
	Completed int
	Overdue   int
}

// CapacityUtilization compares the hours planned on open orders with the
// weekly capacity of the shop. Exceeding the capacity is advisory.
type CapacityUtilization struct {
	PlannedHours        float64
	WeeklyCapacityHours int
	Ratio               float64
	OverCapacity        bool
}

// ReportAggregator computes read-only metrics over a snapshot of orders and
// the shop configuration.
//
// Example:
//
//	aggregator, _ := services.NewReportAggregator(shop.DefaultConfig())
//	today := kernel.DateFromTime(time.Now())
//	alerts, _ := aggregator.UpcomingDeadlineAlerts(orders, today, services.DefaultAlertWindowDays)
type ReportAggregator struct {
	shop shop.Config
}

func NewReportAggregator(config shop.Config) (ReportAggregator, error) {
	if err := config.Validate(); err != nil {
		return ReportAggregator{}, err
	}
	return ReportAggregator{shop: config}, nil
}

// OpenCount counts Open orders.
func (a ReportAggregator) OpenCount(orders []*order.Order) int {
	return count(orders, (*order.Order).IsOpen)
}

// CompletedCount counts Completed orders.
func (a ReportAggregator) CompletedCount(orders []*order.Order) int {
	return count(orders, func(o *order.Order) bool {
		return o.Status() == order.Completed
	})
}

// OverdueCount counts Open orders whose deadline is strictly before reference.
func (a ReportAggregator) OverdueCount(orders []*order.Order, reference kernel.Date) int {
	return count(orders, func(o *order.Order) bool {
		return o.IsOverdue(reference)
	})
}

// PlannedHours sums the production hours of Open orders.
func (a ReportAggregator) PlannedHours(orders []*order.Order) float64 {
	var total float64
	for _, o := range orders {
		if o.IsOpen() {
			total += o.ProductionHours()
		}
	}
	return total
}

func (a ReportAggregator) CapacityUtilization(orders []*order.Order) CapacityUtilization {
	planned := a.PlannedHours(orders)
	capacity := a.shop.WeeklyCapacityHours()

	return CapacityUtilization{
		PlannedHours:        planned,
		WeeklyCapacityHours: capacity,
		Ratio:               planned / float64(capacity),
		OverCapacity:        planned > float64(capacity),
	}
}

// UpcomingDeadlineAlerts returns the Open orders due within windowDays of
// reference, overdue ones included, sorted by priority.
func (a ReportAggregator) UpcomingDeadlineAlerts(
	orders []*order.Order,
	reference kernel.Date,
	windowDays int,
) ([]*order.Order, error) {
	if windowDays < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"window days",
			fmt.Errorf("%d is less than 0", windowDays),
		)
	}

	alerts := make([]*order.Order, 0)
	for _, o := range orders {
		if o.IsDueWithin(reference, windowDays) {
			alerts = append(alerts, o)
		}
	}
	return SortByPriority(alerts), nil
}

// DashboardSummary counts the whole snapshot.
func (a ReportAggregator) DashboardSummary(orders []*order.Order, reference kernel.Date) Summary {
	return Summary{
		Open:      a.OpenCount(orders),
		Completed: a.CompletedCount(orders),
		Overdue:   a.OverdueCount(orders, reference),
	}
}

// PeriodSummary counts the orders whose deadline falls in [from, to].
func (a ReportAggregator) PeriodSummary(
	orders []*order.Order,
	from kernel.Date,
	to kernel.Date,
	reference kernel.Date,
) (Summary, error) {
	inPeriod, err := FilterByDeadline(orders, from, to)
	if err != nil {
		return Summary{}, err
	}
	return a.DashboardSummary(inPeriod, reference), nil
}

// FilterByDeadline keeps the orders whose deadline falls in [from, to],
// preserving their order.
func FilterByDeadline(orders []*order.Order, from kernel.Date, to kernel.Date) ([]*order.Order, error) {
	if err := ValidateDateRange(from, to); err != nil {
		return nil, err
	}

	filtered := make([]*order.Order, 0)
	for _, o := range orders {
		if o.Deadline().Between(from, to) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// ValidateDateRange rejects unconstructed bounds and ranges that end before
// they start.
func ValidateDateRange(from kernel.Date, to kernel.Date) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if from.After(to) {
		return errs.NewValueIsInvalidErrorWithCause(
			"date range",
			fmt.Errorf("start %s is after end %s", from, to),
		)
	}
	return nil
}

// SortByPriority returns a copy of orders sorted by descending score. Equal
// scores keep their relative (insertion) order.
func SortByPriority(orders []*order.Order) []*order.Order {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b *order.Order) int {
		switch {
		case a.Score() > b.Score():
			return -1
		case a.Score() < b.Score():
			return 1
		default:
			return 0
		}
	})
	return sorted
}

func count(orders []*order.Order, match func(*order.Order) bool) int {
	n := 0
	for _, o := range orders {
		if match(o) {
			n++
		}
	}
	return n
}
