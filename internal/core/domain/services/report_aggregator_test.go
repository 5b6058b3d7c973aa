package services_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/product"
	"shopfloor/internal/core/domain/model/shop"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jan(day int) kernel.Date {
	return kernel.MustNewDate(2025, time.January, day)
}

type orderSpec struct {
	name      string
	hours     float64
	urgency   int
	cost      int
	deadline  kernel.Date
	completed bool
}

func buildOrders(t *testing.T, specs ...orderSpec) []*order.Order {
	t.Helper()
	engine := services.NewScoringEngine()
	orders := make([]*order.Order, 0, len(specs))
	for _, s := range specs {
		p, err := product.NewProduct("Produto "+s.name, s.hours)
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), s.name, p, s.urgency, s.cost, s.deadline, engine)
		require.NoError(t, err)
		if s.completed {
			require.NoError(t, o.Complete())
		}
		orders = append(orders, o)
	}
	return orders
}

func names(orders []*order.Order) []string {
	result := make([]string, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.Name())
	}
	return result
}

func newAggregator(t *testing.T) services.ReportAggregator {
	t.Helper()
	aggregator, err := services.NewReportAggregator(shop.DefaultConfig())
	require.NoError(t, err)
	return aggregator
}

func TestNewReportAggregator(t *testing.T) {
	_, err := services.NewReportAggregator(shop.Config{})

	require.ErrorIs(t, err, shop.ErrConfigIsNotConstructed)
}

func TestReportAggregator_Counts(t *testing.T) {
	aggregator := newAggregator(t)
	orders := buildOrders(t,
		orderSpec{name: "late", hours: 2, urgency: 5, cost: 5, deadline: jan(5)},
		orderSpec{name: "future", hours: 3, urgency: 5, cost: 5, deadline: jan(20)},
		orderSpec{name: "done late", hours: 4, urgency: 5, cost: 5, deadline: jan(1), completed: true},
		orderSpec{name: "due today", hours: 1, urgency: 5, cost: 5, deadline: jan(10)},
	)
	reference := jan(10)

	assert.Equal(t, 3, aggregator.OpenCount(orders))
	assert.Equal(t, 1, aggregator.CompletedCount(orders))
	assert.Equal(t, 1, aggregator.OverdueCount(orders, reference))
	assert.InDelta(t, 6.0, aggregator.PlannedHours(orders), 1e-9)
	assert.Equal(t, services.Summary{Open: 3, Completed: 1, Overdue: 1},
		aggregator.DashboardSummary(orders, reference))
}

func TestReportAggregator_OverdueScenario(t *testing.T) {
	aggregator := newAggregator(t)
	orders := buildOrders(t,
		orderSpec{name: "A", hours: 2, urgency: 5, cost: 5, deadline: jan(5)},
		orderSpec{name: "B", hours: 2, urgency: 5, cost: 5, deadline: jan(20)},
	)

	assert.Equal(t, 1, aggregator.OverdueCount(orders, jan(10)))
}

func TestReportAggregator_EmptyLedger(t *testing.T) {
	aggregator := newAggregator(t)

	assert.Zero(t, aggregator.OpenCount(nil))
	assert.Zero(t, aggregator.PlannedHours(nil))

	utilization := aggregator.CapacityUtilization(nil)
	assert.Equal(t, 200, utilization.WeeklyCapacityHours)
	assert.Zero(t, utilization.Ratio)
	assert.False(t, utilization.OverCapacity)
}

func TestReportAggregator_CapacityUtilization(t *testing.T) {
	config, err := shop.NewConfig(1, 2, 2)
	require.NoError(t, err)
	aggregator, err := services.NewReportAggregator(config)
	require.NoError(t, err)

	t.Run("under capacity", func(t *testing.T) {
		orders := buildOrders(t,
			orderSpec{name: "A", hours: 2, urgency: 5, cost: 5, deadline: jan(5)},
			orderSpec{name: "B", hours: 9, urgency: 5, cost: 5, deadline: jan(5), completed: true},
		)

		utilization := aggregator.CapacityUtilization(orders)

		assert.InDelta(t, 2.0, utilization.PlannedHours, 1e-9)
		assert.Equal(t, 4, utilization.WeeklyCapacityHours)
		assert.InDelta(t, 0.5, utilization.Ratio, 1e-9)
		assert.False(t, utilization.OverCapacity)
	})

	t.Run("over capacity is reported, not enforced", func(t *testing.T) {
		orders := buildOrders(t,
			orderSpec{name: "A", hours: 3, urgency: 5, cost: 5, deadline: jan(5)},
			orderSpec{name: "B", hours: 3, urgency: 5, cost: 5, deadline: jan(5)},
		)

		utilization := aggregator.CapacityUtilization(orders)

		assert.InDelta(t, 1.5, utilization.Ratio, 1e-9)
		assert.True(t, utilization.OverCapacity)
	})
}

func TestReportAggregator_UpcomingDeadlineAlerts(t *testing.T) {
	aggregator := newAggregator(t)

	t.Run("window scenario", func(t *testing.T) {
		orders := buildOrders(t,
			orderSpec{name: "soon", hours: 2, urgency: 5, cost: 5, deadline: jan(12)},
			orderSpec{name: "later", hours: 2, urgency: 5, cost: 5, deadline: jan(15)},
		)

		alerts, err := aggregator.UpcomingDeadlineAlerts(orders, jan(10), services.DefaultAlertWindowDays)

		require.NoError(t, err)
		assert.Equal(t, []string{"soon"}, names(alerts))
	})

	t.Run("includes overdue, skips completed, sorts by score", func(t *testing.T) {
		orders := buildOrders(t,
			orderSpec{name: "low", hours: 2, urgency: 2, cost: 5, deadline: jan(11)},
			orderSpec{name: "overdue", hours: 2, urgency: 6, cost: 5, deadline: jan(1)},
			orderSpec{name: "done", hours: 2, urgency: 10, cost: 1, deadline: jan(11), completed: true},
			orderSpec{name: "high", hours: 2, urgency: 9, cost: 5, deadline: jan(13)},
		)

		alerts, err := aggregator.UpcomingDeadlineAlerts(orders, jan(10), 3)

		require.NoError(t, err)
		assert.Equal(t, []string{"high", "overdue", "low"}, names(alerts))
	})

	t.Run("zero window only flags due today or earlier", func(t *testing.T) {
		orders := buildOrders(t,
			orderSpec{name: "today", hours: 2, urgency: 5, cost: 5, deadline: jan(10)},
			orderSpec{name: "tomorrow", hours: 2, urgency: 5, cost: 5, deadline: jan(11)},
		)

		alerts, err := aggregator.UpcomingDeadlineAlerts(orders, jan(10), 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"today"}, names(alerts))
	})

	t.Run("negative window is invalid", func(t *testing.T) {
		_, err := aggregator.UpcomingDeadlineAlerts(nil, jan(10), -1)

		require.Error(t, err)
		assert.True(t, errs.IsInvalidInput(err))
	})
}

func TestReportAggregator_PeriodSummary(t *testing.T) {
	aggregator := newAggregator(t)

	t.Run("range of completed orders only", func(t *testing.T) {
		orders := buildOrders(t,
			orderSpec{name: "A", hours: 2, urgency: 5, cost: 5, deadline: jan(2), completed: true},
			orderSpec{name: "B", hours: 2, urgency: 5, cost: 5, deadline: jan(3), completed: true},
			orderSpec{name: "C", hours: 2, urgency: 5, cost: 5, deadline: jan(4), completed: true},
			orderSpec{name: "outside", hours: 2, urgency: 5, cost: 5, deadline: jan(25)},
		)

		summary, err := aggregator.PeriodSummary(orders, jan(1), jan(5), jan(20))

		require.NoError(t, err)
		assert.Equal(t, services.Summary{Completed: 3, Overdue: 0, Open: 0}, summary)
	})

	t.Run("overdue scoped to the range", func(t *testing.T) {
		orders := buildOrders(t,
			orderSpec{name: "late in range", hours: 2, urgency: 5, cost: 5, deadline: jan(5)},
			orderSpec{name: "late out of range", hours: 2, urgency: 5, cost: 5, deadline: jan(1)},
			orderSpec{name: "future in range", hours: 2, urgency: 5, cost: 5, deadline: jan(15)},
		)

		summary, err := aggregator.PeriodSummary(orders, jan(5), jan(15), jan(10))

		require.NoError(t, err)
		assert.Equal(t, services.Summary{Open: 2, Overdue: 1}, summary)
	})

	t.Run("inverted range is invalid", func(t *testing.T) {
		_, err := aggregator.PeriodSummary(nil, jan(15), jan(5), jan(10))

		require.Error(t, err)
		assert.True(t, errs.IsInvalidInput(err))
	})
}

func TestFilterByDeadline(t *testing.T) {
	orders := buildOrders(t,
		orderSpec{name: "start", hours: 2, urgency: 5, cost: 5, deadline: jan(5)},
		orderSpec{name: "before", hours: 2, urgency: 5, cost: 5, deadline: jan(4)},
		orderSpec{name: "end", hours: 2, urgency: 5, cost: 5, deadline: jan(10), completed: true},
		orderSpec{name: "after", hours: 2, urgency: 5, cost: 5, deadline: jan(11)},
	)

	filtered, err := services.FilterByDeadline(orders, jan(5), jan(10))
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "end"}, names(filtered))

	single, err := services.FilterByDeadline(orders, jan(4), jan(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"before"}, names(single))

	_, err = services.FilterByDeadline(orders, kernel.Date{}, jan(4))
	require.ErrorIs(t, err, kernel.ErrDateIsNotConstructed)
}

func TestSortByPriority(t *testing.T) {
	orders := buildOrders(t,
		orderSpec{name: "tie-1", hours: 2, urgency: 5, cost: 5, deadline: jan(5)},
		orderSpec{name: "top", hours: 1, urgency: 10, cost: 1, deadline: jan(5)},
		orderSpec{name: "tie-2", hours: 2, urgency: 5, cost: 5, deadline: jan(5)},
		orderSpec{name: "bottom", hours: 12, urgency: 1, cost: 10, deadline: jan(5)},
		orderSpec{name: "tie-3", hours: 2, urgency: 5, cost: 5, deadline: jan(5)},
	)

	sorted := services.SortByPriority(orders)

	assert.Equal(t, []string{"top", "tie-1", "tie-2", "tie-3", "bottom"}, names(sorted))
	assert.Equal(t, "tie-1", orders[0].Name(), "input is left untouched")
	for i := range len(sorted) - 1 {
		assert.GreaterOrEqual(t, sorted[i].Score(), sorted[i+1].Score())
	}
}
