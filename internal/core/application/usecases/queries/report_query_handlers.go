package queries

import (
	"context"

	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/core/ports"
)

// ReportQueryHandler answers the report queries from one ledger snapshot per
// call and the shop configuration held by its aggregator.
//
// Example:
//
//	aggregator, _ := services.NewReportAggregator(shopConfig)
//	handler := NewReportQueryHandler(ledger.OrderReader(), aggregator)
//	query, _ := NewGetDefaultDeadlineAlertsQuery(today)
//	alerts, err := handler.HandleDeadlineAlerts(ctx, query)
type ReportQueryHandler struct {
	orders     ports.OrderReader
	aggregator services.ReportAggregator
}

func NewReportQueryHandler(orders ports.OrderReader, aggregator services.ReportAggregator) ReportQueryHandler {
	return ReportQueryHandler{
		orders:     orders,
		aggregator: aggregator,
	}
}

func (h ReportQueryHandler) HandleOrdersSummary(
	ctx context.Context,
	query GetOrdersSummaryQuery,
) (services.Summary, error) {
	if err := query.Validate(); err != nil {
		return services.Summary{}, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return services.Summary{}, err
	}

	return h.aggregator.DashboardSummary(orders, query.Reference()), nil
}

func (h ReportQueryHandler) HandleCapacityUtilization(
	ctx context.Context,
	query GetCapacityUtilizationQuery,
) (services.CapacityUtilization, error) {
	if err := query.Validate(); err != nil {
		return services.CapacityUtilization{}, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return services.CapacityUtilization{}, err
	}

	return h.aggregator.CapacityUtilization(orders), nil
}

// HandleDeadlineAlerts returns the alerts sorted like ListOpenOrdersQuery.
func (h ReportQueryHandler) HandleDeadlineAlerts(
	ctx context.Context,
	query GetDeadlineAlertsQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	alerts, err := h.aggregator.UpcomingDeadlineAlerts(orders, query.Reference(), query.WindowDays())
	if err != nil {
		return nil, err
	}

	return newOrderViews(alerts), nil
}

func (h ReportQueryHandler) HandlePeriodSummary(
	ctx context.Context,
	query GetPeriodSummaryQuery,
) (services.Summary, error) {
	if err := query.Validate(); err != nil {
		return services.Summary{}, err
	}

	orders, err := h.orders.GetAllWithDeadlineBetween(ctx, query.From(), query.To())
	if err != nil {
		return services.Summary{}, err
	}

	return h.aggregator.PeriodSummary(orders, query.From(), query.To(), query.Reference())
}
