package http

import (
	"net/http"
	"net/url"
	"strconv"

	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// defaultPeriodDays is the look-back of the period report when no range is given.
const defaultPeriodDays = 30

// GetSummary handles GET /api/v1/reports/summary?date= - open, completed and
// overdue counts over the whole ledger.
func (s *Server) GetSummary(ctx echo.Context) error {
	reference, err := optionalDate(ctx.QueryParams(), "date", s.today())
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersSummaryQuery(reference)
	if err != nil {
		return s.writeError(ctx, err)
	}

	summary, err := s.handlers.Reports.HandleOrdersSummary(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSummary(summary))
}

// GetCapacity handles GET /api/v1/reports/capacity.
func (s *Server) GetCapacity(ctx echo.Context) error {
	utilization, err := s.handlers.Reports.HandleCapacityUtilization(
		ctx.Request().Context(),
		queries.NewGetCapacityUtilizationQuery(),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Capacity{
		PlannedHours:        utilization.PlannedHours,
		WeeklyCapacityHours: utilization.WeeklyCapacityHours,
		Ratio:               utilization.Ratio,
		OverCapacity:        utilization.OverCapacity,
	})
}

// GetAlerts handles GET /api/v1/reports/alerts?date=&window=.
func (s *Server) GetAlerts(ctx echo.Context) error {
	reference, err := optionalDate(ctx.QueryParams(), "date", s.today())
	if err != nil {
		return s.writeError(ctx, err)
	}

	window := services.DefaultAlertWindowDays
	if raw := ctx.QueryParam("window"); raw != "" {
		window, err = strconv.Atoi(raw)
		if err != nil {
			return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("window", err))
		}
	}

	query, err := queries.NewGetDeadlineAlertsQuery(reference, window)
	if err != nil {
		return s.writeError(ctx, err)
	}

	alerts, err := s.handlers.Reports.HandleDeadlineAlerts(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Alerts{
		Date:       reference.String(),
		WindowDays: window,
		Orders:     toOrders(alerts),
	})
}

// GetPeriodSummary handles GET /api/v1/reports/period?from=&to=&date=. The
// range defaults to the last 30 days ending at the reference date.
func (s *Server) GetPeriodSummary(ctx echo.Context) error {
	params := ctx.QueryParams()

	reference, err := optionalDate(params, "date", s.today())
	if err != nil {
		return s.writeError(ctx, err)
	}
	to, err := optionalDate(params, "to", reference)
	if err != nil {
		return s.writeError(ctx, err)
	}
	from, err := optionalDate(params, "from", to.AddDays(-defaultPeriodDays))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetPeriodSummaryQuery(from, to, reference)
	if err != nil {
		return s.writeError(ctx, err)
	}

	summary, err := s.handlers.Reports.HandlePeriodSummary(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PeriodSummary{
		From:    from.String(),
		To:      to.String(),
		Summary: toSummary(summary),
	})
}

func optionalDate(params url.Values, name string, fallback kernel.Date) (kernel.Date, error) {
	raw := params.Get(name)
	if raw == "" {
		return fallback, nil
	}
	return kernel.ParseDate(raw)
}

func requiredDate(params url.Values, name string) (kernel.Date, error) {
	raw := params.Get(name)
	if raw == "" {
		return kernel.Date{}, errs.NewValueIsRequiredError(name)
	}
	return kernel.ParseDate(raw)
}
