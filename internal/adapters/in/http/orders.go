package http

import (
	"net/http"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// AddOrder handles POST /api/v1/orders - scores and stores a new order.
func (s *Server) AddOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deadline, err := kernel.ParseDate(newOrder.Deadline)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAddOrderCommand(
		kernel.NewUUID(),
		newOrder.Name,
		newOrder.Product,
		newOrder.Urgency,
		newOrder.Cost,
		deadline,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.AddOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Order{
		ID:              created.ID().String(),
		Name:            created.Name(),
		Product:         created.Product(),
		Urgency:         created.Urgency(),
		Cost:            created.Cost(),
		ProductionHours: created.ProductionHours(),
		Score:           created.Score(),
		Deadline:        created.Deadline().String(),
		Status:          "open",
	})
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderCompletedCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.handlers.MarkOrderComplete.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenOrders handles GET /api/v1/orders/open - open orders by descending score.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	orders, err := s.handlers.ListOpenOrders.Handle(ctx.Request().Context(), queries.NewListOpenOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrdersByStatus handles GET /api/v1/orders?status=open|completed.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.ParseStatus(ctx.QueryParam("status"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewListOrdersByStatusQuery(status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.handlers.ListOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrdersByDeadline handles GET /api/v1/orders/deadlines?from=&to=. Both
// bounds are required and inclusive.
func (s *Server) GetOrdersByDeadline(ctx echo.Context) error {
	from, err := requiredDate(ctx.QueryParams(), "from")
	if err != nil {
		return s.writeError(ctx, err)
	}
	to, err := requiredDate(ctx.QueryParams(), "to")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewListOrdersByDeadlineRangeQuery(from, to)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.handlers.ListOrdersByDeadline.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// ExportProductionOrder handles GET /api/v1/exports/production-order.xlsx.
func (s *Server) ExportProductionOrder(ctx echo.Context) error {
	document, err := s.handlers.ExportProductionOrder.Handle(
		ctx.Request().Context(),
		queries.NewExportProductionOrderQuery(),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="production-order.xlsx"`)
	return ctx.Blob(http.StatusOK, document.ContentType, document.Content)
}
