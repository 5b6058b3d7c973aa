package http

import (
	"log/slog"
	"net/http"
	"time"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Handlers groups the application use cases served over HTTP.
type Handlers struct {
	// Command handlers
	AddOrder          commands.AddOrderCommandHandler
	MarkOrderComplete commands.MarkOrderCompletedCommandHandler
	UpsertProduct     commands.UpsertProductCommandHandler

	// Query handlers
	ListOpenOrders        queries.ListOpenOrdersQueryHandler
	ListOrdersByStatus    queries.ListOrdersByStatusQueryHandler
	ListOrdersByDeadline  queries.ListOrdersByDeadlineRangeQueryHandler
	GetProduct            queries.GetProductQueryHandler
	ListProducts          queries.ListProductsQueryHandler
	Reports               queries.ReportQueryHandler
	ExportProductionOrder queries.ExportProductionOrderQueryHandler
}

// Authorizer decides whether the caller may use the API. Authentication is
// outside this service; the default allows everyone.
type Authorizer func(c echo.Context) bool

// AllowAll is the default Authorizer.
func AllowAll(echo.Context) bool { return true }

// Server maps HTTP requests onto the application use cases.
type Server struct {
	handlers   Handlers
	authorizer Authorizer
	metrics    *metrics.Registry
	clock      func() time.Time
	logger     *slog.Logger
}

type Option func(*Server)

func WithAuthorizer(a Authorizer) Option {
	return func(s *Server) { s.authorizer = a }
}

// WithClock overrides the source of "today" used when a request omits a date.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) { s.clock = clock }
}

func WithMetrics(registry *metrics.Registry) Option {
	return func(s *Server) { s.metrics = registry }
}

func NewServer(handlers Handlers, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		handlers:   handlers,
		authorizer: AllowAll,
		clock:      time.Now,
		logger:     logger.With("component", "HTTPServer"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register mounts the API, health and metrics routes on e.
func (s *Server) Register(e *echo.Echo) {
	if s.metrics != nil {
		e.Use(s.metricsMiddleware)
		e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api/v1", s.authorize)

	api.POST("/products", s.UpsertProduct)
	api.GET("/products", s.GetProducts)
	api.GET("/products/:name", s.GetProduct)

	api.POST("/orders", s.AddOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.GET("/orders/open", s.GetOpenOrders)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/deadlines", s.GetOrdersByDeadline)

	api.GET("/reports/summary", s.GetSummary)
	api.GET("/reports/capacity", s.GetCapacity)
	api.GET("/reports/alerts", s.GetAlerts)
	api.GET("/reports/period", s.GetPeriodSummary)

	api.GET("/exports/production-order.xlsx", s.ExportProductionOrder)
}

func (s *Server) today() kernel.Date {
	return kernel.DateFromTime(s.clock())
}
