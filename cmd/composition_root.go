package cmd

import (
	"context"
	"fmt"
	"log/slog"

	apihttp "shopfloor/internal/adapters/in/http"
	"shopfloor/internal/adapters/out/eventlog"
	"shopfloor/internal/adapters/out/excel"
	"shopfloor/internal/adapters/out/kafka"
	"shopfloor/internal/adapters/out/memory"
	"shopfloor/internal/adapters/out/postgres"
	"shopfloor/internal/adapters/out/postgres/orderrepo"
	"shopfloor/internal/adapters/out/postgres/productrepo"
	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/shop"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/core/ports"
	"shopfloor/internal/jobs"
	"shopfloor/internal/pkg/metrics"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DefaultCatalog is the product list loaded at startup when SEED_CATALOG is on.
var DefaultCatalog = []struct {
	Name          string
	StandardHours float64
}{
	{"Camiseta de Malha", 2},
	{"Camiseta UV", 3},
	{"Shorts de Malha", 2},
	{"Calças de Malha", 4},
}

type unitOfWorkFactory interface {
	Create() ports.UnitOfWork
}

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	metrics    *metrics.Registry
	uowFactory unitOfWorkFactory
	orders     ports.OrderReader
	products   ports.ProductReader
	publisher  ports.EventPublisher
	aggregator services.ReportAggregator
	closers    []func() error
}

// NewCompositionRoot opens the configured storage and event publisher. Close
// releases them.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	shopConfig, err := shop.NewConfig(config.ShopMachines, config.ShopHoursPerDay, config.ShopDaysPerWeek)
	if err != nil {
		return nil, fmt.Errorf("shop config: %w", err)
	}
	aggregator, err := services.NewReportAggregator(shopConfig)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config:     config,
		logger:     logger,
		metrics:    metrics.NewRegistry(),
		aggregator: aggregator,
	}

	if err := c.openStorage(); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err := c.openPublisher(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *CompositionRoot) openStorage() error {
	switch c.config.Storage {
	case StoragePostgres:
		db, err := c.openPostgres(postgres.Migrate)
		if err != nil {
			return err
		}

		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
		c.orders = orderrepo.NewGormOrderRepository(db)
		c.products = productrepo.NewGormProductRepository(db)
	default:
		ledger := memory.NewLedger()
		c.uowFactory = memory.NewUnitOfWorkFactory(ledger)
		c.orders = ledger.OrderReader()
		c.products = ledger.ProductReader()
	}

	c.logger.Info("Storage ready", "storage", c.config.Storage)
	return nil
}

// openPostgres registers the connection pool with Close before migrating, so a
// failed migration does not leak it.
func (c *CompositionRoot) openPostgres(migrate func(*gorm.DB) error) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(c.config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, sqlDB.Close)

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func (c *CompositionRoot) openPublisher() error {
	var primary ports.EventPublisher
	if c.config.KafkaHost != "" {
		publisher, err := kafka.NewPublisher(c.config.KafkaHost, c.config.KafkaOrderChangedTopic)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, publisher.Close)
		primary = publisher
	} else {
		primary = eventlog.NewPublisher(c.logger)
	}

	c.publisher = eventlog.NewMultiPublisher(primary, eventlog.NewMetricsPublisher(c.metrics))
	return nil
}

// Close releases storage and broker connections.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}

// SeedCatalog upserts DefaultCatalog through the regular product command.
func (c *CompositionRoot) SeedCatalog(ctx context.Context) error {
	handler := c.CreateUpsertProductCommandHandler()
	for _, entry := range DefaultCatalog {
		cmd, err := commands.NewUpsertProductCommand(entry.Name, entry.StandardHours)
		if err != nil {
			return err
		}
		if err := handler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed %q: %w", entry.Name, err)
		}
	}
	return nil
}

func (c *CompositionRoot) Metrics() *metrics.Registry {
	return c.metrics
}

func (c *CompositionRoot) CreateAddOrderCommandHandler() commands.AddOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderCommandHandler(f, services.NewScoringEngine(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateMarkOrderCompletedCommandHandler() commands.MarkOrderCompletedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderCompletedCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpsertProductCommandHandler() commands.UpsertProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertProductCommandHandler(f, c.metrics.ProductsUpserted)
}

func (c *CompositionRoot) CreateReportQueryHandler() queries.ReportQueryHandler {
	return queries.NewReportQueryHandler(c.orders, c.aggregator)
}

func (c *CompositionRoot) CreateHandlers() apihttp.Handlers {
	return apihttp.Handlers{
		AddOrder:              c.CreateAddOrderCommandHandler(),
		MarkOrderComplete:     c.CreateMarkOrderCompletedCommandHandler(),
		UpsertProduct:         c.CreateUpsertProductCommandHandler(),
		ListOpenOrders:        queries.NewListOpenOrdersQueryHandler(c.orders),
		ListOrdersByStatus:    queries.NewListOrdersByStatusQueryHandler(c.orders),
		ListOrdersByDeadline:  queries.NewListOrdersByDeadlineRangeQueryHandler(c.orders),
		GetProduct:            queries.NewGetProductQueryHandler(c.products),
		ListProducts:          queries.NewListProductsQueryHandler(c.products),
		Reports:               c.CreateReportQueryHandler(),
		ExportProductionOrder: queries.NewExportProductionOrderQueryHandler(c.orders, excel.NewRenderer()),
	}
}

func (c *CompositionRoot) CreateServer() *apihttp.Server {
	return apihttp.NewServer(c.CreateHandlers(), c.logger, apihttp.WithMetrics(c.metrics))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReportQueryHandler(), jobs.Schedules{
		DeadlineAlerts:  c.config.AlertCron,
		AlertWindowDays: c.config.AlertWindowDays,
		Capacity:        c.config.CapacityCron,
	}, c.metrics, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
