package commands_test

import (
	"context"
	"log/slog"

	"shopfloor/internal/adapters/out/memory"
	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/product"
	"shopfloor/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.DiscardHandler)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	panic("not used by commands")
}

func (m *MockOrderRepository) GetAllInStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	panic("not used by commands")
}

func (m *MockOrderRepository) GetAllWithDeadlineBetween(
	_ context.Context,
	_ kernel.Date,
	_ kernel.Date,
) ([]*order.Order, error) {
	panic("not used by commands")
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Upsert(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, name string) (*product.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	panic("not used by commands")
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event order.ChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// ledgerFactories wires command handlers to an in-memory ledger.
type ledgerFactories struct {
	factory *memory.UnitOfWorkFactory
}

func newLedgerFactories(ledger *memory.Ledger) ledgerFactories {
	return ledgerFactories{factory: memory.NewUnitOfWorkFactory(ledger)}
}

func (f ledgerFactories) uow() commands.UoWFactory {
	return uowFactoryFunc(func() commands.UoW { return f.factory.Create() })
}

func (f ledgerFactories) orders() commands.OrderUoWFactory {
	return orderUoWFactoryFunc(func() commands.OrderUoW { return f.factory.Create() })
}

func (f ledgerFactories) products() commands.ProductUoWFactory {
	return productUoWFactoryFunc(func() commands.ProductUoW { return f.factory.Create() })
}

type uowFactoryFunc func() commands.UoW

func (fn uowFactoryFunc) Create() commands.UoW { return fn() }

type orderUoWFactoryFunc func() commands.OrderUoW

func (fn orderUoWFactoryFunc) Create() commands.OrderUoW { return fn() }

type productUoWFactoryFunc func() commands.ProductUoW

func (fn productUoWFactoryFunc) Create() commands.ProductUoW { return fn() }
