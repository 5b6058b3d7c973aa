package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shopfloor/internal/adapters/out/memory"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/product"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	ledger  *memory.Ledger
	factory *memory.UnitOfWorkFactory
	product *product.Product
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.ledger = memory.NewLedger()
	suite.factory = memory.NewUnitOfWorkFactory(suite.ledger)

	p, err := product.NewProduct("Camiseta de Malha", 2)
	suite.Require().NoError(err)
	suite.product = p
}

func (suite *UnitOfWorkTestSuite) newOrder(name string, urgency int, deadline kernel.Date) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), name, suite.product, urgency, 5, deadline, services.NewScoringEngine())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkTestSuite) allOrders() []*order.Order {
	orders, err := suite.ledger.OrderReader().GetAll(context.Background())
	suite.Require().NoError(err)
	return orders
}

func (suite *UnitOfWorkTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ProductRepository())
}

func (suite *UnitOfWorkTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "nested begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), memory.ErrNoActiveTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), memory.ErrNoActiveTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkTestSuite) TestBegin_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite.Require().ErrorIs(suite.factory.Create().Begin(ctx), context.Canceled)
}

func (suite *UnitOfWorkTestSuite) TestCommit_PublishesStagedChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := suite.newOrder("Pedido 1", 8, kernel.MustNewDate(2025, time.January, 20))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Upsert(ctx, suite.product))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	staged, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("Pedido 1", staged.Name())

	suite.Require().NoError(uow.Commit(ctx))

	suite.Len(suite.allOrders(), 1)
	products, err := suite.ledger.ProductReader().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(products, 1)
}

func (suite *UnitOfWorkTestSuite) TestRollback_LeavesLedgerUnchanged() {
	ctx := context.Background()
	existing := suite.newOrder("existing", 5, kernel.MustNewDate(2025, time.January, 20))
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, existing))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("discarded", 5, existing.Deadline())))

	loaded, err := uow.OrderRepository().Get(ctx, existing.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Complete())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))

	suite.Require().NoError(uow.Rollback(ctx))

	orders := suite.allOrders()
	suite.Require().Len(orders, 1)
	suite.Equal("existing", orders[0].Name())
	suite.Equal(order.Open, orders[0].Status())
}

func (suite *UnitOfWorkTestSuite) TestReadsDoNotSeeUncommittedChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("pending", 5, kernel.MustNewDate(2025, time.January, 20))))

	read := make(chan int)
	go func() {
		orders, _ := suite.ledger.OrderReader().GetAll(ctx)
		read <- len(orders)
	}()

	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal(1, <-read, "the reader waits for the commit")
}

func (suite *UnitOfWorkTestSuite) TestConcurrentWriters_NoLostUpdates() {
	const writers = 50
	deadline := kernel.MustNewDate(2025, time.January, 20)

	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := context.Background()
			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			defer func() {
				_ = uow.Rollback(ctx)
			}()

			o, err := order.NewOrder(kernel.NewUUID(), "Pedido", suite.product, 5, 5, deadline, services.NewScoringEngine())
			if err != nil {
				return
			}
			if err = uow.OrderRepository().Add(ctx, o); err != nil {
				return
			}
			_ = uow.Commit(ctx)
		}()
	}
	wg.Wait()

	suite.Len(suite.allOrders(), writers)
}

func (suite *UnitOfWorkTestSuite) TestAddDuplicateID_Fails() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()
	o := suite.newOrder("Pedido", 5, kernel.MustNewDate(2025, time.January, 20))

	suite.Require().NoError(repo.Add(ctx, o))
	err := repo.Add(ctx, o)

	suite.Require().Error(err)
	suite.True(errs.IsInvalidInput(err))
	suite.Len(suite.allOrders(), 1)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
