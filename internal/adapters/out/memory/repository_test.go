package memory_test

import (
	"context"
	"testing"
	"time"

	"shopfloor/internal/adapters/out/memory"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/product"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderNames(orders []*order.Order) []string {
	result := make([]string, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.Name())
	}
	return result
}

func seedOrders(t *testing.T, ledger *memory.Ledger) []*order.Order {
	t.Helper()
	ctx := context.Background()
	p, err := product.NewProduct("Shorts de Malha", 2)
	require.NoError(t, err)

	repo := memory.NewUnitOfWorkFactory(ledger).Create().OrderRepository()
	orders := make([]*order.Order, 0, 4)
	for i, day := range []int{20, 5, 12, 15} {
		o, err := order.NewOrder(kernel.NewUUID(), []string{"A", "B", "C", "D"}[i], p, 5, 5,
			kernel.MustNewDate(2025, time.January, day), services.NewScoringEngine())
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, o))
		orders = append(orders, o)
	}
	return orders
}

func TestOrderRepository_Get(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewLedger()
	orders := seedOrders(t, ledger)
	repo := memory.NewUnitOfWorkFactory(ledger).Create().OrderRepository()

	t.Run("should return a copy", func(t *testing.T) {
		loaded, err := repo.Get(ctx, orders[0].ID())
		require.NoError(t, err)
		require.NoError(t, loaded.Complete())

		again, err := repo.Get(ctx, orders[0].ID())
		require.NoError(t, err)
		assert.Equal(t, order.Open, again.Status())
	})

	t.Run("should report unknown ids as not found", func(t *testing.T) {
		_, err := repo.Get(ctx, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := repo.Get(ctx, kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestOrderRepository_Update(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewLedger()
	orders := seedOrders(t, ledger)
	repo := memory.NewUnitOfWorkFactory(ledger).Create().OrderRepository()

	loaded, err := repo.Get(ctx, orders[1].ID())
	require.NoError(t, err)
	require.NoError(t, loaded.Complete())
	require.NoError(t, repo.Update(ctx, loaded))

	completed, err := ledger.OrderReader().GetAllInStatus(ctx, order.Completed)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, orderNames(completed))

	p, _ := product.NewProduct("Calças de Malha", 4)
	stranger, _ := order.NewOrder(kernel.NewUUID(), "X", p, 5, 5,
		kernel.MustNewDate(2025, time.January, 1), services.NewScoringEngine())
	require.ErrorIs(t, repo.Update(ctx, stranger), errs.ErrObjectNotFound)
}

func TestOrderRepository_Listings(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewLedger()
	seedOrders(t, ledger)
	reader := ledger.OrderReader()

	all, err := reader.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, orderNames(all))

	open, err := reader.GetAllInStatus(ctx, order.Open)
	require.NoError(t, err)
	assert.Len(t, open, 4)

	_, err = reader.GetAllInStatus(ctx, order.Unknown)
	require.Error(t, err)

	ranged, err := reader.GetAllWithDeadlineBetween(ctx,
		kernel.MustNewDate(2025, time.January, 12), kernel.MustNewDate(2025, time.January, 20))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, orderNames(ranged))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = reader.GetAll(cancelled)
	require.ErrorIs(t, err, context.Canceled)
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewLedger()
	repo := memory.NewUnitOfWorkFactory(ledger).Create().ProductRepository()

	for _, item := range []struct {
		name  string
		hours float64
	}{
		{"Camiseta de Malha", 2},
		{"Camiseta UV", 3},
		{"Camiseta de Malha", 2.5},
	} {
		p, err := product.NewProduct(item.name, item.hours)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, p))
	}

	products, err := ledger.ProductReader().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Camiseta de Malha", products[0].Name())
	assert.InDelta(t, 2.5, products[0].StandardHours(), 1e-9)
	assert.Equal(t, "Camiseta UV", products[1].Name())

	found, err := ledger.ProductReader().Get(ctx, "Camiseta UV")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, found.StandardHours(), 1e-9)

	_, err = ledger.ProductReader().Get(ctx, "Bermuda")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "Bermuda")

	require.ErrorIs(t, repo.Upsert(ctx, nil), product.ErrProductIsNotConstructed)
}
