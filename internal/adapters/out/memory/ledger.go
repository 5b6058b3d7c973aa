// Package memory keeps the order ledger and the product catalog in process
// memory. A Ledger is one shared resource: units of work serialize writers on
// its lock and stage their changes on a private copy, while readers take the
// read lock and receive copies of the aggregates.
package memory

import (
	"sync"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/product"
	"shopfloor/internal/core/ports"
)

type ledgerState struct {
	orders       []*order.Order
	orderIndex   map[kernel.UUID]int
	products     []*product.Product
	productIndex map[string]int
}

func newLedgerState() ledgerState {
	return ledgerState{
		orders:       make([]*order.Order, 0),
		orderIndex:   make(map[kernel.UUID]int),
		products:     make([]*product.Product, 0),
		productIndex: make(map[string]int),
	}
}

func (s ledgerState) clone() ledgerState {
	cloned := ledgerState{
		orders:       make([]*order.Order, len(s.orders)),
		orderIndex:   make(map[kernel.UUID]int, len(s.orderIndex)),
		products:     make([]*product.Product, len(s.products)),
		productIndex: make(map[string]int, len(s.productIndex)),
	}
	for i, o := range s.orders {
		cloned.orders[i] = cloneOrder(o)
	}
	for id, i := range s.orderIndex {
		cloned.orderIndex[id] = i
	}
	for i, p := range s.products {
		cloned.products[i] = cloneProduct(p)
	}
	for name, i := range s.productIndex {
		cloned.productIndex[name] = i
	}
	return cloned
}

func cloneOrder(o *order.Order) *order.Order {
	cp := *o
	return &cp
}

func cloneProduct(p *product.Product) *product.Product {
	cp := *p
	return &cp
}

func cloneOrders(orders []*order.Order) []*order.Order {
	result := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, cloneOrder(o))
	}
	return result
}

// stateAccess runs fn against a ledger state under the right isolation.
type stateAccess interface {
	read(fn func(state *ledgerState) error) error
	write(fn func(state *ledgerState) error) error
}

// Ledger is the in-memory store shared by every unit of work and query of
// the process.
type Ledger struct {
	mu    sync.RWMutex
	state ledgerState
}

func NewLedger() *Ledger {
	return &Ledger{state: newLedgerState()}
}

// OrderReader gives queries snapshot reads of the order ledger.
func (l *Ledger) OrderReader() ports.OrderReader {
	return &OrderRepository{access: l}
}

// ProductReader gives queries snapshot reads of the product catalog.
func (l *Ledger) ProductReader() ports.ProductReader {
	return &ProductRepository{access: l}
}

func (l *Ledger) read(fn func(state *ledgerState) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return fn(&l.state)
}

func (l *Ledger) write(fn func(state *ledgerState) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	staged := l.state.clone()
	if err := fn(&staged); err != nil {
		return err
	}
	l.state = staged
	return nil
}
