// Package queries contains the read-only operations of the shop floor. Query
// handlers read snapshots through the ports.OrderReader and ports.ProductReader
// contracts and never change state.
package queries

import (
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/product"
)

// OrderView is the read model of an order.
type OrderView struct {
	ID              kernel.UUID
	Name            string
	Product         string
	Urgency         int
	Cost            int
	ProductionHours float64
	Score           float64
	Deadline        kernel.Date
	Status          order.Status
}

// ProductView is the read model of a catalog entry.
type ProductView struct {
	Name          string
	StandardHours float64
}

func newOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:              o.ID(),
		Name:            o.Name(),
		Product:         o.Product(),
		Urgency:         o.Urgency(),
		Cost:            o.Cost(),
		ProductionHours: o.ProductionHours(),
		Score:           o.Score(),
		Deadline:        o.Deadline(),
		Status:          o.Status(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return views
}

func newProductView(p *product.Product) ProductView {
	return ProductView{
		Name:          p.Name(),
		StandardHours: p.StandardHours(),
	}
}
