package order

import "shopfloor/internal/core/domain/model/kernel"

// ChangedEvent is published after an order is created or completed. It is
// informational: consumers display it, nothing in the core depends on delivery.
type ChangedEvent struct {
	OrderID         kernel.UUID
	Name            string
	Product         string
	Status          Status
	Score           float64
	ProductionHours float64
	Deadline        kernel.Date
}

// NewChangedEvent captures the order's current state.
func NewChangedEvent(o *Order) ChangedEvent {
	return ChangedEvent{
		OrderID:         o.ID(),
		Name:            o.Name(),
		Product:         o.Product(),
		Status:          o.Status(),
		Score:           o.Score(),
		ProductionHours: o.ProductionHours(),
		Deadline:        o.Deadline(),
	}
}
