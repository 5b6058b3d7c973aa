// Package orderrepo persists the order ledger in PostgreSQL through GORM.
package orderrepo

import (
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders table row. Seq records insertion order, which is
// the order of every listing and the tie-break of the priority sort.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq             int64     `gorm:"autoIncrement;index"`
	Name            string    `gorm:"not null"`
	Product         string    `gorm:"not null"`
	Urgency         int       `gorm:"type:smallint"`
	Cost            int       `gorm:"type:smallint"`
	ProductionHours float64
	Score           float64
	Deadline        time.Time `gorm:"type:date;index"`
	Status          int       `gorm:"index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID().Bytes(),
		Name:            o.Name(),
		Product:         o.Product(),
		Urgency:         o.Urgency(),
		Cost:            o.Cost(),
		ProductionHours: o.ProductionHours(),
		Score:           o.Score(),
		Deadline:        o.Deadline().Time(),
		Status:          int(o.Status()),
	}
}

// toDomain rebuilds the aggregate with RestoreOrder; the stored score is kept.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Name,
		dto.Product,
		dto.Urgency,
		dto.Cost,
		dto.ProductionHours,
		dto.Score,
		kernel.DateFromTime(dto.Deadline),
		order.Status(dto.Status),
	)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
