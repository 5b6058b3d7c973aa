// Package productrepo persists the product catalog in PostgreSQL through GORM.
package productrepo

import (
	"shopfloor/internal/core/domain/model/product"
)

// ProductDTO is the products table row, keyed by product name.
type ProductDTO struct {
	Name          string  `gorm:"primaryKey"`
	Seq           int64   `gorm:"autoIncrement;index"`
	StandardHours float64 `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		Name:          p.Name(),
		StandardHours: p.StandardHours(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.Name, dto.StandardHours)
}
