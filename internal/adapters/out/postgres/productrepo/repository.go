package productrepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/product"
	"shopfloor/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Upsert inserts the product or overwrites its standard hours. The original
// insertion position is kept.
func (r *GormProductRepository) Upsert(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"standard_hours"}),
		}).
		Create(&dto).Error
}

func (r *GormProductRepository) Get(ctx context.Context, name string) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
