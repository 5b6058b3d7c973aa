package orderrepo

import (
	"context"
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository. Built on a
// transaction handle it takes part in the unit of work; built on the plain
// connection it serves the read side.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the status, the only mutable column of an order. The row only
// changes when its stored status differs from the new one, so a completion
// made from a stale copy fails with errs.ErrTransitionIsInvalid.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status <> ?", aggregate.ID().Bytes(), int(aggregate.Status())).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.rejectedUpdate(ctx, aggregate)
	}

	return nil
}

func (r *GormOrderRepository) rejectedUpdate(ctx context.Context, aggregate *order.Order) error {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Select("status").First(&dto, "id = ?", aggregate.ID().Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if err != nil {
		return err
	}

	return errs.NewTransitionIsInvalidError(order.Status(dto.Status).String(), aggregate.Status().String())
}

// Get loads an order. Inside a transaction the row stays locked until commit
// or rollback, so concurrent status changes of one order run one after another.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("seq").Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) GetAllWithDeadlineBetween(
	ctx context.Context,
	from kernel.Date,
	to kernel.Date,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("deadline BETWEEN ? AND ?", from.Time(), to.Time()).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
