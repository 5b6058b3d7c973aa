// Package postgres provides the GORM implementation of the unit of work.
// Each UnitOfWork wraps one database transaction; the repositories it hands
// out are bound to that transaction once Begin has been called.
//
// Usage:
//
//	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction,
// which the deferred call ignores.
package postgres

import (
	"context"

	"shopfloor/internal/adapters/out/postgres/orderrepo"
	"shopfloor/internal/adapters/out/postgres/productrepo"
	"shopfloor/internal/core/ports"

	"gorm.io/gorm"
)

// Migrate creates or updates the orders and products tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &productrepo.ProductDTO{})
}

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling it again inside a transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
