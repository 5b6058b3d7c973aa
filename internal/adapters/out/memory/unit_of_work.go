package memory

import (
	"context"
	"errors"

	"shopfloor/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	ledger *Ledger
}

func NewUnitOfWorkFactory(ledger *Ledger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{ledger: ledger}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{ledger: f.ledger}
}

// UnitOfWork holds the ledger write lock from Begin until Commit or Rollback,
// so check-then-act sequences such as scoring a new order or completing an
// open one never interleave. Changes are staged on a copy of the ledger and
// become visible all at once on Commit.
//
// Without Begin the repositories of a UnitOfWork apply every call directly
// to the ledger.
type UnitOfWork struct {
	ledger *Ledger
	staged *ledgerState
}

// Begin takes the ledger write lock. Calling it again inside a transaction
// is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.staged != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.ledger.mu.Lock()
	staged := uow.ledger.state.clone()
	uow.staged = &staged
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.staged == nil {
		return ErrNoActiveTransaction
	}

	uow.ledger.state = *uow.staged
	uow.staged = nil
	uow.ledger.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.staged == nil {
		return ErrNoActiveTransaction
	}

	uow.staged = nil
	uow.ledger.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{access: uow}
}

func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &ProductRepository{access: uow}
}

func (uow *UnitOfWork) read(fn func(state *ledgerState) error) error {
	if uow.staged != nil {
		return fn(uow.staged)
	}
	return uow.ledger.read(fn)
}

func (uow *UnitOfWork) write(fn func(state *ledgerState) error) error {
	if uow.staged != nil {
		return fn(uow.staged)
	}
	return uow.ledger.write(fn)
}
