package commands

import (
	"context"

	"shopfloor/internal/core/domain/model/product"
)

// Counter is incremented once per committed upsert. prometheus.Counter
// satisfies it.
type Counter interface {
	Inc()
}

// UpsertProductCommandHandler writes a catalog entry. Running the same
// command twice leaves the catalog as running it once.
type UpsertProductCommandHandler struct {
	uowFactory ProductUoWFactory
	upserted   Counter
}

// NewUpsertProductCommandHandler builds the handler. upserted may be nil.
func NewUpsertProductCommandHandler(uowFactory ProductUoWFactory, upserted Counter) UpsertProductCommandHandler {
	return UpsertProductCommandHandler{
		uowFactory: uowFactory,
		upserted:   upserted,
	}
}

func (h *UpsertProductCommandHandler) Handle(ctx context.Context, cmd UpsertProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := product.NewProduct(cmd.Name(), cmd.StandardHours())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Upsert(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}
	if h.upserted != nil {
		h.upserted.Inc()
	}
	return nil
}
