package commands

import (
	"context"
	"log/slog"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/ports"
)

// AddOrderCommandHandler looks up the product, scores the order and appends
// it to the ledger in one unit of work. Either the ledger grows by exactly
// one Open order or nothing changes.
//
// Example:
//
//	handler := NewAddOrderCommandHandler(uowFactory, services.NewScoringEngine(), publisher, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown product
//	}
type AddOrderCommandHandler struct {
	uowFactory UoWFactory
	scorer     order.Scorer
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewAddOrderCommandHandler(
	uowFactory UoWFactory,
	scorer order.Scorer,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AddOrderCommandHandler {
	return AddOrderCommandHandler{
		uowFactory: uowFactory,
		scorer:     scorer,
		publisher:  publisher,
		logger:     logger.With("component", "add_order_command_handler"),
	}
}

// Handle returns the created order. The creation event is published after
// the commit; a publishing failure is logged and does not fail the command.
func (h *AddOrderCommandHandler) Handle(ctx context.Context, cmd AddOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductName())
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Name(),
		p,
		cmd.Urgency(),
		cmd.Cost(),
		cmd.Deadline(),
		h.scorer,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publish(ctx, h.publisher, h.logger, order.NewChangedEvent(created))
	return created, nil
}

func publish(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, event order.ChangedEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish order event",
			"order_id", event.OrderID.String(),
			"status", event.Status.String(),
			"error", err,
		)
	}
}
