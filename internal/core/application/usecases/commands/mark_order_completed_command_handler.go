package commands

import (
	"context"
	"log/slog"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/ports"
)

// MarkOrderCompletedCommandHandler completes an order inside a unit of work.
// Unknown ids fail with errs.ErrObjectNotFound; completing a Completed order
// fails with errs.ErrTransitionIsInvalid and leaves the ledger untouched.
type MarkOrderCompletedCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewMarkOrderCompletedCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) MarkOrderCompletedCommandHandler {
	return MarkOrderCompletedCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "mark_order_completed_command_handler"),
	}
}

func (h *MarkOrderCompletedCommandHandler) Handle(ctx context.Context, cmd MarkOrderCompletedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, h.logger, order.NewChangedEvent(o))
	return nil
}
