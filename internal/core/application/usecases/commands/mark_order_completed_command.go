package commands

import (
	"errors"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/guard"
)

var ErrMarkOrderCompletedCommandIsNotConstructed = errors.New(
	"MarkOrderCompletedCommand must be created via NewMarkOrderCompletedCommand constructor",
)

// MarkOrderCompletedCommand moves one order from Open to Completed.
type MarkOrderCompletedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderCompletedCommand(orderID kernel.UUID) (MarkOrderCompletedCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderCompletedCommand{}, err
	}

	return MarkOrderCompletedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderCompletedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderCompletedCommandIsNotConstructed)
}

func (c MarkOrderCompletedCommand) OrderID() kernel.UUID {
	return c.orderID
}
