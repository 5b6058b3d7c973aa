package commands

import (
	"errors"
	"strings"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrAddOrderCommandIsNotConstructed = errors.New(
	"AddOrderCommand must be created via NewAddOrderCommand constructor",
)

// AddOrderCommand asks for a new Open order. The caller picks the id; the
// name is a free label and may repeat.
//
// Example:
//
//	deadline, _ := kernel.ParseDate("2025-01-20")
//	cmd, err := NewAddOrderCommand(kernel.NewUUID(), "Pedido 42", "Camiseta de Malha", 8, 3, deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	name        string
	productName string
	urgency     int
	cost        int
	deadline    kernel.Date

	guard guard.ConstructorGuard
}

// NewAddOrderCommand validates everything that does not need the catalog:
// the product itself is checked by the handler.
func NewAddOrderCommand(
	orderID kernel.UUID,
	name string,
	productName string,
	urgency int,
	cost int,
	deadline kernel.Date,
) (AddOrderCommand, error) {
	cmd := AddOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setName(name),
		cmd.setProductName(productName),
		cmd.setUrgency(urgency),
		cmd.setCost(cost),
		cmd.setDeadline(deadline),
	); err != nil {
		return AddOrderCommand{}, err
	}

	return cmd, nil
}

func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

func (c AddOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderCommand) Name() string {
	return c.name
}

func (c AddOrderCommand) ProductName() string {
	return c.productName
}

func (c AddOrderCommand) Urgency() int {
	return c.urgency
}

func (c AddOrderCommand) Cost() int {
	return c.cost
}

func (c AddOrderCommand) Deadline() kernel.Date {
	return c.deadline
}

func (c *AddOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("order name")
	}

	c.name = name
	return nil
}

func (c *AddOrderCommand) setProductName(productName string) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}

	c.productName = productName
	return nil
}

func (c *AddOrderCommand) setUrgency(urgency int) error {
	if urgency < order.MinRating || urgency > order.MaxRating {
		return errs.NewValueIsOutOfRangeError("urgency", urgency, order.MinRating, order.MaxRating)
	}

	c.urgency = urgency
	return nil
}

func (c *AddOrderCommand) setCost(cost int) error {
	if cost < order.MinRating || cost > order.MaxRating {
		return errs.NewValueIsOutOfRangeError("cost", cost, order.MinRating, order.MaxRating)
	}

	c.cost = cost
	return nil
}

func (c *AddOrderCommand) setDeadline(deadline kernel.Date) error {
	if err := deadline.Validate(); err != nil {
		return err
	}

	c.deadline = deadline
	return nil
}
