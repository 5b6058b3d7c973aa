package commands

import (
	"errors"
	"fmt"
	"strings"

	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

var ErrUpsertProductCommandIsNotConstructed = errors.New(
	"UpsertProductCommand must be created via NewUpsertProductCommand constructor",
)

// UpsertProductCommand sets the standard production hours of a catalog
// product, creating it when the name is new.
type UpsertProductCommand struct { //nolint:recvcheck //using for validation
	name          string
	standardHours float64

	guard guard.ConstructorGuard
}

func NewUpsertProductCommand(name string, standardHours float64) (UpsertProductCommand, error) {
	cmd := UpsertProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setStandardHours(standardHours),
	); err != nil {
		return UpsertProductCommand{}, err
	}

	return cmd, nil
}

func (c UpsertProductCommand) Validate() error {
	return c.guard.Validate(ErrUpsertProductCommandIsNotConstructed)
}

func (c UpsertProductCommand) Name() string {
	return c.name
}

func (c UpsertProductCommand) StandardHours() float64 {
	return c.standardHours
}

func (c *UpsertProductCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}

	c.name = name
	return nil
}

func (c *UpsertProductCommand) setStandardHours(hours float64) error {
	if hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"standard hours",
			fmt.Errorf("%g is not greater than 0", hours),
		)
	}

	c.standardHours = hours
	return nil
}
