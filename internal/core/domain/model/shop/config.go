// Package shop describes the fixed machine park of the shop and the weekly
// capacity derived from it.
package shop

import (
	"errors"
	"fmt"

	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

// Defaults of a five machine shop working a single 8 hour shift, Monday to Friday.
const (
	DefaultMachineCount = 5
	DefaultHoursPerDay  = 8
	DefaultDaysPerWeek  = 5
)

var ErrConfigIsNotConstructed = errors.New("Config must be created via NewConfig constructor")

// Config is the process-wide shop configuration. It is set once at startup
// and never mutated.
type Config struct { //nolint:recvcheck //using for validation
	machineCount int
	hoursPerDay  int
	daysPerWeek  int

	guard guard.ConstructorGuard
}

// NewConfig validates that all three figures are positive. hoursPerDay is
// capped at 24 and daysPerWeek at 7.
func NewConfig(machineCount int, hoursPerDay int, daysPerWeek int) (Config, error) {
	if err := errors.Join(
		positive("machine count", machineCount),
		inRange("hours per day", hoursPerDay, 24),
		inRange("days per week", daysPerWeek, 7),
	); err != nil {
		return Config{}, err
	}

	return Config{
		machineCount: machineCount,
		hoursPerDay:  hoursPerDay,
		daysPerWeek:  daysPerWeek,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// DefaultConfig returns the 5 machines x 8 hours x 5 days configuration.
func DefaultConfig() Config {
	cfg, _ := NewConfig(DefaultMachineCount, DefaultHoursPerDay, DefaultDaysPerWeek)
	return cfg
}

func (c Config) Validate() error {
	return c.guard.Validate(ErrConfigIsNotConstructed)
}

func (c Config) MachineCount() int { return c.machineCount }
func (c Config) HoursPerDay() int  { return c.hoursPerDay }
func (c Config) DaysPerWeek() int  { return c.daysPerWeek }

// WeeklyCapacityHours is the machine-hour ceiling of one week. It is only
// reported next to planned hours; no order is ever rejected for exceeding it.
func (c Config) WeeklyCapacityHours() int {
	return c.machineCount * c.hoursPerDay * c.daysPerWeek
}

func positive(name string, v int) error {
	if v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", v))
	}
	return nil
}

func inRange(name string, v int, maxValue int) error {
	if v < 1 || v > maxValue {
		return errs.NewValueIsOutOfRangeError(name, v, 1, maxValue)
	}
	return nil
}
