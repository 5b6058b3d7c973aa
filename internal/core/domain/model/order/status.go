package order

import (
	"fmt"
	"strings"

	"shopfloor/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Open ──Complete──> Completed
//
// Completed is terminal.
type Status int

const (
	// Unknown (0) catches uninitialized or corrupted values.
	Unknown Status = iota

	// Open is the initial status of every new order.
	Open

	// Completed marks a produced order. No transition leaves it.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Completed: "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "Open",
		Completed: "Completed",
	}
}

// ParseStatus reads a status name case-insensitively ("open", "Completed").
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and any value outside the enum.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; invalid values print as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Complete returns Completed for an Open status. Completing anything else,
// including an already Completed order, is an errs.TransitionIsInvalidError.
func (s Status) Complete() (Status, error) {
	if s != Open {
		return Unknown, errs.NewTransitionIsInvalidError(s.String(), Completed.String())
	}

	return Completed, nil
}
