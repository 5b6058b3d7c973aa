package kernel

import (
	"fmt"
	"time"

	"shopfloor/internal/pkg/errs"
	"shopfloor/internal/pkg/guard"
)

// DateLayout is the ISO calendar date layout used on the wire and in logs.
const DateLayout = time.DateOnly

// ErrDateIsNotConstructed is returned when a zero Date is validated.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via NewDate, ParseDate or DateFromTime")

// Date is a calendar day without time of day or zone, stored as UTC midnight.
// Order deadlines and report reference dates are Dates, so "overdue" and
// "due within N days" compare whole days only.
type Date struct { //nolint:recvcheck //using for validation
	t     time.Time
	guard guard.ConstructorGuard
}

// NewDate builds a Date and rejects impossible days such as 2025-02-30.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, int(month), day),
		)
	}
	return Date{t: t, guard: guard.NewConstructorGuard()}, nil
}

// MustNewDate is NewDate for literals known to be valid; it panics otherwise.
func MustNewDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromTime takes the calendar day of t in t's own location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), guard: guard.NewConstructorGuard()}
}

// ParseDate reads a "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateFromTime(t), nil
}

// Validate returns ErrDateIsNotConstructed for the zero Date.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// Time returns the day as UTC midnight.
func (d Date) Time() time.Time {
	return d.t
}

// AddDays shifts the date by n whole days; n may be negative.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n), guard: d.guard}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Between reports whether d lies in the closed range [from, to].
func (d Date) Between(from Date, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}
