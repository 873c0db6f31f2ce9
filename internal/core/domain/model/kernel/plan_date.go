package kernel

import (
	"fmt"
	"time"

	"loadplanner/internal/pkg/errs"
	"loadplanner/internal/pkg/guard"
)

// ErrPlanDateIsNotConstructed is returned when a zero-value PlanDate is used.
var ErrPlanDateIsNotConstructed = errs.NewValueIsRequiredError(
	"plan date must be created via NewPlanDate or PlanDateOf")

// PlanDate is the calendar day a truck is loaded for. It carries no time of day
// and no zone; the day is interpreted in the warehouse's local calendar.
type PlanDate struct {
	year  int
	month time.Month
	day   int
	guard guard.ConstructorGuard
}

// NewPlanDate validates year, month and day as a real calendar date.
//
// Example:
//
//	d, err := kernel.NewPlanDate(2024, 2, 30) // error: February has no 30th
func NewPlanDate(year, month, day int) (PlanDate, error) {
	if year < 1 || year > 9999 {
		return PlanDate{}, errs.NewValueIsOutOfRangeError("year", year, 1, 9999)
	}
	if month < 1 || month > 12 {
		return PlanDate{}, errs.NewValueIsOutOfRangeError("month", month, 1, 12)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return PlanDate{}, errs.NewValueIsInvalidErrorWithCause(
			"day", fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, month, day))
	}

	return PlanDate{year: year, month: time.Month(month), day: day, guard: guard.NewConstructorGuard()}, nil
}

// PlanDateOf returns the calendar day of t in t's location.
func PlanDateOf(t time.Time) PlanDate {
	return PlanDate{year: t.Year(), month: t.Month(), day: t.Day(), guard: guard.NewConstructorGuard()}
}

// Validate reports whether the value was built by a constructor.
func (d PlanDate) Validate() error {
	return d.guard.Validate(ErrPlanDateIsNotConstructed)
}

// Year returns the calendar year.
func (d PlanDate) Year() int { return d.year }

// Month returns the calendar month, 1-12.
func (d PlanDate) Month() int { return int(d.month) }

// Day returns the day of month.
func (d PlanDate) Day() int { return d.day }

// Time returns midnight UTC of the day, for storage in DATE columns.
func (d PlanDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String formats the day as YYYY-MM-DD.
func (d PlanDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
