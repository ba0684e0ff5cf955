package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBounds is returned when Min falls after Max
var ErrInvalidBounds = errors.New("min date is after max date")

var (
	// DefaultMin is the earliest navigable month
	DefaultMin = New(1970, time.January, 1)
	// DefaultMax is the latest navigable month
	DefaultMax = New(2200, time.January, 1)
)

// Bounds limits month navigation. Comparison is by month: any day of Min's
// month and Max's month is reachable.
type Bounds struct {
	Min Date
	Max Date
}

// DefaultBounds returns the 1970-01 .. 2200-01 range
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMin, Max: DefaultMax}
}

// Validate checks that Min does not fall after Max
func (b Bounds) Validate() error {
	if b.Min.After(b.Max) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidBounds, b.Min, b.Max)
	}
	return nil
}

// ContainsMonth reports whether d's month is inside the bounds
func (b Bounds) ContainsMonth(d Date) bool {
	return d.CompareMonth(b.Min) >= 0 && d.CompareMonth(b.Max) <= 0
}

// Calculator computes month grids and month steps inside fixed bounds
type Calculator struct {
	Bounds    Bounds
	WeekStart time.Weekday
}

// NewCalculator creates a Calculator
func NewCalculator(bounds Bounds, weekStart time.Weekday) Calculator {
	return Calculator{Bounds: bounds, WeekStart: weekStart}
}

// MonthGrid returns the whole-week grid for ref's month
func (c Calculator) MonthGrid(ref Date) Grid {
	return MonthGrid(ref, c.WeekStart)
}

// StepMonth moves cur one month forward (direction > 0) or back (direction < 0)
// and returns the first day of the target month, so a step and its reverse
// land on the same month whatever cur's day was. When the target month falls
// outside the bounds cur is returned unchanged together with false.
func (c Calculator) StepMonth(cur Date, direction int) (Date, bool) {
	switch {
	case direction > 0:
		direction = 1
	case direction < 0:
		direction = -1
	default:
		return cur, false
	}

	next := cur.FirstOfMonth().AddMonths(direction)
	if !c.Bounds.ContainsMonth(next) {
		return cur, false
	}
	return next, true
}

// ClampMonth moves d to the nearest bound when its month is out of range
func (c Calculator) ClampMonth(d Date) Date {
	switch {
	case d.CompareMonth(c.Bounds.Min) < 0:
		return c.Bounds.Min
	case d.CompareMonth(c.Bounds.Max) > 0:
		return c.Bounds.Max
	}
	return d
}
