package calendar

import (
	"errors"
	"fmt"
	"time"
)

// KeyLayout is the canonical day key format (zero-padded YYYY-MM-DD)
const KeyLayout = "2006-01-02"

// ErrInvalidDate is returned when a day key cannot be parsed
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar day with no time component. The zero value is not a
// valid day; build dates with New, FromTime or ParseKey.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for y-m-d, normalizing overflow the way time.Date does
// (2024-02-30 becomes 2024-03-01).
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the local calendar day
func Today() Date {
	return FromTime(time.Now())
}

// ParseKey parses a YYYY-MM-DD day key
func ParseKey(s string) (Date, error) {
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w %q, use yyyy-MM-dd", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of the day. UTC keeps day arithmetic free of DST gaps.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Key returns the canonical YYYY-MM-DD day key
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) String() string {
	return d.Key()
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d == Date{}
}

// Format formats the day with a time layout
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is strictly before o
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly after o
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// AddDays returns the date n days after d (n may be negative)
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths returns the date n months after d. The day is clamped to the
// length of the target month, so Jan 31 + 1 month is Feb 28 (or 29).
func (d Date) AddMonths(n int) Date {
	first := d.FirstOfMonth().Time().AddDate(0, n, 0)
	target := FromTime(first)
	last := target.LastOfMonth().Day
	day := d.Day
	if day > last {
		day = last
	}
	return Date{Year: target.Year, Month: target.Month, Day: day}
}

// FirstOfMonth returns the first day of d's month
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastOfMonth returns the last day of d's month
func (d Date) LastOfMonth() Date {
	return FromTime(d.FirstOfMonth().Time().AddDate(0, 1, -1))
}

// SameMonth reports whether d and o fall in the same month of the same year
func (d Date) SameMonth(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month
}

// CompareMonth compares only the year and month of d and o
func (d Date) CompareMonth(o Date) int {
	return d.FirstOfMonth().Compare(o.FirstOfMonth())
}

// MarshalText encodes the date as its day key
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.Key()), nil
}

// UnmarshalText decodes a day key
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseKey(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
