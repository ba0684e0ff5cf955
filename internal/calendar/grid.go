package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DaysPerWeek is the number of cells in one grid row
const DaysPerWeek = 7

// DefaultWeekStart is the first column of the grid unless configured otherwise
const DefaultWeekStart = time.Sunday

// Cell is one square of the month grid
type Cell struct {
	Date    Date
	InMonth bool // false for leading/trailing days borrowed from adjacent months
}

// Grid is the whole-week cell sequence for one month
type Grid struct {
	Month     Date // first day of the displayed month
	WeekStart time.Weekday
	Cells     []Cell
}

// Weeks splits the grid into rows of seven cells
func (g Grid) Weeks() [][]Cell {
	weeks := make([][]Cell, 0, len(g.Cells)/DaysPerWeek)
	for i := 0; i+DaysPerWeek <= len(g.Cells); i += DaysPerWeek {
		weeks = append(weeks, g.Cells[i:i+DaysPerWeek])
	}
	return weeks
}

// First returns the first cell's date
func (g Grid) First() Date {
	if len(g.Cells) == 0 {
		return Date{}
	}
	return g.Cells[0].Date
}

// Last returns the last cell's date
func (g Grid) Last() Date {
	if len(g.Cells) == 0 {
		return Date{}
	}
	return g.Cells[len(g.Cells)-1].Date
}

// Index returns the position of d in the grid, or -1
func (g Grid) Index(d Date) int {
	if len(g.Cells) == 0 || d.Before(g.First()) || d.After(g.Last()) {
		return -1
	}
	return int(d.Time().Sub(g.First().Time()).Hours() / 24)
}

// WeekdayHeaders returns two-letter weekday labels in grid column order
func WeekdayHeaders(weekStart time.Weekday) []string {
	headers := make([]string, DaysPerWeek)
	for i := range headers {
		wd := time.Weekday((int(weekStart) + i) % DaysPerWeek)
		headers[i] = wd.String()[:2]
	}
	return headers
}

// ParseWeekday parses a weekday name ("sunday", "Mon", "mo")
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 2 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if strings.HasPrefix(strings.ToLower(wd.String()), s) {
				return wd, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

// startOfWeek returns the closest day on or before d that falls on weekStart
func startOfWeek(d Date, weekStart time.Weekday) Date {
	offset := (int(d.Weekday()) - int(weekStart) + DaysPerWeek) % DaysPerWeek
	return d.AddDays(-offset)
}

// endOfWeek returns the closest day on or after d that ends a week begun on weekStart
func endOfWeek(d Date, weekStart time.Weekday) Date {
	return startOfWeek(d, weekStart).AddDays(DaysPerWeek - 1)
}

// MonthGrid builds the cells for ref's month padded out to whole weeks
func MonthGrid(ref Date, weekStart time.Weekday) Grid {
	first := ref.FirstOfMonth()
	start := startOfWeek(first, weekStart)
	end := endOfWeek(ref.LastOfMonth(), weekStart)

	var cells []Cell
	for day := start; !day.After(end); day = day.AddDays(1) {
		cells = append(cells, Cell{Date: day, InMonth: day.SameMonth(first)})
	}

	return Grid{Month: first, WeekStart: weekStart, Cells: cells}
}
