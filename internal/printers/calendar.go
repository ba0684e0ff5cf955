package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"calnote/internal/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// MonthPrinter writes month grids to a terminal
type MonthPrinter struct {
	Out   io.Writer
	Today calendar.Date
}

// NewMonthPrinter prints to out. Stdout is swapped for color.Output, which
// handles Windows consoles.
func NewMonthPrinter(out io.Writer, today calendar.Date) *MonthPrinter {
	if out == os.Stdout {
		out = color.Output
	}
	return &MonthPrinter{Out: out, Today: today}
}

// PrintMonth prints a centered month title, weekday header and the grid.
// Overflow days are faint, today is bold.
func (p *MonthPrinter) PrintMonth(grid calendar.Grid) {
	title := color.New(color.FgWhite, color.Italic)
	header := color.New(color.FgHiBlack)
	overflow := color.New(color.Faint, color.FgWhite)
	inMonth := color.New(color.FgWhite)
	today := color.New(color.Bold, color.FgHiGreen)

	m := grid.Month.Format("January 2006")
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	title.Fprintf(p.Out, "%s%s\n", strings.Repeat(" ", mid), m)
	header.Fprintln(p.Out, strings.Join(calendar.WeekdayHeaders(grid.WeekStart), " "))

	for _, week := range grid.Weeks() {
		for i, cell := range week {
			style := inMonth
			switch {
			case cell.Date == p.Today:
				style = today
			case !cell.InMonth:
				style = overflow
			}
			style.Fprintf(p.Out, "%2d", cell.Date.Day)
			if i < len(week)-1 {
				fmt.Fprint(p.Out, " ")
			}
		}
		fmt.Fprintln(p.Out)
	}
}

// PrintCells prints one row per cell: key, weekday, and whether it belongs to the month
func (p *MonthPrinter) PrintCells(grid calendar.Grid) {
	bold := color.New(color.Bold).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Date"), bold("Day"), bold("Week"), bold("In month"))
	for i, cell := range grid.Cells {
		tbl.AddRow(cell.Date.Key(), cell.Date.Weekday().String()[:3], i/calendar.DaysPerWeek+1, cell.InMonth)
	}
	fmt.Fprintln(p.Out, tbl)
}
