package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"calnote/internal/calendar"
	"calnote/internal/printers"
)

// gridOptions holds the flags of `calnote grid`
type gridOptions struct {
	offset int
	cells  bool
}

func addGrid(topLevel *cobra.Command, root *rootOptions) {
	opts := &gridOptions{}

	cmd := &cobra.Command{
		Use:   "grid [YYYY-MM]",
		Short: "Print a month grid.",
		Long: `Print the grid for a month, padded out to whole weeks. Without an argument
the current month is shown. --offset steps the month forward or back and stops
at the configured date bounds.`,
		Example: `
calnote grid
calnote grid 2024-02 --week-start monday
calnote grid --offset -3
calnote grid 2024-03 --cells
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}

			today := calendar.Today()
			calc := root.cfg.Calculator()
			month, err := resolveMonth(calc, today, arg, opts.offset, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			p := printers.NewMonthPrinter(cmd.OutOrStdout(), today)
			grid := calc.MonthGrid(month)
			if opts.cells {
				p.PrintCells(grid)
				return nil
			}
			p.PrintMonth(grid)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.offset, "offset", 0, "Step this many months from the chosen month (negative steps back)")
	cmd.Flags().BoolVar(&opts.cells, "cells", false, "Print one row per cell instead of the grid")

	topLevel.AddCommand(cmd)
}

// parseMonth parses YYYY-MM; an empty string means the month of today
func parseMonth(s string, today calendar.Date) (calendar.Date, error) {
	if s == "" {
		return today, nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return calendar.New(t.Year(), t.Month(), 1), nil
}

// resolveMonth returns the first day of the month to print. The starting month
// must lie within the bounds; offset steps stop at the first clamped step,
// which is reported on warn.
func resolveMonth(calc calendar.Calculator, today calendar.Date, arg string, offset int, warn io.Writer) (calendar.Date, error) {
	month, err := parseMonth(arg, today)
	if err != nil {
		return calendar.Date{}, err
	}
	if arg == "" {
		month = calc.ClampMonth(month)
	} else if !calc.Bounds.ContainsMonth(month) {
		return calendar.Date{}, fmt.Errorf("month %s is outside %s..%s",
			month.Format("2006-01"), calc.Bounds.Min.Format("2006-01"), calc.Bounds.Max.Format("2006-01"))
	}

	direction := 1
	steps := offset
	if offset < 0 {
		direction = -1
		steps = -offset
	}
	for i := 0; i < steps; i++ {
		next, ok := calc.StepMonth(month, direction)
		if !ok {
			fmt.Fprintln(warn, color.YellowString("Stopped at %s after %d of %d steps: date bounds reached",
				month.Format("2006-01"), i, steps))
			break
		}
		month = next
	}
	return month.FirstOfMonth(), nil
}
