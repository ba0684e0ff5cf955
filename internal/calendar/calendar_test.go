package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid_March2024(t *testing.T) {
	calc := NewCalculator(DefaultBounds(), time.Sunday)

	grid := calc.MonthGrid(New(2024, time.March, 15))

	require.Len(t, grid.Cells, 42)
	assert.Equal(t, New(2024, time.February, 25), grid.First())
	assert.Equal(t, New(2024, time.April, 6), grid.Last())
	assert.Len(t, grid.Weeks(), 6)
	assert.Equal(t, New(2024, time.March, 1), grid.Month)
}

func TestMonthGrid_Properties(t *testing.T) {
	weekStarts := []time.Weekday{time.Sunday, time.Monday, time.Saturday}

	for _, ws := range weekStarts {
		for year := 1970; year <= 2200; year += 23 {
			for month := time.January; month <= time.December; month++ {
				ref := New(year, month, 17)
				grid := MonthGrid(ref, ws)

				require.Zero(t, len(grid.Cells)%DaysPerWeek, "%s week start %s", ref, ws)
				assert.Equal(t, ws, grid.First().Weekday())

				inMonth := 0
				for i, cell := range grid.Cells {
					assert.Equal(t, cell.Date.SameMonth(ref), cell.InMonth, "cell %s", cell.Date)
					if cell.InMonth {
						inMonth++
					}
					if i > 0 {
						assert.Equal(t, grid.Cells[i-1].Date.AddDays(1), cell.Date)
					}
				}
				assert.Equal(t, ref.LastOfMonth().Day, inMonth, "%s should contain its whole month", ref)
				// no fully overflowing rows
				for _, week := range grid.Weeks() {
					assert.True(t, week[0].InMonth || week[DaysPerWeek-1].InMonth)
				}
			}
		}
	}
}

func TestMonthGrid_FebruaryFourRows(t *testing.T) {
	// Feb 2015 starts on a Sunday and has 28 days
	grid := MonthGrid(New(2015, time.February, 1), time.Sunday)
	assert.Len(t, grid.Cells, 28)
	for _, cell := range grid.Cells {
		assert.True(t, cell.InMonth)
	}
}

func TestMonthGrid_MondayStart(t *testing.T) {
	grid := MonthGrid(New(2024, time.March, 1), time.Monday)
	assert.Equal(t, New(2024, time.February, 26), grid.First())
	assert.Equal(t, New(2024, time.March, 31), grid.Last())
	assert.Len(t, grid.Cells, 35)
}

func TestGridIndex(t *testing.T) {
	grid := MonthGrid(New(2024, time.March, 1), time.Sunday)
	assert.Equal(t, 0, grid.Index(New(2024, time.February, 25)))
	assert.Equal(t, 5, grid.Index(New(2024, time.March, 1)))
	assert.Equal(t, 41, grid.Index(New(2024, time.April, 6)))
	assert.Equal(t, -1, grid.Index(New(2024, time.April, 7)))
}

func TestStepMonth(t *testing.T) {
	calc := NewCalculator(DefaultBounds(), time.Sunday)

	next, ok := calc.StepMonth(New(2024, time.March, 10), 1)
	assert.True(t, ok)
	assert.Equal(t, New(2024, time.April, 1), next)

	prev, ok := calc.StepMonth(New(2024, time.January, 10), -1)
	assert.True(t, ok)
	assert.Equal(t, New(2023, time.December, 1), prev)

	same, ok := calc.StepMonth(New(2024, time.January, 10), 0)
	assert.False(t, ok)
	assert.Equal(t, New(2024, time.January, 10), same)
}

func TestStepMonth_LongMonthEnd(t *testing.T) {
	calc := NewCalculator(DefaultBounds(), time.Sunday)

	next, ok := calc.StepMonth(New(2024, time.January, 31), 1)
	require.True(t, ok)
	assert.Equal(t, New(2024, time.February, 1), next)

	back, ok := calc.StepMonth(next, -1)
	require.True(t, ok)
	assert.Equal(t, New(2024, time.January, 1), back)
}

func TestAddMonths_ClampsDay(t *testing.T) {
	assert.Equal(t, New(2024, time.February, 29), New(2024, time.January, 31).AddMonths(1))
	assert.Equal(t, New(2023, time.February, 28), New(2023, time.March, 31).AddMonths(-1))
	assert.Equal(t, New(2025, time.January, 31), New(2024, time.December, 31).AddMonths(1))
}

func TestStepMonth_Inverse(t *testing.T) {
	calc := NewCalculator(DefaultBounds(), time.Sunday)

	for year := 1971; year < 2199; year += 7 {
		for month := time.January; month <= time.December; month++ {
			last := New(year, month, 1).LastOfMonth().Day
			for day := 1; day <= last; day++ {
				m := New(year, month, day)
				fwd, ok := calc.StepMonth(m, 1)
				require.True(t, ok)
				back, ok := calc.StepMonth(fwd, -1)
				require.True(t, ok)
				require.Equal(t, m.FirstOfMonth(), back, "step from %s", m)
				require.Equal(t, back, calc.MonthGrid(back).Month)
			}
		}
	}
}

func TestStepMonth_Bounds(t *testing.T) {
	calc := NewCalculator(DefaultBounds(), time.Sunday)

	maxMonth := New(2200, time.January, 1)
	got, ok := calc.StepMonth(maxMonth, 1)
	assert.False(t, ok)
	assert.Equal(t, maxMonth, got)

	minMonth := New(1970, time.January, 20)
	got, ok = calc.StepMonth(minMonth, -1)
	assert.False(t, ok)
	assert.Equal(t, minMonth, got)

	// the whole of the boundary months is reachable
	got, ok = calc.StepMonth(New(2199, time.December, 31), 1)
	assert.True(t, ok)
	assert.Equal(t, New(2200, time.January, 1), got)
}

func TestClampMonth(t *testing.T) {
	calc := NewCalculator(Bounds{Min: New(2000, time.June, 1), Max: New(2001, time.June, 1)}, time.Sunday)

	assert.Equal(t, New(2000, time.June, 1), calc.ClampMonth(New(1999, time.March, 3)))
	assert.Equal(t, New(2001, time.June, 1), calc.ClampMonth(New(2030, time.March, 3)))
	assert.Equal(t, New(2000, time.June, 30), calc.ClampMonth(New(2000, time.June, 30)))
}

func TestBoundsValidate(t *testing.T) {
	assert.NoError(t, DefaultBounds().Validate())

	err := Bounds{Min: New(2020, time.January, 2), Max: New(2020, time.January, 1)}.Validate()
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestDateKey(t *testing.T) {
	tests := []struct {
		date Date
		key  string
	}{
		{New(2024, time.March, 5), "2024-03-05"},
		{New(1970, time.January, 1), "1970-01-01"},
		{New(2024, time.February, 30), "2024-03-01"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.date.Key())
	}
}

func TestParseKey(t *testing.T) {
	d, err := ParseKey("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, New(2024, time.March, 15), d)

	for _, bad := range []string{"", "2024-3-15", "2024-02-30", "15.03.2024"} {
		_, err := ParseKey(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestDateCompare(t *testing.T) {
	a := New(2024, time.March, 5)
	b := New(2024, time.March, 6)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(New(2024, time.March, 5)))
	assert.Equal(t, 0, a.CompareMonth(b))
	assert.Equal(t, -1, a.CompareMonth(New(2024, time.April, 1)))
}

func TestFromTime_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, time.March, 1, 2, 0, 0, 0, loc)
	assert.Equal(t, New(2024, time.March, 1), FromTime(ts))
}

func TestWeekdayHeaders(t *testing.T) {
	assert.Equal(t, []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}, WeekdayHeaders(time.Sunday))
	assert.Equal(t, []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, WeekdayHeaders(time.Monday))
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input string
		want  time.Weekday
	}{
		{"sunday", time.Sunday},
		{"Monday", time.Monday},
		{"tu", time.Tuesday},
		{" sat ", time.Saturday},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "s", "t", "funday"} {
		_, err := ParseWeekday(bad)
		assert.Error(t, err, bad)
	}
}
