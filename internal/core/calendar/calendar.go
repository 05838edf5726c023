// Package calendar lays out month grids and day ranges for the daily planner.
package calendar

import "time"

// Week is one grid row. A zero day means a blank cell outside the month.
type Week [7]int

// Grid is a Monday-first month layout.
type Grid struct {
	Year       int
	Month      time.Month
	LeadBlanks int
	Days       int
	Weeks      []Week
}

// Cells returns the total number of cells, blanks included.
func (g Grid) Cells() int {
	return len(g.Weeks) * 7
}

// LeadBlanks returns the Monday-first weekday index of day 1 of the month.
func LeadBlanks(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return (int(first.Weekday()) + 6) % 7
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid lays out the month. Cells before day 1 and after the last day are
// blank; the grid never spills into neighbouring months.
func MonthGrid(year int, month time.Month) Grid {
	return layout(year, month, LeadBlanks(year, month), DaysIn(year, month))
}

func layout(year int, month time.Month, lead, days int) Grid {
	rows := (lead + days + 6) / 7
	g := Grid{Year: year, Month: month, LeadBlanks: lead, Days: days, Weeks: make([]Week, rows)}
	for d := 1; d <= days; d++ {
		slot := lead + d - 1
		g.Weeks[slot/7][slot%7] = d
	}
	return g
}

// DayBounds returns the first and last instant of the day containing t, in
// t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}

// DefaultSlot is the slot proposed for a new entry on day: 09:00 to 10:00.
func DefaultSlot(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 9, 0, 0, 0, day.Location())
	return start, start.Add(time.Hour)
}
