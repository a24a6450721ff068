package bagholder

import "time"

// MonthReport is the calendar page for one month: the month laid out in full
// weeks (padded with out-of-month days), each day carrying its realized
// total, plus week rows, the month total, and the unrealized standing of the
// open positions.
type MonthReport struct {
	Year       int
	Month      time.Month
	WeekStart  time.Weekday
	Weeks      []WeekRow
	MonthTotal PeriodCell
	Unrealized *UnrealizedReport
}

// WeekRow is one visual calendar row: exactly seven days, with a total over
// the in-month days only.
type WeekRow struct {
	Days  []MonthDay
	Total Money
}

// MonthDay is one cell of the grid. Out-of-month padding days carry their
// real cell data but are flagged so renderers can dim them and totals can
// skip them.
type MonthDay struct {
	Date    Date
	InMonth bool
	Cell    DayCell
}

// MonthReport lays out the given month as a week grid. The unrealized report
// may be nil when the caller does not want open positions folded in.
func (c *Calendar) MonthReport(year int, month time.Month, unrealized *UnrealizedReport) *MonthReport {
	report := &MonthReport{
		Year:       year,
		Month:      month,
		WeekStart:  c.weekStart,
		MonthTotal: c.Month(year, month),
		Unrealized: unrealized,
	}

	first := NewDate(year, month, 1)
	last := first.EndOfMonth()
	for cursor := first.StartOfWeek(c.weekStart); !cursor.After(last); cursor = cursor.Add(7) {
		row := WeekRow{Days: make([]MonthDay, 0, 7)}
		for i := 0; i < 7; i++ {
			on := cursor.Add(i)
			cell := c.Day(on)
			inMonth := on.Month() == month && on.Year() == year
			if inMonth {
				row.Total = row.Total.Add(cell.Realized)
			}
			row.Days = append(row.Days, MonthDay{Date: on, InMonth: inMonth, Cell: cell})
		}
		report.Weeks = append(report.Weeks, row)
	}
	return report
}
