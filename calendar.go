package bagholder

import (
	"sort"
	"time"
)

// DefaultWeekStart is the week-start day used when none is configured.
const DefaultWeekStart = time.Monday

// ParseWeekStart parses a week-start day name. An unknown name is a
// *ConfigurationError, rejected before any computation begins.
func ParseWeekStart(s string) (time.Weekday, error) {
	switch s {
	case "", "monday", "Monday":
		return time.Monday, nil
	case "sunday", "Sunday":
		return time.Sunday, nil
	case "saturday", "Saturday":
		return time.Saturday, nil
	case "tuesday", "Tuesday":
		return time.Tuesday, nil
	case "wednesday", "Wednesday":
		return time.Wednesday, nil
	case "thursday", "Thursday":
		return time.Thursday, nil
	case "friday", "Friday":
		return time.Friday, nil
	default:
		return 0, &ConfigurationError{Setting: "week_start", Value: s, Reason: "not a weekday name"}
	}
}

// DayCell aggregates the realized results attributed to one calendar date.
type DayCell struct {
	Date     Date
	Realized Money
	Matches  int      // number of realized-gain events on that date
	Symbols  []string // sorted set of symbols touched
}

// PeriodCell is the sum of the day cells inside a date range (a week, a
// month, or any ad-hoc span).
type PeriodCell struct {
	From     Date
	To       Date
	Realized Money
	Matches  int
	Symbols  []string
}

// Calendar buckets a realized-gain stream by close date. Week and month
// totals are always sums over the constituent day cells, never recomputed
// from the event stream, so rollups stay additive by construction.
type Calendar struct {
	weekStart time.Weekday
	days      map[Date]*DayCell
}

// NewCalendar aggregates events into day cells. An empty stream is a valid
// calendar whose every cell is zero.
func NewCalendar(events []RealizedGain, weekStart time.Weekday) (*Calendar, error) {
	if weekStart < time.Sunday || weekStart > time.Saturday {
		return nil, &ConfigurationError{Setting: "week_start", Value: weekStart.String(), Reason: "out of range"}
	}
	c := &Calendar{weekStart: weekStart, days: make(map[Date]*DayCell)}
	for _, ev := range events {
		cell, ok := c.days[ev.CloseDate]
		if !ok {
			cell = &DayCell{Date: ev.CloseDate}
			c.days[ev.CloseDate] = cell
		}
		cell.Realized = cell.Realized.Add(ev.Realized())
		cell.Matches++
		cell.Symbols = insertSymbol(cell.Symbols, ev.Symbol)
	}
	return c, nil
}

// WeekStart returns the configured first day of the week.
func (c *Calendar) WeekStart() time.Weekday { return c.weekStart }

// Day returns the cell for one date; absent dates yield a zero cell.
func (c *Calendar) Day(on Date) DayCell {
	if cell, ok := c.days[on]; ok {
		return *cell
	}
	return DayCell{Date: on}
}

// Days returns all non-empty day cells, sorted by date.
func (c *Calendar) Days() []DayCell {
	cells := make([]DayCell, 0, len(c.days))
	for _, cell := range c.days {
		cells = append(cells, *cell)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Date.Before(cells[j].Date) })
	return cells
}

// Range sums the day cells between from and to, inclusive.
func (c *Calendar) Range(from, to Date) PeriodCell {
	cell := PeriodCell{From: from, To: to}
	for on, day := range c.days {
		if on.Before(from) || on.After(to) {
			continue
		}
		cell.Realized = cell.Realized.Add(day.Realized)
		cell.Matches += day.Matches
		for _, s := range day.Symbols {
			cell.Symbols = insertSymbol(cell.Symbols, s)
		}
	}
	return cell
}

// Week returns the cell for the week containing the given date, under the
// configured week start.
func (c *Calendar) Week(on Date) PeriodCell {
	start := on.StartOfWeek(c.weekStart)
	return c.Range(start, start.Add(6))
}

// Month returns the cell for the given calendar month.
func (c *Calendar) Month(year int, month time.Month) PeriodCell {
	first := NewDate(year, month, 1)
	return c.Range(first, first.EndOfMonth())
}

// insertSymbol keeps a small sorted set of symbols without duplicates.
func insertSymbol(set []string, symbol string) []string {
	i := sort.SearchStrings(set, symbol)
	if i < len(set) && set[i] == symbol {
		return set
	}
	set = append(set, "")
	copy(set[i+1:], set[i:])
	set[i] = symbol
	return set
}

// UnrealizedEntry is the mark-to-reference result for one open position. A
// position whose symbol has no reference price is reported with
// PriceMissing set; its Unrealized value is meaningless and must not be
// folded into totals.
type UnrealizedEntry struct {
	Position     Position
	Price        Money
	Unrealized   Money
	PriceMissing bool
}

// UnrealizedReport holds per-symbol unrealized P&L as of a reference date.
// It is reported apart from realized cells: open inventory is marked "as of
// today", never attributed to a past close date.
type UnrealizedReport struct {
	AsOf    Date
	Entries []UnrealizedEntry // sorted by symbol
	Total   Money             // sum over priced entries only
	Missing []string          // symbols with no reference price
}

// Unrealized marks every open position against the reference-price map.
// Symbols absent from the map are surfaced in Missing rather than silently
// valued at zero.
func Unrealized(positions map[string]Position, prices map[string]Money, asOf Date) *UnrealizedReport {
	report := &UnrealizedReport{AsOf: asOf}
	symbols := make([]string, 0, len(positions))
	for symbol := range positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	for _, symbol := range symbols {
		position := positions[symbol]
		price, ok := prices[symbol]
		if !ok {
			report.Entries = append(report.Entries, UnrealizedEntry{Position: position, PriceMissing: true})
			report.Missing = append(report.Missing, symbol)
			continue
		}
		gain := position.Unrealized(price)
		report.Entries = append(report.Entries, UnrealizedEntry{Position: position, Price: price, Unrealized: gain})
		report.Total = report.Total.Add(gain)
	}
	return report
}
