package renderer

import (
	"strings"
	"testing"
	"time"

	bagholder "github.com/Trogdorts/BagHolder"
)

func testCalendar(t *testing.T, weekStart time.Weekday, events []bagholder.RealizedGain) *bagholder.Calendar {
	t.Helper()
	cal, err := bagholder.NewCalendar(events, weekStart)
	if err != nil {
		t.Fatalf("NewCalendar() error = %v", err)
	}
	return cal
}

func TestCalendarMarkdown(t *testing.T) {
	events := []bagholder.RealizedGain{
		{
			Symbol:    "AAPL",
			CloseDate: bagholder.NewDate(2025, time.July, 7),
			Quantity:  bagholder.Q(10),
			Proceeds:  bagholder.USD(1100),
			CostBasis: bagholder.USD(1000),
		},
	}
	cal := testCalendar(t, time.Monday, events)
	report := cal.MonthReport(2025, time.July, nil)

	out := CalendarMarkdown(report)

	if !strings.Contains(out, "# July 2025") {
		t.Errorf("output has no month title:\n%s", out)
	}
	// The header row starts on the configured week start.
	if !strings.Contains(out, "Mon") || !strings.Contains(out, "Sun") {
		t.Errorf("output has no weekday header:\n%s", out)
	}
	if !strings.Contains(out, "7: +$100.00") {
		t.Errorf("output does not show the day's realized total:\n%s", out)
	}
	if strings.Contains(out, "Open Positions") {
		t.Errorf("output has an open-positions section without an unrealized report:\n%s", out)
	}
}

func TestCalendarMarkdown_WithUnrealized(t *testing.T) {
	cal := testCalendar(t, time.Monday, nil)
	unrealized := &bagholder.UnrealizedReport{
		AsOf: bagholder.NewDate(2025, time.July, 31),
		Entries: []bagholder.UnrealizedEntry{
			{
				Position:   bagholder.Position{Symbol: "AAPL", Side: bagholder.Long, Quantity: bagholder.Q(10), UnitCost: bagholder.USD(100)},
				Price:      bagholder.USD(110),
				Unrealized: bagholder.USD(100),
			},
		},
		Total: bagholder.USD(100),
	}
	out := CalendarMarkdown(cal.MonthReport(2025, time.July, unrealized))

	if !strings.Contains(out, "Open Positions as of 2025-07-31") {
		t.Errorf("output has no open-positions section:\n%s", out)
	}
	if !strings.Contains(out, "AAPL") {
		t.Errorf("output does not list the open position:\n%s", out)
	}
}

func TestPositionsMarkdown(t *testing.T) {
	report := &bagholder.UnrealizedReport{
		AsOf: bagholder.NewDate(2025, time.July, 31),
		Entries: []bagholder.UnrealizedEntry{
			{
				Position:   bagholder.Position{Symbol: "AAPL", Side: bagholder.Long, Quantity: bagholder.Q(10), UnitCost: bagholder.USD(100)},
				Price:      bagholder.USD(110),
				Unrealized: bagholder.USD(100),
			},
			{
				Position:     bagholder.Position{Symbol: "GME", Side: bagholder.Short, Quantity: bagholder.Q(20), UnitCost: bagholder.USD(25)},
				PriceMissing: true,
			},
		},
		Total:   bagholder.USD(100),
		Missing: []string{"GME"},
	}

	out := PositionsMarkdown(report)
	if !strings.Contains(out, "+$100.00") {
		t.Errorf("output has no unrealized total:\n%s", out)
	}
	if !strings.Contains(out, "n/a") {
		t.Errorf("output does not mark the unpriced position:\n%s", out)
	}
	if !strings.Contains(out, "No reference price for: GME") {
		t.Errorf("output does not call out missing prices:\n%s", out)
	}
}

func TestPositionsMarkdown_Empty(t *testing.T) {
	report := &bagholder.UnrealizedReport{AsOf: bagholder.NewDate(2025, time.July, 31)}
	out := PositionsMarkdown(report)
	if !strings.Contains(out, "No open positions.") {
		t.Errorf("output does not state there are no positions:\n%s", out)
	}
}

func TestPeriodMarkdown(t *testing.T) {
	cal := testCalendar(t, time.Monday, []bagholder.RealizedGain{
		{
			Symbol:    "TSLA",
			CloseDate: bagholder.NewDate(2025, time.July, 9),
			Quantity:  bagholder.Q(5),
			Proceeds:  bagholder.USD(900),
			CostBasis: bagholder.USD(1000),
		},
	})
	out := PeriodMarkdown(bagholder.Weekly, cal.Week(bagholder.NewDate(2025, time.July, 9)))

	if !strings.Contains(out, "from 2025-07-07 to 2025-07-13") {
		t.Errorf("output has no week range title:\n%s", out)
	}
	if !strings.Contains(out, "-$100.00") {
		t.Errorf("output has no realized total:\n%s", out)
	}
	if !strings.Contains(out, "TSLA") {
		t.Errorf("output does not list the symbols:\n%s", out)
	}
}
