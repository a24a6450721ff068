package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	bagholder "github.com/Trogdorts/BagHolder"
	"github.com/Trogdorts/BagHolder/renderer"
)

type calendarCmd struct {
	month string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display the monthly P&L calendar" }
func (*calendarCmd) Usage() string {
	return `bh calendar [-m <yyyy-mm>]

  Displays one month as a calendar grid: each day's realized P&L, week
  totals, the month total, and the unrealized standing of open positions.

Usage Examples:
# This month.
$ bh calendar

# July 2025.
$ bh calendar -m 2025-07

`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to display as yyyy-mm (defaults to the current month)")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year, month, err := parseMonth(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	db, err := OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	result, err := computeFromStore(db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cal, err := bagholder.NewCalendar(result.Events, cfg.WeekStartDay())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var unrealized *bagholder.UnrealizedReport
	if len(result.Positions) > 0 {
		prices, err := LoadPrices(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading prices: %v\n", err)
			return subcommands.ExitFailure
		}
		unrealized = bagholder.Unrealized(result.Positions, prices, bagholder.Today())
	}

	report := cal.MonthReport(year, month, unrealized)
	printMarkdown(renderer.CalendarMarkdown(report))
	return subcommands.ExitSuccess
}

// parseMonth parses a yyyy-mm month label, defaulting to the current month.
func parseMonth(s string) (int, time.Month, error) {
	if s == "" {
		today := bagholder.Today()
		return today.Year(), today.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want yyyy-mm)", s)
	}
	return t.Year(), t.Month(), nil
}
