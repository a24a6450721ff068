package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	bagholder "github.com/Trogdorts/BagHolder"
	"github.com/Trogdorts/BagHolder/renderer"
)

type gainsCmd struct {
	period string
	date   string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "display realized P&L for a day, week or month" }
func (*gainsCmd) Usage() string {
	return `bh gains [-period <day|week|month>] [-d <date>]

  Sums the realized P&L of the bucket containing the given date.

Usage Examples:
# Today's realized P&L.
$ bh gains

# The week of July 4th, 2025.
$ bh gains -period week -d 2025-07-04

`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "day", "Aggregation bucket: day, week or month")
	f.StringVar(&c.date, "d", "", "Date inside the bucket (defaults to today)")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := bagholder.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on := bagholder.Today()
	if c.date != "" {
		if on, err = bagholder.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
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

	var cell bagholder.PeriodCell
	switch period {
	case bagholder.Daily:
		cell = cal.Range(on, on)
	case bagholder.Weekly:
		cell = cal.Week(on)
	case bagholder.Monthly:
		cell = cal.Month(on.Year(), on.Month())
	}
	printMarkdown(renderer.PeriodMarkdown(period, cell))
	return subcommands.ExitSuccess
}
