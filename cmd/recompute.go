package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	bagholder "github.com/Trogdorts/BagHolder"
)

type recomputeCmd struct{}

func (*recomputeCmd) Name() string     { return "recompute" }
func (*recomputeCmd) Synopsis() string { return "replay the history and refresh the daily summaries" }
func (*recomputeCmd) Usage() string {
	return `bh recompute

  Replays the full trade history and rewrites the cached daily summaries
  in the database. Run it after importing statements.

`
}

func (c *recomputeCmd) SetFlags(f *flag.FlagSet) {}

func (c *recomputeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	cells := cal.Days()
	if err := db.UpsertDailySummaries(cells, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing summaries: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recomputed %d realized events into %d daily summaries.\n", len(result.Events), len(cells))
	return subcommands.ExitSuccess
}
