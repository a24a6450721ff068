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

type positionsCmd struct{}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display open positions and unrealized P&L" }
func (*positionsCmd) Usage() string {
	return `bh positions

  Replays the trade history and displays what is still open, marked against
  the reference prices. Symbols with no reference price are listed as
  unpriced and excluded from the total.

`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	prices, err := LoadPrices(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading prices: %v\n", err)
		return subcommands.ExitFailure
	}

	report := bagholder.Unrealized(result.Positions, prices, bagholder.Today())
	printMarkdown(renderer.PositionsMarkdown(report))
	return subcommands.ExitSuccess
}
