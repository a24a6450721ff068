package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	bagholder "github.com/Trogdorts/BagHolder"
)

type importCmd struct {
	broker string
	file   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import trades from a broker statement" }
func (*importCmd) Usage() string {
	return `bh import -broker <thinkorswim|schwab|jsonl> -f <file>

  Parses a broker statement and appends its trades to the database.
  A statement import is all-or-nothing: the first unparseable trade row
  aborts the import and nothing is written.

Usage Examples:
# Import a ThinkOrSwim account statement.
$ bh import -broker thinkorswim -f statement.csv

# Restore a JSONL backup.
$ bh import -broker jsonl -f trades.jsonl

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.broker, "broker", "", "Statement format: thinkorswim, schwab or jsonl")
	f.StringVar(&c.file, "f", "", "Path to the statement file")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	var trades []bagholder.Trade
	switch c.broker {
	case "thinkorswim":
		trades, err = bagholder.ImportThinkOrSwim(in)
	case "schwab":
		trades, err = bagholder.ImportSchwab(in)
	case "jsonl":
		trades, err = bagholder.DecodeTrades(in)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown broker %q (want thinkorswim, schwab or jsonl)\n", c.broker)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	if len(trades) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no trades found in %q.\n", c.file)
		return subcommands.ExitSuccess
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

	if err := db.AddTrades(trades); err != nil {
		fmt.Fprintf(os.Stderr, "Error storing trades: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d trades from %s into %s\n", len(trades), c.file, cfg.Database)
	return subcommands.ExitSuccess
}
