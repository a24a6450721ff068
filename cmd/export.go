package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	bagholder "github.com/Trogdorts/BagHolder"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the trade history as JSONL" }
func (*exportCmd) Usage() string {
	return `bh export [-o <file>]

  Writes the full trade history, oldest first, one JSON object per line.
  The output round-trips through "bh import -broker jsonl".

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	trades, err := db.Trades()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading trades: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}
	if err := bagholder.EncodeTrades(w, trades); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing trades: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
