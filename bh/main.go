package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/Trogdorts/BagHolder/cmd"
)

func main() {
	// Completion exits the process when invoked by the shell's hook.
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["import"].Flags = map[string]complete.Predictor{
		"broker": predict.Set{"thinkorswim", "schwab", "jsonl"},
		"f":      predict.Files("*"),
	}
	sub["export"].Flags = map[string]complete.Predictor{
		"o": predict.Files("*.jsonl"),
	}
	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
	}
	root.Complete("bh")
}
