// Package cmd implements the CLI application to track trading P&L.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/google/subcommands"

	bagholder "github.com/Trogdorts/BagHolder"
	"github.com/Trogdorts/BagHolder/store"
)

// Commands lists every subcommand; a main package registers them all.
var Commands = []subcommands.Command{
	&importCmd{},
	&exportCmd{},
	&calendarCmd{},
	&positionsCmd{},
	&gainsCmd{},
	&recomputeCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (defaults to bagholder.yaml in the working directory)")

// LoadConfig loads and validates the application configuration.
func LoadConfig() (*bagholder.Config, error) {
	return bagholder.LoadConfig(*configFile)
}

// OpenStore opens the configured trade database.
func OpenStore(cfg *bagholder.Config) (*store.Store, error) {
	return store.Open(cfg.Database)
}

// LoadPrices reads the configured reference-price file. A missing file is an
// empty price map: positions then show up as unpriced, never as errors.
func LoadPrices(cfg *bagholder.Config) (map[string]bagholder.Money, error) {
	f, err := os.Open(cfg.Prices)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]bagholder.Money{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bagholder.DecodePrices(f)
}

// computeFromStore replays the full stored history through the engine.
func computeFromStore(db *store.Store) (*bagholder.Result, error) {
	trades, err := db.Trades()
	if err != nil {
		return nil, err
	}
	return bagholder.Compute(trades)
}
