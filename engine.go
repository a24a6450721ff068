package bagholder

import (
	"errors"
	"sort"
)

// Result is the output of one computation run: the realized-gain stream in
// emission order and the open positions left at the end of the history.
type Result struct {
	Events    []RealizedGain
	Positions map[string]Position
}

// Compute drives the matcher over the full trade history in one global pass.
//
// The input order is the processing order: trades are looked up per symbol
// for their ledger but never re-sorted, so the caller's
// chronological-then-insertion order decides every same-date tie-break.
// All state is built fresh per call; the input is never mutated, and calling
// Compute twice on the same history yields identical results.
//
// The first malformed trade aborts the whole run with a
// *MalformedTradeError carrying the record and its index.
func Compute(trades []Trade) (*Result, error) {
	ledgers := make(map[string]*lotLedger)
	events := make([]RealizedGain, 0, len(trades))

	for i, t := range trades {
		if err := t.Validate(); err != nil {
			var malformed *MalformedTradeError
			if errors.As(err, &malformed) {
				malformed.Index = i
			}
			return nil, err
		}
		ledger, ok := ledgers[t.Symbol]
		if !ok {
			ledger = newLotLedger(t.Symbol)
			ledgers[t.Symbol] = ledger
		}
		events = append(events, ledger.apply(t)...)
	}

	positions := make(map[string]Position)
	for symbol, ledger := range ledgers {
		if !ledger.empty() {
			positions[symbol] = ledger.snapshot()
		}
	}
	return &Result{Events: events, Positions: positions}, nil
}

// OpenPositions returns the snapshot map as a slice sorted by symbol.
func (r *Result) OpenPositions() []Position {
	positions := make([]Position, 0, len(r.Positions))
	for _, p := range r.Positions {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Symbol < positions[j].Symbol })
	return positions
}
