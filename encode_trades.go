package bagholder

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file handles the trade backup format: a JSONL file, one trade per
// line, human readable and easy to merge. It is the native import/export
// format; broker statements go through the statement importers instead.

// EncodeTrades writes trades to 'w' in the backup format, one JSON object
// per line with a stable key order.
func EncodeTrades(w io.Writer, trades []Trade) error {
	for _, t := range trades {
		var jw jsonObjectWriter
		jw.Append("date", t.Date).
			Append("symbol", t.Symbol).
			Append("action", t.Action).
			Append("quantity", t.Quantity).
			Append("price", t.Price).
			Append("amount", t.Amount)
		line, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode trade %s %s on %s: %w", t.Action, t.Symbol, t.Date, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTrades reads trades from 'r' in the backup format. Every record is
// validated; the first malformed line fails the whole decode so a partial
// history is never returned.
func DecodeTrades(r io.Reader) ([]Trade, error) {
	var trades []Trade
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var t Trade
		if err := json.Unmarshal([]byte(text), &t); err != nil {
			return nil, fmt.Errorf("cannot parse trade on line %d: %q: %w", line, text, err)
		}
		t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("invalid trade on line %d: %w", line, err)
		}
		trades = append(trades, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read trades: %w", err)
	}
	return trades, nil
}
