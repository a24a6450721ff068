package bagholder

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DecodePrices reads the symbol→reference-price map used for unrealized P&L.
//
// The format is a JSONL file where each line is an object with a 'symbol'
// property, a 'price' number, and an optional 'currency' (default USD).
// Prices are a point-in-time mark supplied by the caller, not a live feed.
func DecodePrices(r io.Reader) (map[string]Money, error) {
	type jprice struct {
		Symbol   string          `json:"symbol"`
		Price    decimal.Decimal `json:"price"`
		Currency string          `json:"currency"`
	}

	prices := make(map[string]Money)
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var jp jprice
		if err := json.Unmarshal([]byte(text), &jp); err != nil {
			return nil, fmt.Errorf("cannot parse price on line %d: %q: %w", line, text, err)
		}
		symbol := strings.ToUpper(strings.TrimSpace(jp.Symbol))
		if symbol == "" {
			return nil, fmt.Errorf("missing symbol on line %d: %q", line, text)
		}
		currency := jp.Currency
		if currency == "" {
			currency = "USD"
		}
		prices[symbol] = M(jp.Price, currency)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read prices: %w", err)
	}
	return prices, nil
}

// ExtractQuote pulls a single price out of an arbitrary JSON document (a
// broker or quote-site export) using a jsonpath query.
func ExtractQuote(doc []byte, path string) (float64, error) {
	var jobj any
	if err := json.Unmarshal(doc, &jobj); err != nil {
		return 0, fmt.Errorf("invalid quote document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error evaluating quote path %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		// sometimes quote APIs return the value as a string
		sval, ok := jval.(string)
		if !ok {
			return 0, fmt.Errorf("quote path %q: value %v is neither a number nor a string", path, jval)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return 0, fmt.Errorf("quote path %q: invalid string value %q: %w", path, sval, err)
		}
	}
	if val == 0 {
		return 0, fmt.Errorf("quote path %q: empty quote", path)
	}
	return val, nil
}
