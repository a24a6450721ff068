package bagholder

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ThinkOrSwim account statements are a patchwork: one file holds several
// sections (cash balances, orders, the trade history) with their own
// headers. The importer scans for any section whose header looks like a
// trade table and collects the rows beneath it.

// tosColumnAliases maps normalized ThinkOrSwim headers to canonical fields.
var tosColumnAliases = map[string]string{
	"trade_date":        "date",
	"trade_date_et":     "date",
	"transaction_date":  "date",
	"date_time":         "date",
	"exec_time":         "date",
	"exec_time_et":      "date",
	"execution_time":    "date",
	"execution_time_et": "date",
	"quantity":          "qty",
	"qty":               "qty",
	"shares":            "qty",
	"trade_quantity":    "qty",
	"filled_quantity":   "qty",
	"instrument":        "symbol",
	"ticker_symbol":     "symbol",
	"underlying":        "symbol",
	"underlying_symbol": "symbol",
	"symbol":            "symbol",
	"side":              "action",
	"type":              "action",
	"trade_type":        "action",
	"transaction_type":  "action",
	"activity":          "action",
	"price":             "price",
	"trade_price":       "price",
	"execution_price":   "price",
	"fill_price":        "price",
	"avg_price":         "price",
	"average_price":     "price",
	"net_price":         "price",
	"amount":            "amount",
	"net_amount":        "amount",
	"trade_amount":      "amount",
	"trade_value":       "amount",
	"gross_amount":      "amount",
	"proceeds":          "amount",
	"fees":              "fee",
	"commissions_fees":  "fee",
	"commission":        "fee",
	"fee":               "fee",
}

// tosActions maps the broker's action codes to engine actions.
var tosActions = map[string]Action{
	"BUY":                 Buy,
	"BOT":                 Buy,
	"BTO":                 Buy,
	"BUY_TO_OPEN":         Buy,
	"BOUGHT":              Buy,
	"BUY_TO_CLOSE":        BuyToCover,
	"BUY_TO_COVER":        BuyToCover,
	"SELL":                Sell,
	"SLD":                 Sell,
	"STC":                 Sell,
	"SELL_TO_CLOSE":       Sell,
	"SOLD":                Sell,
	"SELL_SHORT_TO_CLOSE": Sell,
	"SELL_TO_OPEN":        SellShort,
	"SELL_SHORT":          SellShort,
	"SELL_SHORT_TO_OPEN":  SellShort,
}

func tosResolveAction(text string) (Action, bool) {
	label := normalizeHeader(strings.ReplaceAll(text, "&", "and"))
	label = strings.ToUpper(label)
	if action, ok := tosActions[label]; ok {
		return action, true
	}
	// last-resort substring match, the statement wording drifts between
	// releases.
	switch {
	case strings.Contains(label, "BUY"):
		return Buy, true
	case strings.Contains(label, "SELL"), strings.Contains(label, "SLD"):
		return Sell, true
	}
	return 0, false
}

// ImportThinkOrSwim parses a ThinkOrSwim statement export into normalized
// trade records, sorted by date with the statement's own order preserved
// within a day.
func ImportThinkOrSwim(r io.Reader) ([]Trade, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read statement: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(decodeStatementText(content)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var headers []string // canonical column names of the current trade section
	var trades []Trade
	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read statement line %d: %w", line, err)
		}

		canonical := make([]string, len(row))
		for i, cell := range row {
			normalized := normalizeHeader(cell)
			if alias, ok := tosColumnAliases[normalized]; ok {
				normalized = alias
			}
			canonical[i] = normalized
		}
		if looksLikeTradeHeader(canonical) {
			headers = canonical
			continue
		}
		if headers == nil {
			continue
		}

		t, ok := tosParseRow(headers, row)
		if !ok {
			continue // balances, subtotals, section dividers
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("statement line %d: %w", line, err)
		}
		trades = append(trades, t)
	}

	sort.SliceStable(trades, func(i, j int) bool { return trades[i].Date.Before(trades[j].Date) })
	return trades, nil
}

// looksLikeTradeHeader reports whether a row names the columns a trade table
// needs: a symbol, an action, a quantity, and a price or amount.
func looksLikeTradeHeader(canonical []string) bool {
	seen := make(map[string]bool, len(canonical))
	for _, c := range canonical {
		seen[c] = true
	}
	return seen["symbol"] && seen["action"] && seen["qty"] && (seen["price"] || seen["amount"])
}

func tosParseRow(headers []string, row []string) (Trade, bool) {
	values := make(map[string]string, len(headers))
	for i, cell := range row {
		if i >= len(headers) {
			break
		}
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, taken := values[headers[i]]; !taken {
			values[headers[i]] = cell
		}
	}

	on, ok := parseStatementDate(values["date"])
	if !ok {
		return Trade{}, false
	}
	action, ok := tosResolveAction(values["action"])
	if !ok {
		return Trade{}, false
	}
	symbol := sanitizeSymbol(values["symbol"])
	if symbol == "" {
		return Trade{}, false
	}
	qty, ok := parseStatementNumber(values["qty"])
	if !ok || qty.IsZero() {
		return Trade{}, false
	}
	price, ok := parseStatementNumber(values["price"])
	if !ok {
		return Trade{}, false
	}

	quantity := Q(qty.Abs())
	fee := USD(0)
	if f, ok := parseStatementNumber(values["fee"]); ok {
		fee = USD(f)
	}
	amount := statementAmount(action, quantity, USD(price), fee)
	if a, ok := parseStatementNumber(values["amount"]); ok {
		// the column sign convention varies; the action decides.
		amount = USD(a.Abs())
		if action.buySide() {
			amount = amount.Neg()
		}
	}
	return NewTrade(on, symbol, action, quantity, USD(price), amount), true
}
