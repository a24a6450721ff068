package bagholder

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Charles Schwab transaction history exports are a single table with a fixed
// header row, but the site emits them in several encodings and the header
// wording changes between account types.

var schwabHeaderAliases = map[string]string{
	"date":               "date",
	"trade_date":         "date",
	"action":             "action",
	"transaction":        "action",
	"transaction_type":   "action",
	"type":               "action",
	"symbol":             "symbol",
	"ticker":             "symbol",
	"symbol_description": "symbol_description",
	"description":        "description",
	"quantity":           "qty",
	"shares":             "qty",
	"price":              "price",
	"trade_price":        "price",
	"amount":             "amount",
	"total":              "amount",
	"value":              "amount",
	"fees":               "fee",
	"fees_comm":          "fee",
	"fees_and_comm":      "fee",
	"fee":                "fee",
}

var schwabActions = map[string]Action{
	"BUY":             Buy,
	"REINVEST SHARES": Buy,
	"BUY TO COVER":    BuyToCover,
	"SELL":            Sell,
	"SELL SHORT":      SellShort,
}

// schwabIgnoredActions are cash activity rows that are not trades.
var schwabIgnoredActions = map[string]bool{
	"BANK INTEREST":       true,
	"CASH DIVIDEND":       true,
	"QUAL DIV REINVEST":   true,
	"QUALIFIED DIVIDEND":  true,
	"REINVEST DIVIDEND":   true,
	"MONEYLINK TRANSFER":  true,
	"WIRE FUNDS":          true,
	"JOURNAL":             true,
	"SERVICE FEE":         true,
	"FOREIGN TAX PAID":    true,
	"ADR MGMT FEE":        true,
	"CREDIT INTEREST":     true,
	"MARGIN INTEREST":     true,
	"STOCK PLAN ACTIVITY": true,
}

func schwabActionKey(text string) string {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(text)))
	return strings.Join(fields, " ")
}

// ImportSchwab parses a Charles Schwab transaction history export into
// normalized trade records, oldest first. Cash activity rows (dividends,
// interest, transfers) are not trades and are dropped.
func ImportSchwab(r io.Reader) ([]Trade, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read statement: %w", err)
	}
	text := decodeStatementText(content)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headerRow, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read statement header: %w", err)
	}
	headers := make([]string, len(headerRow))
	for i, cell := range headerRow {
		normalized := normalizeHeader(cell)
		if alias, ok := schwabHeaderAliases[normalized]; ok {
			normalized = alias
		}
		headers[i] = normalized
	}

	var trades []Trade
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read statement line %d: %w", line, err)
		}

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

		key := schwabActionKey(values["action"])
		if key == "" || schwabIgnoredActions[key] {
			continue
		}
		action, ok := schwabActions[key]
		if !ok {
			continue // options assignments, expirations, name changes...
		}

		on, ok := parseStatementDate(values["date"])
		if !ok {
			continue
		}
		symbol := sanitizeSymbol(values["symbol"])
		if symbol == "" {
			symbol = sanitizeSymbol(values["symbol_description"])
		}
		if symbol == "" {
			continue
		}
		qty, ok := parseStatementNumber(values["qty"])
		if !ok || qty.IsZero() {
			continue
		}
		price, ok := parseStatementNumber(values["price"])
		if !ok {
			continue
		}

		quantity := Q(qty.Abs())
		fee := USD(0)
		if f, ok := parseStatementNumber(values["fee"]); ok {
			fee = USD(f)
		}
		amount := statementAmount(action, quantity, USD(price), fee)
		if a, ok := parseStatementNumber(values["amount"]); ok {
			amount = USD(a.Abs())
			if action.buySide() {
				amount = amount.Neg()
			}
		}

		t := NewTrade(on, symbol, action, quantity, USD(price), amount)
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("statement line %d: %w", line, err)
		}
		trades = append(trades, t)
	}

	// Schwab lists newest first; the engine wants oldest first, ties kept in
	// statement order.
	sort.SliceStable(trades, func(i, j int) bool { return trades[i].Date.Before(trades[j].Date) })
	return trades, nil
}
