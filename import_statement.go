package bagholder

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/unicode"
)

// Shared plumbing for broker statement importers. Exports come in several
// encodings and with wildly inconsistent headers; everything is normalized
// before the per-broker logic looks at it.

// decodeStatementText decodes a raw statement export, handling the UTF-16
// and BOM-prefixed files some broker sites produce.
func decodeStatementText(content []byte) string {
	if len(content) >= 2 {
		leBOM := content[0] == 0xFF && content[1] == 0xFE
		beBOM := content[0] == 0xFE && content[1] == 0xFF
		if leBOM || beBOM {
			dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
			if out, err := dec.Bytes(content); err == nil {
				return string(out)
			}
		}
	}
	return string(bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF}))
}

var nonAlnumRE = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeHeader lowercases a column label and squashes punctuation, so
// "Fees & Comm" and "fees_comm" meet in the middle.
func normalizeHeader(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.ReplaceAll(label, "#", "number")
	label = nonAlnumRE.ReplaceAllString(label, "_")
	return strings.Trim(label, "_")
}

var symbolRE = regexp.MustCompile(`[^A-Z0-9.]+`)

// sanitizeSymbol keeps the leading ticker out of a symbol-or-description cell.
func sanitizeSymbol(value string) string {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(value)))
	if len(fields) == 0 {
		return ""
	}
	return symbolRE.ReplaceAllString(fields[0], "")
}

// parseStatementNumber parses the numeric formats statements use: currency
// signs, thousands separators, and accounting-style parentheses for
// negatives. Placeholder cells ("--", "~") report ok=false.
func parseStatementNumber(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	switch text {
	case "", "~", "-", "--":
		return decimal.Decimal{}, false
	}
	text = strings.ReplaceAll(text, "$", "")
	text = strings.ReplaceAll(text, ",", "")
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		text = "-" + text[1:len(text)-1]
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

var statementDateFormats = []string{
	"1/2/2006",
	"1/2/06",
	"2006-1-2",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-1-2 15:04:05",
}

// parseStatementDate tries the date shapes brokers emit, ignoring any
// trailing timezone tag.
func parseStatementDate(text string) (Date, bool) {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, " as of "); i >= 0 {
		text = text[:i]
	}
	text = tzTagRE.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(strings.ReplaceAll(text, "T", " ")), " ")
	for _, format := range statementDateFormats {
		if on, err := parseDateAs(text, format); err == nil {
			return on, true
		}
	}
	return Date{}, false
}

var tzTagRE = regexp.MustCompile(`(?i)\b(ET|EST|EDT|CST|CDT|PST|PDT|MST|MDT|UTC|GMT)\b`)

// statementAmount derives the signed net cash effect of a trade when the
// statement omits the amount column: fees always work against the trader.
func statementAmount(action Action, quantity Quantity, price, fee Money) Money {
	gross := price.Mul(quantity)
	if action.buySide() {
		return gross.Add(fee.Abs()).Neg()
	}
	return gross.Sub(fee.Abs())
}
