package bagholder

import (
	"strings"
	"testing"
	"time"
)

func TestEncodeTrades_RoundTrip(t *testing.T) {
	trades := []Trade{
		testTrade(NewDate(2025, time.July, 1), "AAPL", Buy, 10, 100),
		testTrade(NewDate(2025, time.July, 2), "TSLA", SellShort, 2.5, 200),
		NewTrade(NewDate(2025, time.July, 3), "AAPL", Sell, Q(10), USD(110), USD(1095.5)),
	}

	var b strings.Builder
	if err := EncodeTrades(&b, trades); err != nil {
		t.Fatalf("EncodeTrades() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("encoded %d lines, want 3", len(lines))
	}
	// Keys come out in a stable order, so backups diff cleanly.
	if !strings.HasPrefix(lines[0], `{"date":"2025-07-01","symbol":"AAPL","action":"BUY"`) {
		t.Errorf("unexpected line layout: %s", lines[0])
	}

	back, err := DecodeTrades(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	if len(back) != len(trades) {
		t.Fatalf("decoded %d trades, want %d", len(back), len(trades))
	}
	for i := range trades {
		want, got := trades[i], back[i]
		if got.Date != want.Date || got.Symbol != want.Symbol || got.Action != want.Action ||
			!got.Quantity.Equal(want.Quantity) || !got.Amount.Equal(want.Amount) {
			t.Errorf("trade %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestDecodeTrades_RejectsInvalidLine(t *testing.T) {
	input := `{"date":"2025-07-01","symbol":"AAPL","action":"BUY","quantity":10,"price":{"currency":"USD","amount":100},"amount":{"currency":"USD","amount":-1000}}
{"date":"2025-07-02","symbol":"AAPL","action":"SELL","quantity":-1,"price":{"currency":"USD","amount":110},"amount":{"currency":"USD","amount":110}}`

	_, err := DecodeTrades(strings.NewReader(input))
	if err == nil {
		t.Fatal("DecodeTrades() succeeded on a negative quantity, want error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the offending line", err)
	}
}

func TestDecodeTrades_SkipsBlankLines(t *testing.T) {
	input := "\n{\"date\":\"2025-07-01\",\"symbol\":\"aapl\",\"action\":\"BUY\",\"quantity\":1,\"price\":100,\"amount\":-100}\n\n"
	trades, err := DecodeTrades(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	if len(trades) != 1 {
		t.Fatalf("decoded %d trades, want 1", len(trades))
	}
	if trades[0].Symbol != "AAPL" {
		t.Errorf("Symbol = %q, want AAPL (case normalized)", trades[0].Symbol)
	}
}
