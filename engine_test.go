package bagholder

import (
	"errors"
	"testing"
	"time"
)

func TestCompute_EmptyHistory(t *testing.T) {
	result, err := Compute(nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(result.Events) != 0 {
		t.Errorf("Events = %d, want 0", len(result.Events))
	}
	if len(result.Positions) != 0 {
		t.Errorf("Positions = %d, want 0", len(result.Positions))
	}
}

func TestCompute_ZeroNetRoundTrip(t *testing.T) {
	on := NewDate(2025, time.July, 1)
	trades := []Trade{
		testTrade(on, "AAPL", Buy, 10, 100),
		testTrade(on.Add(1), "AAPL", Sell, 10, 100),
	}
	result, err := Compute(trades)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(result.Events) != 1 {
		t.Fatalf("Events = %d, want 1", len(result.Events))
	}
	if !result.Events[0].Realized().IsZero() {
		t.Errorf("Realized() = %s, want zero", result.Events[0].Realized())
	}
	if len(result.Positions) != 0 {
		t.Errorf("Positions = %d, want 0 after a flat round trip", len(result.Positions))
	}
}

func TestCompute_CrossSymbolInterleaving(t *testing.T) {
	// Each symbol's ledger is independent: interleaved trades match only
	// against their own symbol.
	on := NewDate(2025, time.July, 1)
	trades := []Trade{
		testTrade(on, "AAPL", Buy, 10, 100),
		testTrade(on, "MSFT", Buy, 5, 300),
		testTrade(on.Add(1), "AAPL", Sell, 10, 110),
		testTrade(on.Add(2), "MSFT", Sell, 5, 290),
	}
	result, err := Compute(trades)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(result.Events) != 2 {
		t.Fatalf("Events = %d, want 2", len(result.Events))
	}
	byClose := map[string]Money{}
	for _, ev := range result.Events {
		byClose[ev.Symbol] = ev.Realized()
	}
	if !byClose["AAPL"].Equal(USD(100)) {
		t.Errorf("AAPL realized %s, want $100.00", byClose["AAPL"])
	}
	if !byClose["MSFT"].Equal(USD(-50)) {
		t.Errorf("MSFT realized %s, want -$50.00", byClose["MSFT"])
	}
}

func TestCompute_Deterministic(t *testing.T) {
	on := NewDate(2025, time.July, 1)
	trades := []Trade{
		testTrade(on, "AAPL", Buy, 10, 100),
		testTrade(on, "AAPL", Buy, 10, 105),
		testTrade(on.Add(1), "AAPL", Sell, 15, 110),
		testTrade(on.Add(2), "TSLA", SellShort, 3, 200),
	}

	first, err := Compute(trades)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	second, err := Compute(trades)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if len(first.Events) != len(second.Events) {
		t.Fatalf("event counts differ: %d vs %d", len(first.Events), len(second.Events))
	}
	for i := range first.Events {
		a, b := first.Events[i], second.Events[i]
		if a.Symbol != b.Symbol || !a.Quantity.Equal(b.Quantity) ||
			!a.Proceeds.Equal(b.Proceeds) || !a.CostBasis.Equal(b.CostBasis) {
			t.Errorf("event %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestCompute_AbortsOnMalformedTrade(t *testing.T) {
	on := NewDate(2025, time.July, 1)
	bad := NewTrade(on.Add(1), "AAPL", Sell, Q(-5), USD(100), USD(500))
	trades := []Trade{
		testTrade(on, "AAPL", Buy, 10, 100),
		bad,
		testTrade(on.Add(2), "AAPL", Sell, 10, 110),
	}

	_, err := Compute(trades)
	var malformed *MalformedTradeError
	if !errors.As(err, &malformed) {
		t.Fatalf("Compute() error = %v, want *MalformedTradeError", err)
	}
	if malformed.Index != 1 {
		t.Errorf("Index = %d, want 1", malformed.Index)
	}
	if malformed.Field != "quantity" {
		t.Errorf("Field = %q, want %q", malformed.Field, "quantity")
	}
}

func TestCompute_OpenPositionsSorted(t *testing.T) {
	on := NewDate(2025, time.July, 1)
	trades := []Trade{
		testTrade(on, "MSFT", Buy, 1, 300),
		testTrade(on, "AAPL", Buy, 1, 100),
		testTrade(on, "TSLA", SellShort, 1, 200),
	}
	result, err := Compute(trades)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	positions := result.OpenPositions()
	want := []string{"AAPL", "MSFT", "TSLA"}
	if len(positions) != len(want) {
		t.Fatalf("OpenPositions() = %d entries, want %d", len(positions), len(want))
	}
	for i, symbol := range want {
		if positions[i].Symbol != symbol {
			t.Errorf("OpenPositions()[%d] = %s, want %s", i, positions[i].Symbol, symbol)
		}
	}
}
