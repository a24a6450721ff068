package bagholder

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter_KeyOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2).Append("a", 1).Append("c", "three")
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := `{"b":2,"a":1,"c":"three"}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Optional(t *testing.T) {
	var w jsonObjectWriter
	w.Optional("empty", "").Optional("zero", 0).Optional("set", "value")
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := `{"set":"value"}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("MarshalJSON() = %s, want {}", got)
	}
	if !json.Valid(got) {
		t.Errorf("MarshalJSON() produced invalid JSON: %s", got)
	}
}
