package bagholder

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewDate_Normalizes(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
		want  string
	}{
		{2025, time.July, 1, "2025-07-01"},
		{2025, time.July, 32, "2025-08-01"},
		{2025, time.August, 0, "2025-07-31"},
		{2025, time.December, 32, "2026-01-01"},
		{2024, time.February, 29, "2024-02-29"}, // leap year
		{2025, time.February, 29, "2025-03-01"},
	}
	for _, tc := range tests {
		if got := NewDate(tc.year, tc.month, tc.day).String(); got != tc.want {
			t.Errorf("NewDate(%d, %s, %d) = %s, want %s", tc.year, tc.month, tc.day, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-07-01", "2025-07-01", false},
		{"2025-7-1", "2025-07-01", false},
		{"2025/07/01", "", true},
		{"garbage", "", true},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) succeeded, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_StartOfWeek(t *testing.T) {
	// Wednesday July 9th, 2025.
	wednesday := NewDate(2025, time.July, 9)
	tests := []struct {
		start time.Weekday
		want  string
	}{
		{time.Monday, "2025-07-07"},
		{time.Sunday, "2025-07-06"},
		{time.Wednesday, "2025-07-09"},
		{time.Thursday, "2025-07-03"},
	}
	for _, tc := range tests {
		if got := wednesday.StartOfWeek(tc.start).String(); got != tc.want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", tc.start, got, tc.want)
		}
	}
}

func TestDate_MonthBounds(t *testing.T) {
	on := NewDate(2025, time.February, 14)
	if got := on.StartOfMonth().String(); got != "2025-02-01" {
		t.Errorf("StartOfMonth() = %s, want 2025-02-01", got)
	}
	if got := on.EndOfMonth().String(); got != "2025-02-28" {
		t.Errorf("EndOfMonth() = %s, want 2025-02-28", got)
	}
	if got := NewDate(2024, time.February, 1).EndOfMonth().String(); got != "2024-02-29" {
		t.Errorf("leap EndOfMonth() = %s, want 2024-02-29", got)
	}
}

func TestDate_Sub(t *testing.T) {
	a := NewDate(2025, time.July, 10)
	b := NewDate(2025, time.July, 1)
	if got := a.Sub(b); got != 9 {
		t.Errorf("Sub() = %d, want 9", got)
	}
	if got := b.Sub(a); got != -9 {
		t.Errorf("Sub() = %d, want -9", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	on := NewDate(2025, time.July, 4)
	b, err := json.Marshal(on)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2025-07-04"` {
		t.Errorf("Marshal() = %s, want \"2025-07-04\"", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != on {
		t.Errorf("round trip = %s, want %s", back, on)
	}
}
