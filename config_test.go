package bagholder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bagholder.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.WeekStartDay() != time.Monday {
		t.Errorf("WeekStartDay() = %s, want Monday", cfg.WeekStartDay())
	}
	if cfg.Method != "fifo" {
		t.Errorf("Method = %q, want fifo", cfg.Method)
	}
	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.Currency)
	}
	if cfg.Database != "bagholder.db" {
		t.Errorf("Database = %q, want bagholder.db", cfg.Database)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "week_start: sunday\ndatabase: trades.db\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.WeekStartDay() != time.Sunday {
		t.Errorf("WeekStartDay() = %s, want Sunday", cfg.WeekStartDay())
	}
	if cfg.Database != "trades.db" {
		t.Errorf("Database = %q, want trades.db", cfg.Database)
	}
}

func TestLoadConfig_RejectsBadWeekStart(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "week_start: caturday\n"))
	var bad *ConfigurationError
	if !errors.As(err, &bad) {
		t.Fatalf("LoadConfig() error = %v, want *ConfigurationError", err)
	}
	if bad.Setting != "week_start" {
		t.Errorf("Setting = %q, want week_start", bad.Setting)
	}
}

func TestLoadConfig_RejectsUnknownMethod(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "method: lifo\n"))
	var bad *ConfigurationError
	if !errors.As(err, &bad) {
		t.Fatalf("LoadConfig() error = %v, want *ConfigurationError", err)
	}
	if bad.Setting != "method" {
		t.Errorf("Setting = %q, want method", bad.Setting)
	}
}

func TestParseWeekStart(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{"", time.Monday, false},
		{"monday", time.Monday, false},
		{"Sunday", time.Sunday, false},
		{"saturday", time.Saturday, false},
		{"noday", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseWeekStart(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseWeekStart(%q) succeeded, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekStart(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseWeekStart(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
