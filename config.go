package bagholder

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application settings, read from bagholder.yaml. All
// fields have workable defaults so a missing file is not an error.
type Config struct {
	WeekStart string `mapstructure:"week_start"` // first day of a calendar week
	Method    string `mapstructure:"method"`     // cost basis method label
	Currency  string `mapstructure:"currency"`   // statement currency
	Database  string `mapstructure:"database"`   // sqlite file for trades and summaries
	Prices    string `mapstructure:"prices"`     // reference price JSONL file

	weekStart time.Weekday
}

// LoadConfig reads the configuration file at path, or looks for
// bagholder.yaml in the working directory when path is empty. Settings are
// validated at this boundary: a bad value is a *ConfigurationError before
// any computation starts.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("week_start", "monday")
	v.SetDefault("method", "fifo")
	v.SetDefault("currency", "USD")
	v.SetDefault("database", "bagholder.db")
	v.SetDefault("prices", "prices.jsonl")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
		}
	} else {
		v.SetConfigName("bagholder")
		v.AddConfigPath(".")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	weekStart, err := ParseWeekStart(c.WeekStart)
	if err != nil {
		return err
	}
	c.weekStart = weekStart
	if c.Method != "" && c.Method != "fifo" {
		return &ConfigurationError{Setting: "method", Value: c.Method, Reason: "only fifo is supported"}
	}
	return nil
}

// WeekStartDay returns the validated week-start weekday.
func (c *Config) WeekStartDay() time.Weekday { return c.weekStart }
