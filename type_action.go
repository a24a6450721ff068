package bagholder

import (
	"fmt"
	"strings"
)

// Side tells whether open inventory is held long or short.
type Side int

const (
	Long Side = iota
	Short
)

func (s Side) String() string {
	switch s {
	case Long:
		return "long"
	case Short:
		return "short"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Long {
		return Short
	}
	return Long
}

// Action is the broker-reported intent of an execution.
type Action int

const (
	// Buy acquires shares, opening or adding to a long position.
	Buy Action = iota
	// Sell disposes shares, closing long inventory.
	Sell
	// SellShort opens or adds to a short position.
	SellShort
	// BuyToCover closes short inventory.
	BuyToCover
)

// direction is the single classification table for matching: an action opens
// inventory when the ledger is empty or already holds this side, and closes
// inventory otherwise.
func (a Action) direction() Side {
	switch a {
	case Buy, BuyToCover:
		return Long
	case Sell, SellShort:
		return Short
	default:
		panic(fmt.Sprintf("unknown action %d", a))
	}
}

// buySide reports whether the action pays cash out (acquiring shares).
func (a Action) buySide() bool { return a == Buy || a == BuyToCover }

func (a Action) String() string {
	switch a {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	case SellShort:
		return "SHORT"
	case BuyToCover:
		return "COVER"
	default:
		return "unknown"
	}
}

// ParseAction parses the canonical action names used in the trade file format.
func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	case "SHORT", "SELL_SHORT":
		return SellShort, nil
	case "COVER", "BUY_TO_COVER":
		return BuyToCover, nil
	default:
		return 0, fmt.Errorf("unknown trade action: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (a Action) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *Action) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
