package bagholder

import "fmt"

// MalformedTradeError reports a trade record that cannot be processed. It is
// fatal to the whole computation run: no part of the input is applied.
type MalformedTradeError struct {
	Trade  Trade
	Index  int // position in the input sequence, -1 when unknown
	Field  string
	Reason string
}

func (e *MalformedTradeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("malformed trade #%d (%s %s on %s): field %q %s",
			e.Index, e.Trade.Action, e.Trade.Symbol, e.Trade.Date, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed trade (%s %s on %s): field %q %s",
		e.Trade.Action, e.Trade.Symbol, e.Trade.Date, e.Field, e.Reason)
}

// ConfigurationError reports an invalid setting, rejected at the boundary
// before any computation begins.
type ConfigurationError struct {
	Setting string
	Value   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s=%q: %s", e.Setting, e.Value, e.Reason)
}
