package bagholder

import "strings"

// Trade is the normalized, immutable record of one executed trade.
//
// Amount is the signed net cash effect of the execution, fees and commission
// included: negative when cash leaves the account (buys, covers), positive
// when cash comes in (sells, shorts). The sign of the cash flow is carried by
// Amount and Action, never inferred from Price.
type Trade struct {
	Date     Date     `json:"date"`
	Symbol   string   `json:"symbol"`
	Action   Action   `json:"action"`
	Quantity Quantity `json:"quantity"`
	Price    Money    `json:"price"`
	Amount   Money    `json:"amount"`
}

// NewTrade builds a trade record with a case-normalized symbol.
func NewTrade(on Date, symbol string, action Action, quantity Quantity, price, amount Money) Trade {
	return Trade{
		Date:     on,
		Symbol:   strings.ToUpper(strings.TrimSpace(symbol)),
		Action:   action,
		Quantity: quantity,
		Price:    price,
		Amount:   amount,
	}
}

// Validate checks the record's structural invariants and returns a
// *MalformedTradeError describing the first violation.
func (t Trade) Validate() error {
	if t.Symbol == "" {
		return &MalformedTradeError{Trade: t, Index: -1, Field: "symbol", Reason: "is empty"}
	}
	if !t.Quantity.IsPositive() {
		return &MalformedTradeError{Trade: t, Index: -1, Field: "quantity", Reason: "must be positive"}
	}
	if t.Price.IsZero() || t.Price.IsNegative() {
		return &MalformedTradeError{Trade: t, Index: -1, Field: "price", Reason: "must be positive"}
	}
	if t.Action.buySide() && t.Amount.IsPositive() {
		return &MalformedTradeError{Trade: t, Index: -1, Field: "amount",
			Reason: "must be a cash outflow for " + t.Action.String()}
	}
	if !t.Action.buySide() && t.Amount.IsNegative() {
		return &MalformedTradeError{Trade: t, Index: -1, Field: "amount",
			Reason: "must be a cash inflow for " + t.Action.String()}
	}
	return nil
}

// unitAmount is the absolute cash moved per unit, fees included. It is the
// per-unit cost basis on the buy side and the per-unit proceeds on the sell
// side.
func (t Trade) unitAmount() Money {
	return t.Amount.Abs().Div(t.Quantity)
}
