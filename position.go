package bagholder

// Position is the open-position snapshot for one symbol at the end of a
// computation run: remaining units, weighted-average unit cost, and side.
type Position struct {
	Symbol   string   `json:"symbol"`
	Side     Side     `json:"-"`
	Quantity Quantity `json:"quantity"`
	UnitCost Money    `json:"unit_cost"`
}

// snapshot condenses the ledger's open lots into a Position. The ledger must
// not be empty.
func (l *lotLedger) snapshot() Position {
	quantity := l.totalQuantity()
	return Position{
		Symbol:   l.symbol,
		Side:     l.side,
		Quantity: quantity,
		UnitCost: l.totalCost().Div(quantity),
	}
}

// Unrealized returns the mark-to-reference P&L of the position at the given
// price: quantity × (price − unit cost) for longs, the negated sense for
// shorts.
func (p Position) Unrealized(price Money) Money {
	diff := price.Sub(p.UnitCost)
	if p.Side == Short {
		diff = diff.Neg()
	}
	return diff.Mul(p.Quantity)
}

// MarketValue returns the absolute value of the inventory at the given price.
func (p Position) MarketValue(price Money) Money {
	return price.Mul(p.Quantity)
}
