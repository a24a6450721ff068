package bagholder

// RealizedGain is the result of matching a closing trade against one open
// lot: the profit or loss locked in, attributed to the closing trade's date.
//
// Proceeds are always the cash received on the sell leg of the round trip and
// CostBasis the cash paid on the buy leg, whichever leg came first, so
// Realized() keeps its sign for both long sales and short covers.
type RealizedGain struct {
	Symbol      string   `json:"symbol"`
	CloseDate   Date     `json:"close_date"`
	Quantity    Quantity `json:"quantity"`
	Proceeds    Money    `json:"proceeds"`
	CostBasis   Money    `json:"cost_basis"`
	HoldingDays int      `json:"holding_days"`
}

// Realized returns the profit (or loss) of the match.
func (g RealizedGain) Realized() Money { return g.Proceeds.Sub(g.CostBasis) }

// apply matches one trade against the ledger, returning the realized-gain
// events it produced. The trade must already be validated.
//
// A trade whose direction matches the ledger's side (or finds it empty) opens
// a new lot. An opposing trade closes lots from the front of the queue,
// oldest first. A closing quantity larger than the open inventory flattens
// the book and flips the remainder into a new lot on the opposite side, at
// the same per-unit amount; this is the only case producing both events and
// a new lot from a single trade.
func (l *lotLedger) apply(t Trade) []RealizedGain {
	direction := t.Action.direction()
	unit := t.unitAmount()

	if l.empty() || l.side == direction {
		l.side = direction
		l.open(t.Date, t.Quantity, unit)
		return nil
	}

	var events []RealizedGain
	remaining := t.Quantity
	for remaining.IsPositive() && !l.empty() {
		front := &l.lots[0]
		matched := remaining.Min(front.Quantity)

		entry := front.UnitCost.Mul(matched) // cash at open
		exit := unit.Mul(matched)            // cash now

		ev := RealizedGain{
			Symbol:      l.symbol,
			CloseDate:   t.Date,
			Quantity:    matched,
			HoldingDays: t.Date.Sub(front.OpenDate),
		}
		if l.side == Long {
			ev.Proceeds, ev.CostBasis = exit, entry
		} else {
			ev.Proceeds, ev.CostBasis = entry, exit
		}
		events = append(events, ev)

		front.Quantity = front.Quantity.Sub(matched)
		if !front.Quantity.IsPositive() {
			l.lots = l.lots[1:]
		}
		remaining = remaining.Sub(matched)
	}

	if remaining.IsPositive() {
		// Excess over the open inventory flips the position.
		l.side = direction
		l.lots = nil
		l.open(t.Date, remaining, unit)
	}
	return events
}
