package bagholder

// lot is a discrete slice of open inventory at a specific cost basis.
type lot struct {
	OpenDate Date
	Quantity Quantity // remaining units, always positive
	UnitCost Money    // absolute cash per unit at entry, fees included
}

// lotLedger is the per-symbol queue of open lots, oldest first. All lots in a
// ledger share its side: flipping fully flattens the book before opening the
// opposite side, so long and short lots never coexist.
type lotLedger struct {
	symbol string
	side   Side
	lots   []lot
}

func newLotLedger(symbol string) *lotLedger {
	return &lotLedger{symbol: symbol}
}

func (l *lotLedger) empty() bool { return len(l.lots) == 0 }

// open appends a new lot at the back of the queue.
func (l *lotLedger) open(on Date, quantity Quantity, unitCost Money) {
	l.lots = append(l.lots, lot{OpenDate: on, Quantity: quantity, UnitCost: unitCost})
}

// totalQuantity sums the remaining units across all open lots.
func (l *lotLedger) totalQuantity() Quantity {
	var total Quantity
	for _, current := range l.lots {
		total = total.Add(current.Quantity)
	}
	return total
}

// totalCost sums the remaining cost basis across all open lots.
func (l *lotLedger) totalCost() Money {
	var total Money
	for _, current := range l.lots {
		total = total.Add(current.UnitCost.Mul(current.Quantity))
	}
	return total
}
