// Package store persists the imported trade history and the cached per-day
// realized summaries the calendar reads, in a single sqlite file.
//
// The store is a dumb collaborator: it records what the importers produce
// and what the engine computes, and never does P&L math of its own. Callers
// serialize recompute-and-persist sequences; the store only guards its own
// connection.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	bagholder "github.com/Trogdorts/BagHolder"
)

const schema = `
CREATE TABLE IF NOT EXISTS trades (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	date     TEXT NOT NULL,
	symbol   TEXT NOT NULL,
	action   TEXT NOT NULL,
	quantity TEXT NOT NULL,
	price    TEXT NOT NULL,
	amount   TEXT NOT NULL,
	currency TEXT NOT NULL DEFAULT 'USD'
);
CREATE INDEX IF NOT EXISTS trades_by_date ON trades(date, id);

CREATE TABLE IF NOT EXISTS daily_summary (
	date       TEXT PRIMARY KEY,
	realized   TEXT NOT NULL,
	matches    INTEGER NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Store wraps the sqlite database file.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (and if needed creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot initialize database %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// AddTrades appends trades to the history in one transaction, preserving
// their order. Nothing is written if any insert fails.
func (s *Store) AddTrades(trades []bagholder.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("cannot start transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO trades(date, symbol, action, quantity, price, amount, currency) VALUES(?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trades {
		_, err := stmt.Exec(
			t.Date.String(),
			t.Symbol,
			t.Action.String(),
			t.Quantity.Decimal().String(),
			t.Price.Decimal().String(),
			t.Amount.Decimal().String(),
			t.Price.Currency(),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("cannot insert trade %s %s on %s: %w", t.Action, t.Symbol, t.Date, err)
		}
	}
	return tx.Commit()
}

// Trades returns the full history, oldest first, with the insertion order
// preserved within a date. This is the stable ordering contract the engine
// relies on for same-date tie-breaks.
func (s *Store) Trades() ([]bagholder.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT date, symbol, action, quantity, price, amount, currency FROM trades ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("cannot query trades: %w", err)
	}
	defer rows.Close()

	var trades []bagholder.Trade
	for rows.Next() {
		var dateText, symbol, actionText, qtyText, priceText, amountText, currency string
		if err := rows.Scan(&dateText, &symbol, &actionText, &qtyText, &priceText, &amountText, &currency); err != nil {
			return nil, fmt.Errorf("cannot scan trade: %w", err)
		}
		t, err := decodeTrade(dateText, symbol, actionText, qtyText, priceText, amountText, currency)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

func decodeTrade(dateText, symbol, actionText, qtyText, priceText, amountText, currency string) (bagholder.Trade, error) {
	on, err := bagholder.ParseDate(dateText)
	if err != nil {
		return bagholder.Trade{}, fmt.Errorf("stored trade has invalid date: %w", err)
	}
	action, err := bagholder.ParseAction(actionText)
	if err != nil {
		return bagholder.Trade{}, fmt.Errorf("stored trade has invalid action: %w", err)
	}
	qty, err := decimal.NewFromString(qtyText)
	if err != nil {
		return bagholder.Trade{}, fmt.Errorf("stored trade has invalid quantity %q: %w", qtyText, err)
	}
	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return bagholder.Trade{}, fmt.Errorf("stored trade has invalid price %q: %w", priceText, err)
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return bagholder.Trade{}, fmt.Errorf("stored trade has invalid amount %q: %w", amountText, err)
	}
	return bagholder.NewTrade(on, symbol, action, bagholder.Q(qty), bagholder.M(price, currency), bagholder.M(amount, currency)), nil
}

// UpsertDailySummaries writes computed day cells into the daily_summary
// cache, inserting new dates and overwriting existing ones.
func (s *Store) UpsertDailySummaries(cells []bagholder.DayCell, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("cannot start transaction: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO daily_summary(date, realized, matches, updated_at) VALUES(?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET realized=excluded.realized, matches=excluded.matches, updated_at=excluded.updated_at`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("cannot prepare upsert: %w", err)
	}
	defer stmt.Close()

	timestamp := at.UTC().Format(time.RFC3339)
	for _, cell := range cells {
		if _, err := stmt.Exec(cell.Date.String(), cell.Realized.Decimal().String(), cell.Matches, timestamp); err != nil {
			tx.Rollback()
			return fmt.Errorf("cannot upsert summary for %s: %w", cell.Date, err)
		}
	}
	return tx.Commit()
}

// DailySummary is one cached row of the calendar cache.
type DailySummary struct {
	Date     bagholder.Date
	Realized decimal.Decimal
	Matches  int
}

// DailySummaries returns the cached rows between from and to, inclusive,
// ordered by date.
func (s *Store) DailySummaries(from, to bagholder.Date) ([]DailySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT date, realized, matches FROM daily_summary WHERE date >= ? AND date <= ? ORDER BY date ASC`,
		from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("cannot query summaries: %w", err)
	}
	defer rows.Close()

	var summaries []DailySummary
	for rows.Next() {
		var dateText, realizedText string
		var matches int
		if err := rows.Scan(&dateText, &realizedText, &matches); err != nil {
			return nil, fmt.Errorf("cannot scan summary: %w", err)
		}
		on, err := bagholder.ParseDate(dateText)
		if err != nil {
			return nil, fmt.Errorf("stored summary has invalid date: %w", err)
		}
		realized, err := decimal.NewFromString(realizedText)
		if err != nil {
			return nil, fmt.Errorf("stored summary has invalid amount %q: %w", realizedText, err)
		}
		summaries = append(summaries, DailySummary{Date: on, Realized: realized, Matches: matches})
	}
	return summaries, rows.Err()
}
