// Package bagholder computes realized and unrealized trading P&L from a
// broker trade history and lays the results out on a calendar.
//
// Trades are replayed oldest first through per-symbol lot ledgers. Closing
// trades match open lots first-in-first-out and emit realized-gain events;
// whatever remains open at the end of the replay is a position. The Calendar
// buckets the event stream into day cells and derives week and month totals
// as sums over those cells, so rollups always add up.
//
// All money and quantity arithmetic is exact decimal, and a replay of the
// same history is deterministic.
package bagholder
