package bagholder

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a trading date with day-level granularity.
//
// Broker statements carry no reliable time-of-day, so all engine bookkeeping
// is keyed by calendar date only; same-day ordering is the caller's sequence
// order.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date in its ISO-8601 form.
func (d Date) String() string { return d.time().Format(DateFormat) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Sub returns the number of whole days between d and x, positive when d is after x.
func (d Date) Sub(x Date) int {
	return int(d.time().Sub(x.time()) / (24 * time.Hour))
}

// StartOfWeek returns the most recent occurrence of the given week-start day,
// on or before d.
func (d Date) StartOfWeek(weekStart time.Weekday) Date {
	offset := int(d.Weekday() - weekStart)
	if offset < 0 {
		offset += 7
	}
	return d.Add(-offset)
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date { return NewDate(d.y, d.m, 1) }

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date { return NewDate(d.y, d.m+1, 0) }

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1" in addition to the canonical "2025-07-01".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// parseDateAs parses a Date using an explicit time layout.
func parseDateAs(str, layout string) (Date, error) {
	on, err := time.Parse(layout, str)
	if err != nil {
		return Date{}, err
	}
	return NewDate(on.Date()), nil
}

// MustDate is like ParseDate but panics on error.
func MustDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseDate(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
