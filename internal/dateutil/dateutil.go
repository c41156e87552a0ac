// Package dateutil provides the calendar-day primitives shared by every
// layout engine: civil dates, month geometry, and viewport day offsets.
// All functions are total and timezone-naive; a malformed input yields the
// zero (invalid) Date rather than an error.
package dateutil

import (
	"fmt"
	"time"
)

// ISOFormat is the wire format for dates.
const ISOFormat = "2006-01-02"

// Date is a civil calendar date. The zero value is invalid and marks a
// missing or malformed date; layout engines treat it as "unplaced".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its parts. Out-of-range parts are normalized
// the same way time.Date normalizes them (e.g. Feb 30 becomes Mar 2).
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses an ISO-8601 date string (YYYY-MM-DD). Malformed or empty
// input returns the zero Date.
func ParseDate(s string) Date {
	t, err := time.Parse(ISOFormat, s)
	if err != nil {
		return Date{}
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today truncates a wall-clock instant to its local calendar day.
func Today(now time.Time) Date {
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// Valid reports whether d holds an actual date.
func (d Date) Valid() bool {
	return d.Day != 0
}

// Time converts d to a time.Time at midnight UTC. Only meaningful for valid
// dates.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// String returns the ISO form, or the empty string for an invalid Date.
func (d Date) String() string {
	if !d.Valid() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as "YYYY-MM-DD", or "" when invalid.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes "YYYY-MM-DD". Empty strings, null, and malformed
// values all produce the zero Date without error.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*d = ParseDate(s)
	return nil
}

// AddDays returns the date n days after d (n may be negative). Invalid
// dates stay invalid.
func (d Date) AddDays(n int) Date {
	if !d.Valid() {
		return Date{}
	}
	t := d.Time().AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DaysBetween returns the whole-day difference to - from. Either date being
// invalid yields 0.
func DaysBetween(from, to Date) int {
	if !from.Valid() || !to.Valid() {
		return 0
	}
	return int(to.Time().Sub(from.Time()).Hours() / 24)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the month,
// 0 = Sunday.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// NormalizeMonth folds an arbitrary month index (possibly <1 or >12) into
// the 1..12 range, carrying into the year.
func NormalizeMonth(year, month int) (int, time.Month) {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// AddMonths moves a (year, month) pair by delta months, in either direction.
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	return NormalizeMonth(year, int(month)+delta)
}

// DayOffset converts a date into days since the start of the (year, month)
// viewport: 0 for the 1st, negative before the month, >= DaysInMonth after
// it. The second result is false when d is invalid, meaning the date cannot
// be placed.
func DayOffset(year int, month time.Month, d Date) (int, bool) {
	if !d.Valid() {
		return 0, false
	}
	return DaysBetween(Date{Year: year, Month: month, Day: 1}, d), true
}
