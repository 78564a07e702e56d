// Package dates handles calendar dates as UTC midnights in the ISO
// YYYY-MM-DD form used on the wire and in the date columns.
package dates

import (
	"errors"
	"time"
)

const Layout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange = errors.New("end date must be after start date")
)

func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// Normalize drops the clock part, keeping the calendar date as written.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func AddDays(t time.Time, n int) time.Time {
	return Normalize(t).AddDate(0, 0, n)
}

// Span returns every date from `from` to `to`, both inclusive.
func Span(from, to time.Time) []time.Time {
	from, to = Normalize(from), Normalize(to)
	if to.Before(from) {
		return nil
	}
	out := make([]time.Time, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Nights returns the nights occupied by a stay starting on start. A nil end
// means a single night. end must be strictly after start.
func Nights(start time.Time, end *time.Time) ([]time.Time, error) {
	start = Normalize(start)
	if end == nil {
		return []time.Time{start}, nil
	}
	e := Normalize(*end)
	if !e.After(start) {
		return nil, ErrInvalidRange
	}
	return Span(start, e.AddDate(0, 0, -1)), nil
}

func MonthBounds(t time.Time) (time.Time, time.Time) {
	y, m, _ := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}
