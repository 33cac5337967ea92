package daterange

import (
	"strings"
	"time"
)

// Layout is the ISO calendar date layout used throughout weightlog.
const Layout = "2006-01-02"

// Parse parses an ISO date (an RFC 3339 timestamp is accepted too and
// truncated to its UTC calendar date).
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(Layout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// FormatDate formats t as an ISO date, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(Layout)
}

// NormalizeDate re-formats s as an ISO date, or returns "" if s is not a date.
func NormalizeDate(s string) string {
	t, ok := Parse(s)
	if !ok {
		return ""
	}
	return FormatDate(t)
}

// DayAfter returns the ISO date following s, or "" if s is not a date.
func DayAfter(s string) string {
	t, ok := Parse(s)
	if !ok {
		return ""
	}
	return FormatDate(t.AddDate(0, 0, 1))
}

// EpochMillis returns the milliseconds since the Unix epoch of s at UTC midnight.
func EpochMillis(s string) (float64, bool) {
	t, ok := Parse(s)
	if !ok {
		return 0, false
	}
	return float64(t.UnixMilli()), true
}

// subMonths steps t back n months, clamping the day to the target month.
func subMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
