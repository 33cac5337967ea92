package daterange

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"weightlog/internal/domain"
)

// ErrUnknownRange is returned by ParseKind for anything but week, month or year.
var ErrUnknownRange = errors.New("unknown quick range (want week, month or year)")

// ParseKind maps a user-supplied name to a RangeKind.
func ParseKind(s string) (domain.RangeKind, error) {
	switch k := domain.RangeKind(strings.ToLower(strings.TrimSpace(s))); k {
	case domain.RangeWeek, domain.RangeMonth, domain.RangeYear:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRange, s)
	}
}

// sortedDates returns the non-empty entry dates in ascending order.
func sortedDates(entries []domain.Entry) []string {
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Date != "" {
			dates = append(dates, e.Date)
		}
	}
	sort.Strings(dates)
	return dates
}

// Default spans the earliest to the latest entry date.
func Default(entries []domain.Entry) domain.DateRange {
	dates := sortedDates(entries)
	if len(dates) == 0 {
		return domain.DateRange{}
	}
	return domain.DateRange{From: dates[0], To: dates[len(dates)-1]}
}

// Quick returns the window of the given kind ending at the latest entry date.
//
// It returns an empty range when there are no dated entries or the latest
// date cannot be parsed.
func Quick(entries []domain.Entry, kind domain.RangeKind) domain.DateRange {
	dates := sortedDates(entries)
	if len(dates) == 0 {
		return domain.DateRange{}
	}
	anchor, ok := Parse(dates[len(dates)-1])
	if !ok {
		return domain.DateRange{}
	}

	from := anchor
	switch kind {
	case domain.RangeYear:
		from = subMonths(anchor, 12)
	case domain.RangeMonth:
		from = subMonths(anchor, 1)
	case domain.RangeWeek:
		from = anchor.AddDate(0, 0, -7)
	}
	return domain.DateRange{From: FormatDate(from), To: FormatDate(anchor)}
}

// Years returns the distinct four-character year prefixes of the entry dates,
// sorted ascending.
func Years(entries []domain.Entry) []string {
	seen := make(map[string]bool)
	years := []string{}
	for _, e := range entries {
		if len(e.Date) < 4 {
			continue
		}
		y := e.Date[:4]
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Strings(years)
	return years
}
