package daterange

import "weightlog/internal/domain"

// AllYears is the Year value that disables year filtering.
const AllYears = "all"

// Filter is the chart view selection: an optional year plus an optional
// inclusive From/To window. All set conditions must hold.
type Filter struct {
	Year string `json:"year,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// FromRange returns a Filter for r.
func FromRange(r domain.DateRange) Filter {
	return Filter{From: r.From, To: r.To}
}

// Match reports whether date passes the filter.
func (f Filter) Match(date string) bool {
	if f.Year != "" && f.Year != AllYears {
		if len(date) < 4 || date[:4] != f.Year {
			return false
		}
	}
	if f.From != "" && date < f.From {
		return false
	}
	if f.To != "" && date > f.To {
		return false
	}
	return true
}
