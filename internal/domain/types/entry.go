package types

// Entry is one dated weight observation.
//
// Variance is derived from the previous entry and is nil when it cannot be
// computed. Entries are kept in the order the user maintains them; nothing in
// the engine sorts them.
type Entry struct {
	Date     string   `json:"date"` // "2025-01-31"
	Weight   Weight   `json:"weight"`
	Variance *float64 `json:"variance"`
	Notes    string   `json:"notes,omitempty"`
}

// HasVariance reports whether a variance was derived for e.
func (e Entry) HasVariance() bool { return e.Variance != nil }
