package types

// DateRange is an inclusive window of ISO dates. Empty strings mean unbounded.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// IsZero reports whether neither end is set.
func (r DateRange) IsZero() bool { return r.From == "" && r.To == "" }

// RangeKind selects a quick date window anchored at the latest entry.
type RangeKind string

const (
	RangeWeek  RangeKind = "week"
	RangeMonth RangeKind = "month"
	RangeYear  RangeKind = "year"
)

// Point is an (x, y) sample fed to the trend estimator.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds are explicit y-axis limits for a weight chart.
//
// HasMin/HasMax report whether a candidate could be derived at all. When
// Disabled is set the derived range was empty or inverted and callers must
// auto-scale instead.
type Bounds struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	HasMin   bool    `json:"hasMin"`
	HasMax   bool    `json:"hasMax"`
	Disabled bool    `json:"disabled,omitempty"`
}

// Enabled reports whether both limits are known and usable.
func (b Bounds) Enabled() bool { return !b.Disabled && b.HasMin && b.HasMax }
