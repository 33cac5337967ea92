package charts

import (
	"weightlog/internal/analysis/axis"
	"weightlog/internal/analysis/daterange"
	"weightlog/internal/analysis/trend"
	"weightlog/internal/domain"
)

// WeightPoint is one plotted weight with the notes of its entry.
type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes,omitempty"`
}

// VariancePoint is one plotted day-over-day change.
type VariancePoint struct {
	Date     string  `json:"date"`
	Variance float64 `json:"variance"`
}

// View is everything needed to draw the weight and variance charts.
//
// WeightTrend and VarianceTrend align with Weights and Variances. Guides and
// Bounds are only set when guides are shown; Bounds is nil when the derived
// range is unusable and the axis should auto-scale.
type View struct {
	Filter        daterange.Filter `json:"filter"`
	Prefs         domain.Prefs     `json:"prefs"`
	Weights       []WeightPoint    `json:"weights"`
	Variances     []VariancePoint  `json:"variances"`
	WeightTrend   []float64        `json:"weightTrend,omitempty"`
	VarianceTrend []float64        `json:"varianceTrend,omitempty"`
	StartGuide    *float64         `json:"startGuide,omitempty"`
	TargetGuide   *float64         `json:"targetGuide,omitempty"`
	Bounds        *domain.Bounds   `json:"bounds,omitempty"`
	Years         []string         `json:"years"`
}

// Service assembles chart views from the tracked dataset and preferences.
type Service struct {
	tracker domain.TrackerService
	prefs   domain.PrefsService
}

// New returns a chart service reading from the given services.
func New(t domain.TrackerService, p domain.PrefsService) *Service {
	return &Service{tracker: t, prefs: p}
}

// Current builds the view of the stored dataset with the current preferences.
func (s *Service) Current(f daterange.Filter) (View, error) {
	d, err := s.tracker.Dataset()
	if err != nil {
		return View{}, err
	}
	return s.View(d, f, s.prefs.Get()), nil
}

// Resolve returns f with From/To replaced by the quick range of the given
// kind ("" keeps f unchanged).
func (s *Service) Resolve(f daterange.Filter, quick string) (daterange.Filter, error) {
	if quick == "" {
		return f, nil
	}
	kind, err := daterange.ParseKind(quick)
	if err != nil {
		return daterange.Filter{}, err
	}
	d, err := s.tracker.Dataset()
	if err != nil {
		return daterange.Filter{}, err
	}
	r := daterange.FromRange(daterange.Quick(d.Entries, kind))
	r.Year = f.Year
	return r, nil
}

// View builds the chart view of d restricted to f.
func (s *Service) View(d domain.Dataset, f daterange.Filter, p domain.Prefs) View {
	v := View{
		Filter:    f,
		Prefs:     p,
		Weights:   []WeightPoint{},
		Variances: []VariancePoint{},
		Years:     daterange.Years(d.Entries),
	}

	var dates []string
	var ws, vs []float64
	for _, e := range d.Entries {
		if !f.Match(e.Date) {
			continue
		}
		if w, ok := e.Weight.Float(); ok && daterange.NormalizeDate(e.Date) != "" {
			v.Weights = append(v.Weights, WeightPoint{Date: e.Date, Weight: w, Notes: e.Notes})
			dates = append(dates, e.Date)
			ws = append(ws, w)
		}
		if e.HasVariance() {
			v.Variances = append(v.Variances, VariancePoint{Date: e.Date, Variance: *e.Variance})
			vs = append(vs, *e.Variance)
		}
	}

	if p.ShowTrend {
		v.WeightTrend = trend.FitTimed(dates, ws)
		v.VarianceTrend = trend.FitIndexed(vs)
	}

	if p.ShowGuides {
		if w, ok := d.StartWeight.Float(); ok {
			v.StartGuide = &w
		}
		if w, ok := d.TargetWeight.Float(); ok {
			v.TargetGuide = &w
		}
		// Bounds span every entry, not just the filtered window.
		if b := axis.YBounds(d.Entries, d.StartWeight, d.TargetWeight); !b.Disabled && (b.HasMin || b.HasMax) {
			v.Bounds = &b
		}
	}
	return v
}
