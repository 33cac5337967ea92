package charts_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"weightlog/internal/analysis/daterange"
	"weightlog/internal/domain"
	"weightlog/internal/services/charts"
	"weightlog/internal/services/prefs"
	"weightlog/internal/services/tracker"
	"weightlog/internal/store"
)

func dataset() domain.Dataset {
	d := domain.Dataset{
		StartWeight:  "200",
		TargetWeight: "150",
		Entries: []domain.Entry{
			{Date: "2024-12-30", Weight: "190"},
			{Date: "2024-12-31", Weight: ""},
			{Date: "2025-01-01", Weight: "186", Notes: "new year"},
			{Date: "2025-01-02", Weight: "185"},
			{Date: "2025-01-03", Weight: "160"},
		},
	}
	v1, v2 := -1.0, -25.0
	d.Entries[3].Variance = &v1
	d.Entries[4].Variance = &v2
	return d
}

func TestView_AllWithTrendAndGuides(t *testing.T) {
	svc := charts.New(nil, nil)
	v := svc.View(dataset(), daterange.Filter{Year: daterange.AllYears}, domain.DefaultPrefs())

	if len(v.Weights) != 4 {
		t.Fatalf("weights = %d, want 4 (blank weight skipped)", len(v.Weights))
	}
	if v.Weights[1].Notes != "new year" {
		t.Fatalf("notes not attached: %+v", v.Weights[1])
	}
	if len(v.Variances) != 2 || v.Variances[1].Variance != -25 {
		t.Fatalf("variances = %+v", v.Variances)
	}
	if len(v.WeightTrend) != 4 || len(v.VarianceTrend) != 2 {
		t.Fatalf("trend lengths = %d/%d", len(v.WeightTrend), len(v.VarianceTrend))
	}
	if v.VarianceTrend[0] != -1 || v.VarianceTrend[1] != -25 {
		t.Fatalf("variance trend = %v", v.VarianceTrend)
	}
	if v.StartGuide == nil || *v.StartGuide != 200 || v.TargetGuide == nil || *v.TargetGuide != 150 {
		t.Fatalf("guides = %v / %v", v.StartGuide, v.TargetGuide)
	}
	if v.Bounds == nil || v.Bounds.Min != 150 || v.Bounds.Max != 200 {
		t.Fatalf("bounds = %+v", v.Bounds)
	}
	if len(v.Years) != 2 || v.Years[0] != "2024" || v.Years[1] != "2025" {
		t.Fatalf("years = %v", v.Years)
	}
}

func TestView_FilterAndTogglesOff(t *testing.T) {
	svc := charts.New(nil, nil)
	v := svc.View(dataset(), daterange.Filter{Year: "2025", To: "2025-01-02"}, domain.Prefs{})

	if len(v.Weights) != 2 || v.Weights[0].Date != "2025-01-01" || v.Weights[1].Date != "2025-01-02" {
		t.Fatalf("weights = %+v", v.Weights)
	}
	if len(v.Variances) != 1 {
		t.Fatalf("variances = %+v", v.Variances)
	}
	if v.WeightTrend != nil || v.VarianceTrend != nil {
		t.Fatal("trend computed with trend hidden")
	}
	if v.StartGuide != nil || v.TargetGuide != nil || v.Bounds != nil {
		t.Fatal("guides set with guides hidden")
	}
}

func TestView_BoundsOverAllEntries(t *testing.T) {
	d := dataset()
	d.StartWeight = ""
	d.TargetWeight = ""
	svc := charts.New(nil, nil)
	v := svc.View(d, daterange.Filter{From: "2025-01-02", To: "2025-01-02"}, domain.DefaultPrefs())

	if v.Bounds == nil || v.Bounds.Min != 160 || v.Bounds.Max != 190 {
		t.Fatalf("bounds = %+v, want 160..190 from every entry", v.Bounds)
	}
}

func TestView_InvertedBoundsOmitted(t *testing.T) {
	d := domain.Dataset{
		StartWeight:  "100",
		TargetWeight: "120",
		Entries:      []domain.Entry{{Date: "2025-01-01", Weight: "110"}},
	}
	v := charts.New(nil, nil).View(d, daterange.Filter{}, domain.DefaultPrefs())
	if v.Bounds != nil {
		t.Fatalf("bounds = %+v, want nil", v.Bounds)
	}
}

func TestView_EmptyDataset(t *testing.T) {
	v := charts.New(nil, nil).View(domain.EmptyDataset(), daterange.Filter{}, domain.DefaultPrefs())
	if v.Weights == nil || v.Variances == nil || len(v.Weights) != 0 {
		t.Fatalf("view = %+v", v)
	}
	if v.WeightTrend != nil || v.VarianceTrend != nil {
		t.Fatal("trend for empty series")
	}
}

func TestCurrentAndResolve(t *testing.T) {
	home := t.TempDir()
	ps := prefs.New(store.NewPrefsFileStore(home), zerolog.Nop())
	tr := tracker.New(store.NewDatasetFileStore(home), ps, zerolog.Nop())
	start := "2025-01-01"
	if _, err := tr.UpdateSettings(domain.Settings{StartDate: &start}); err != nil {
		t.Fatalf("settings: %v", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := tr.AddDay(domain.NewWeight(90-float64(i)), ""); err != nil {
			t.Fatalf("add day: %v", err)
		}
	}

	svc := charts.New(tr, ps)
	f, err := svc.Resolve(daterange.Filter{}, "week")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if f.From != "2025-01-03" || f.To != "2025-01-10" {
		t.Fatalf("filter = %+v", f)
	}
	v, err := svc.Current(f)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if len(v.Weights) != 8 || len(v.Variances) != 8 {
		t.Fatalf("points = %d/%d, want 8/8", len(v.Weights), len(v.Variances))
	}

	f, err = svc.Resolve(daterange.Filter{Year: "2025", From: "2024-12-01"}, "month")
	if err != nil {
		t.Fatalf("resolve month: %v", err)
	}
	if f != (daterange.Filter{Year: "2025", From: "2024-12-10", To: "2025-01-10"}) {
		t.Fatalf("month filter = %+v", f)
	}

	if _, err := svc.Resolve(daterange.Filter{}, "fortnight"); !errors.Is(err, daterange.ErrUnknownRange) {
		t.Fatalf("err = %v, want ErrUnknownRange", err)
	}
}
