package variance_test

import (
	"math"
	"testing"

	"weightlog/internal/analysis/variance"
	"weightlog/internal/domain"
)

func entries(weights ...string) []domain.Entry {
	out := make([]domain.Entry, len(weights))
	for i, w := range weights {
		out[i] = domain.Entry{Date: "2025-01-0" + string(rune('1'+i)), Weight: domain.Weight(w)}
	}
	return out
}

func assertVariances(t *testing.T, got []domain.Entry, want []*float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		g := got[i].Variance
		switch {
		case want[i] == nil && g != nil:
			t.Fatalf("entry %d: variance = %v, want nil", i, *g)
		case want[i] != nil && g == nil:
			t.Fatalf("entry %d: variance = nil, want %v", i, *want[i])
		case want[i] != nil && math.Abs(*g-*want[i]) > 1e-9:
			t.Fatalf("entry %d: variance = %v, want %v", i, *g, *want[i])
		}
	}
}

func f(v float64) *float64 { return &v }

func TestDerive_Chronological(t *testing.T) {
	got := variance.Derive(entries("80", "79.5", "79.0"))
	assertVariances(t, got, []*float64{nil, f(-0.5), f(-0.5)})
}

func TestDerive_GapBreaksChain(t *testing.T) {
	got := variance.Derive(entries("80", "", "78"))
	assertVariances(t, got, []*float64{nil, nil, nil})
}

func TestDerive_NilWheneverWeightEmpty(t *testing.T) {
	in := entries("80", "", "  ", "81", "", "82")
	for _, e := range variance.Derive(in) {
		if e.Weight.IsEmpty() && e.Variance != nil {
			t.Fatalf("entry %s has empty weight but variance %v", e.Date, *e.Variance)
		}
	}
}

func TestDerive_NonNumericWeights(t *testing.T) {
	got := variance.Derive(entries("80", "abc", "79", "NaN", "78"))
	assertVariances(t, got, []*float64{nil, nil, nil, nil, nil})
}

func TestDerive_EmptyInput(t *testing.T) {
	got := variance.Derive(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("Derive(nil) = %#v, want empty slice", got)
	}
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	stale := 42.0
	in := entries("80", "81")
	in[0].Variance = &stale
	out := variance.Derive(in)

	if in[0].Variance != &stale {
		t.Fatal("input entry was modified")
	}
	if out[0].Variance != nil {
		t.Fatalf("first variance = %v, want nil", *out[0].Variance)
	}
	if out[1].Variance == nil || *out[1].Variance != 1 {
		t.Fatalf("second variance = %v, want 1", out[1].Variance)
	}
}

func TestDerive_KeepsNotesAndDates(t *testing.T) {
	in := []domain.Entry{
		{Date: "2025-03-01", Weight: "70", Notes: "start"},
		{Date: "2025-03-02", Weight: "70.25", Notes: "after run"},
	}
	out := variance.Derive(in)
	if out[1].Notes != "after run" || out[1].Date != "2025-03-02" {
		t.Fatalf("entry fields changed: %+v", out[1])
	}
	assertVariances(t, out, []*float64{nil, f(0.25)})
}
