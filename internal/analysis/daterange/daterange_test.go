package daterange_test

import (
	"errors"
	"reflect"
	"testing"

	"weightlog/internal/analysis/daterange"
	"weightlog/internal/domain"
)

func dated(dates ...string) []domain.Entry {
	out := make([]domain.Entry, len(dates))
	for i, d := range dates {
		out[i] = domain.Entry{Date: d, Weight: "80"}
	}
	return out
}

func TestDefault_SpansAllEntries(t *testing.T) {
	got := daterange.Default(dated("2025-02-10", "2024-12-31", "2025-01-15"))
	want := domain.DateRange{From: "2024-12-31", To: "2025-02-10"}
	if got != want {
		t.Fatalf("Default = %+v, want %+v", got, want)
	}
}

func TestDefault_Empty(t *testing.T) {
	if got := daterange.Default(nil); !got.IsZero() {
		t.Fatalf("Default(nil) = %+v, want zero", got)
	}
	if got := daterange.Default(dated("")); !got.IsZero() {
		t.Fatalf("Default(undated) = %+v, want zero", got)
	}
}

func TestQuick(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		kind  domain.RangeKind
		want  domain.DateRange
	}{
		{"week", []string{"2025-01-01", "2025-03-10"}, domain.RangeWeek, domain.DateRange{From: "2025-03-03", To: "2025-03-10"}},
		{"week across year", []string{"2025-01-03"}, domain.RangeWeek, domain.DateRange{From: "2024-12-27", To: "2025-01-03"}},
		{"month", []string{"2025-04-15"}, domain.RangeMonth, domain.DateRange{From: "2025-03-15", To: "2025-04-15"}},
		{"month clamps", []string{"2025-03-31"}, domain.RangeMonth, domain.DateRange{From: "2025-02-28", To: "2025-03-31"}},
		{"month clamps leap", []string{"2024-03-31"}, domain.RangeMonth, domain.DateRange{From: "2024-02-29", To: "2024-03-31"}},
		{"month across year", []string{"2025-01-20"}, domain.RangeMonth, domain.DateRange{From: "2024-12-20", To: "2025-01-20"}},
		{"year", []string{"2025-06-01"}, domain.RangeYear, domain.DateRange{From: "2024-06-01", To: "2025-06-01"}},
		{"year clamps leap day", []string{"2024-02-29"}, domain.RangeYear, domain.DateRange{From: "2023-02-28", To: "2024-02-29"}},
		{"anchor is latest not last", []string{"2025-05-10", "2025-01-01"}, domain.RangeWeek, domain.DateRange{From: "2025-05-03", To: "2025-05-10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daterange.Quick(dated(tt.dates...), tt.kind); got != tt.want {
				t.Fatalf("Quick = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQuick_NoEntries(t *testing.T) {
	if got := daterange.Quick(nil, domain.RangeMonth); !got.IsZero() {
		t.Fatalf("Quick(nil) = %+v, want zero", got)
	}
}

func TestQuick_UnparseableAnchor(t *testing.T) {
	if got := daterange.Quick(dated("2025-01-01", "not-a-date"), domain.RangeWeek); !got.IsZero() {
		t.Fatalf("Quick = %+v, want zero", got)
	}
}

func TestDefaultAfterQuick_RestoresFullSpan(t *testing.T) {
	es := dated("2023-05-01", "2024-07-19", "2025-02-02")
	full := daterange.Default(es)
	if q := daterange.Quick(es, domain.RangeWeek); q == full {
		t.Fatalf("quick range should narrow the span, got %+v", q)
	}
	if got := daterange.Default(es); got != full {
		t.Fatalf("Default after Quick = %+v, want %+v", got, full)
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]domain.RangeKind{"week": domain.RangeWeek, " Month ": domain.RangeMonth, "YEAR": domain.RangeYear} {
		got, err := daterange.ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := daterange.ParseKind("fortnight"); !errors.Is(err, daterange.ErrUnknownRange) {
		t.Fatalf("ParseKind(fortnight) err = %v, want ErrUnknownRange", err)
	}
}

func TestYears(t *testing.T) {
	got := daterange.Years(dated("2025-01-01", "2023-02-02", "2025-06-06", "x"))
	want := []string{"2023", "2025"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Years = %v, want %v", got, want)
	}
}

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		f    daterange.Filter
		date string
		want bool
	}{
		{daterange.Filter{}, "2025-01-01", true},
		{daterange.Filter{Year: "all"}, "2025-01-01", true},
		{daterange.Filter{Year: "2024"}, "2025-01-01", false},
		{daterange.Filter{Year: "2025"}, "2025-01-01", true},
		{daterange.Filter{From: "2025-01-02"}, "2025-01-01", false},
		{daterange.Filter{From: "2025-01-01", To: "2025-01-01"}, "2025-01-01", true},
		{daterange.Filter{To: "2024-12-31"}, "2025-01-01", false},
		{daterange.Filter{Year: "2025", To: "2025-01-15"}, "2025-02-01", false},
	}
	for _, tt := range tests {
		if got := tt.f.Match(tt.date); got != tt.want {
			t.Fatalf("%+v.Match(%q) = %v, want %v", tt.f, tt.date, got, tt.want)
		}
	}
}

func TestDateHelpers(t *testing.T) {
	if got := daterange.NormalizeDate("garbage"); got != "" {
		t.Fatalf("NormalizeDate(garbage) = %q, want empty", got)
	}
	if got := daterange.NormalizeDate("2025-01-02T23:30:00Z"); got != "2025-01-02" {
		t.Fatalf("NormalizeDate(rfc3339) = %q", got)
	}
	if got := daterange.DayAfter("2024-02-28"); got != "2024-02-29" {
		t.Fatalf("DayAfter = %q, want 2024-02-29", got)
	}
	if got := daterange.DayAfter("2025-12-31"); got != "2026-01-01" {
		t.Fatalf("DayAfter = %q, want 2026-01-01", got)
	}
	if got := daterange.DayAfter(""); got != "" {
		t.Fatalf("DayAfter(empty) = %q, want empty", got)
	}
	ms, ok := daterange.EpochMillis("1970-01-02")
	if !ok || ms != 86_400_000 {
		t.Fatalf("EpochMillis = %v, %v", ms, ok)
	}
}
