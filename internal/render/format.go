package render

import (
	"strings"

	"github.com/shopspring/decimal"

	"weightlog/internal/domain"
)

// noValue is shown in place of a missing variance.
const noValue = "—"

// Number formats v with two decimal places.
func Number(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Signed formats v with two decimal places and an explicit sign.
func Signed(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsPositive() {
		return "+" + d.StringFixed(2)
	}
	if d.IsZero() {
		return decimal.Zero.StringFixed(2)
	}
	return d.StringFixed(2)
}

// Variance formats a derived variance, or a dash when there is none.
func Variance(v *float64) string {
	if v == nil {
		return noValue
	}
	return Signed(*v)
}

// Weight formats a recorded weight: numbers with two decimal places, blank
// weights as empty and anything else verbatim.
func Weight(w domain.Weight) string {
	if v, ok := w.Float(); ok {
		return Number(v)
	}
	return strings.TrimSpace(w.String())
}
