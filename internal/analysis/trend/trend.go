package trend

import (
	"weightlog/internal/analysis/daterange"
	"weightlog/internal/domain"
)

// Line is a fitted y = Slope*x + Intercept.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 { return l.Slope*x + l.Intercept }

// Estimate computes the least-squares line through points.
//
// The slope is 0 when every x is equal (including a single point). ok is
// false for an empty input.
func Estimate(points []domain.Point) (line Line, ok bool) {
	n := len(points)
	if n == 0 {
		return Line{}, false
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var num, den float64
	for _, p := range points {
		dx := p.X - meanX
		num += dx * (p.Y - meanY)
		den += dx * dx
	}
	slope := 0.0
	if den != 0 {
		slope = num / den
	}
	return Line{Slope: slope, Intercept: meanY - slope*meanX}, true
}

// Fit returns the fitted value for every point's x, in input order, or nil
// when there are no points.
func Fit(points []domain.Point) []float64 {
	line, ok := Estimate(points)
	if !ok {
		return nil
	}
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = line.At(p.X)
	}
	return out
}

// FitIndexed fits ys against their positions 0..n-1.
func FitIndexed(ys []float64) []float64 {
	points := make([]domain.Point, len(ys))
	for i, y := range ys {
		points[i] = domain.Point{X: float64(i), Y: y}
	}
	return Fit(points)
}

// FitTimed fits ys against the epoch milliseconds of the matching ISO dates.
// Pairs whose date cannot be parsed are left out of the fit and get no value;
// the result is aligned with the pairs that were used.
func FitTimed(dates []string, ys []float64) []float64 {
	points := make([]domain.Point, 0, len(ys))
	for i, y := range ys {
		if i >= len(dates) {
			break
		}
		x, ok := daterange.EpochMillis(dates[i])
		if !ok {
			continue
		}
		points = append(points, domain.Point{X: x, Y: y})
	}
	return Fit(points)
}
