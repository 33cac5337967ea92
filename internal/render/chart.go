package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"weightlog/internal/analysis/daterange"
	"weightlog/internal/domain"
	"weightlog/internal/services/charts"
)

// Format is an image output format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

var (
	// ErrNoData is returned when a chart has no points to draw.
	ErrNoData = errors.New("nothing to plot in the selected range")
	// ErrUnknownFormat is returned for anything but png or svg.
	ErrUnknownFormat = errors.New("unknown image format (want png or svg)")
)

// Chart kinds.
const (
	KindWeight   = "weight"
	KindVariance = "variance"
)

// Default image size in pixels.
const (
	Width  = 960
	Height = 480
)

var (
	weightColor   = drawing.ColorFromHex("4ade80")
	varianceColor = drawing.ColorFromHex("f97316")
	startColor    = drawing.ColorFromHex("60a5fa")
	targetColor   = drawing.ColorFromHex("ef4444")
	trendColor    = drawing.ColorFromHex("60a5fa")
	guideDash     = []float64{6, 4}
)

// ParseFormat maps "png" or "svg" (case-insensitive, leading dot allowed) to a
// Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))); f {
	case FormatPNG, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatForPath picks the format from a file name's extension.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// Draw renders the chart of the given kind to w.
func Draw(kind string, v charts.View, w io.Writer, f Format) error {
	switch kind {
	case KindWeight:
		return WeightChart(v, w, f)
	case KindVariance:
		return VarianceChart(v, w, f)
	default:
		return fmt.Errorf("unknown chart %q (want %s or %s)", kind, KindWeight, KindVariance)
	}
}

// WeightChart draws the weight series with its guides and trend.
func WeightChart(v charts.View, w io.Writer, f Format) error {
	times := make([]time.Time, 0, len(v.Weights))
	ys := make([]float64, 0, len(v.Weights))
	for _, p := range v.Weights {
		t, ok := daterange.Parse(p.Date)
		if !ok {
			continue
		}
		times = append(times, t)
		ys = append(ys, p.Weight)
	}
	if len(times) == 0 {
		return ErrNoData
	}

	var series []chart.Series
	if v.StartGuide != nil {
		series = append(series, flat("Start weight", times, *v.StartGuide, startColor))
	}
	if v.TargetGuide != nil {
		series = append(series, flat("Target weight", times, *v.TargetGuide, targetColor))
	}
	series = append(series, timeSeries("Weight", times, ys, chart.Style{
		StrokeColor: weightColor,
		StrokeWidth: 2,
		DotColor:    weightColor,
		DotWidth:    3,
	}))
	if len(v.WeightTrend) == len(times) {
		series = append(series, timeSeries("Trend", times, v.WeightTrend, dashed(trendColor)))
	}

	yAxis := chart.YAxis{Name: "Weight"}
	if v.Bounds != nil {
		if r := yRange(*v.Bounds, ys); r != nil {
			yAxis.Range = r
		}
	}
	return draw("Weight over time", yAxis, series, w, f)
}

// VarianceChart draws the day-over-day changes and their trend.
func VarianceChart(v charts.View, w io.Writer, f Format) error {
	times := make([]time.Time, 0, len(v.Variances))
	ys := make([]float64, 0, len(v.Variances))
	trend := make([]float64, 0, len(v.VarianceTrend))
	for i, p := range v.Variances {
		t, ok := daterange.Parse(p.Date)
		if !ok {
			continue
		}
		times = append(times, t)
		ys = append(ys, p.Variance)
		if i < len(v.VarianceTrend) {
			trend = append(trend, v.VarianceTrend[i])
		}
	}
	if len(times) == 0 {
		return ErrNoData
	}

	series := []chart.Series{timeSeries("Daily variance", times, ys, chart.Style{
		StrokeColor: varianceColor,
		StrokeWidth: 2,
		DotColor:    varianceColor,
		DotWidth:    3,
	})}
	if len(v.VarianceTrend) > 0 && len(trend) == len(times) {
		series = append(series, timeSeries("Trend", times, trend, dashed(trendColor)))
	}
	return draw("Daily variance", chart.YAxis{Name: "Change"}, series, w, f)
}

func draw(title string, yAxis chart.YAxis, series []chart.Series, w io.Writer, f Format) error {
	ch := chart.Chart{
		Title:      title,
		Width:      Width,
		Height:     Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat(daterange.Layout),
		},
		YAxis:  yAxis,
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	if err := ch.Render(f.provider(), w); err != nil {
		return fmt.Errorf("render %s: %w", strings.ToLower(title), err)
	}
	return nil
}

// timeSeries builds a series, padding a single point to two X values since
// go-chart cannot derive a range from one.
func timeSeries(name string, times []time.Time, ys []float64, st chart.Style) chart.TimeSeries {
	if len(times) == 1 {
		return chart.TimeSeries{
			Name:    name,
			XValues: []time.Time{times[0], times[0].Add(24 * time.Hour)},
			YValues: []float64{ys[0], ys[0]},
			Style:   st,
		}
	}
	return chart.TimeSeries{Name: name, XValues: times, YValues: ys, Style: st}
}

// flat is a dashed horizontal guide at y across times.
func flat(name string, times []time.Time, y float64, c drawing.Color) chart.TimeSeries {
	ys := make([]float64, len(times))
	for i := range ys {
		ys[i] = y
	}
	return timeSeries(name, times, ys, dashed(c))
}

func dashed(c drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor:     c,
		StrokeWidth:     1,
		StrokeDashArray: guideDash,
	}
}

// yRange returns an explicit y range from the known limits. A missing limit
// falls back to the data extreme on that side.
func yRange(b domain.Bounds, ys []float64) *chart.ContinuousRange {
	switch {
	case b.Disabled:
		return nil
	case b.Enabled():
		return &chart.ContinuousRange{Min: b.Min, Max: b.Max}
	}
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	if b.HasMin {
		lo = b.Min
	}
	if b.HasMax {
		hi = b.Max
	}
	if lo >= hi {
		return nil
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}
