package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"weightlog/internal/analysis/axis"
	"weightlog/internal/analysis/daterange"
	"weightlog/internal/analysis/trend"
	"weightlog/internal/domain"
	"weightlog/internal/render"
	"weightlog/internal/services/charts"
	"weightlog/internal/store"
)

const millisPerDay = 24 * 60 * 60 * 1000

// filterFlags are the chart selection flags shared by trend and chart.
type filterFlags struct {
	year, from, to, quick string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.year, "year", daterange.AllYears, "only this year (or \"all\")")
	cmd.Flags().StringVar(&f.from, "from", "", "first date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "last date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.quick, "quick", "", "week, month or year ending at the latest entry (overrides --from/--to)")
}

func (f *filterFlags) resolve() (daterange.Filter, error) {
	filter := daterange.Filter{Year: f.year}
	for _, p := range []struct {
		flag, value string
		dst         *string
	}{{"from", f.from, &filter.From}, {"to", f.to, &filter.To}} {
		if p.value == "" {
			continue
		}
		if *p.dst = daterange.NormalizeDate(p.value); *p.dst == "" {
			return daterange.Filter{}, fmt.Errorf("--%s: invalid date %q (want YYYY-MM-DD)", p.flag, p.value)
		}
	}
	return appCtx.Charts.Resolve(filter, f.quick)
}

func rangeCmd() *cobra.Command {
	var quick string
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the full date range, or a quick range ending at the latest entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := appCtx.Tracker.Dataset()
			if err != nil {
				return err
			}
			r := daterange.Default(d.Entries)
			if quick != "" {
				kind, err := daterange.ParseKind(quick)
				if err != nil {
					return err
				}
				r = daterange.Quick(d.Entries, kind)
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), r)
			}
			if r.IsZero() {
				fmt.Fprintln(cmd.OutOrStdout(), "No dated entries.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "From %s to %s\n", r.From, r.To)
			return nil
		},
	}
	cmd.Flags().StringVarP(&quick, "quick", "q", "", "week, month or year")
	return cmd
}

func trendCmd() *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Print the least-squares trend of weights and daily changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ff.resolve()
			if err != nil {
				return err
			}
			d, err := appCtx.Tracker.Dataset()
			if err != nil {
				return err
			}
			// Always fit, whatever the saved trend toggle says.
			v := appCtx.Charts.View(d, f, domain.Prefs{ShowTrend: true})

			if asJSON {
				return printJSON(cmd.OutOrStdout(), struct {
					Filter        daterange.Filter       `json:"filter"`
					Weights       []charts.WeightPoint   `json:"weights"`
					WeightTrend   []float64              `json:"weightTrend"`
					Variances     []charts.VariancePoint `json:"variances"`
					VarianceTrend []float64              `json:"varianceTrend"`
				}{f, v.Weights, v.WeightTrend, v.Variances, v.VarianceTrend})
			}

			out := cmd.OutOrStdout()
			if len(v.Weights) == 0 {
				fmt.Fprintln(out, "No weights in range; no trend.")
				return nil
			}
			if line, ok := weightLine(v.Weights); ok {
				fmt.Fprintf(out, "Weight trend: %s per day\n", render.Signed(line.Slope*millisPerDay))
			}
			for i, p := range v.Weights {
				fmt.Fprintf(out, "  %s  %8s  trend %8s\n", p.Date, render.Number(p.Weight), render.Number(v.WeightTrend[i]))
			}
			if len(v.Variances) > 0 {
				fmt.Fprintln(out, "Daily change trend:")
				for i, p := range v.Variances {
					fmt.Fprintf(out, "  %s  %8s  trend %8s\n", p.Date, render.Signed(p.Variance), render.Signed(v.VarianceTrend[i]))
				}
			}
			return nil
		},
	}
	ff.register(cmd)
	return cmd
}

func weightLine(ws []charts.WeightPoint) (trend.Line, bool) {
	points := make([]domain.Point, 0, len(ws))
	for _, w := range ws {
		if x, ok := daterange.EpochMillis(w.Date); ok {
			points = append(points, domain.Point{X: x, Y: w.Weight})
		}
	}
	return trend.Estimate(points)
}

func boundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Print the weight chart's y-axis bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := appCtx.Tracker.Dataset()
			if err != nil {
				return err
			}
			b := axis.YBounds(d.Entries, d.StartWeight, d.TargetWeight)
			if asJSON {
				return printJSON(cmd.OutOrStdout(), b)
			}
			out := cmd.OutOrStdout()
			if b.Disabled {
				fmt.Fprintln(out, "Bounds disabled (min would not be below max); axis auto-scales.")
				return nil
			}
			fmt.Fprintf(out, "Min: %s\nMax: %s\n", bound(b.Min, b.HasMin), bound(b.Max, b.HasMax))
			return nil
		},
	}
}

func bound(v float64, ok bool) string {
	if !ok {
		return "auto"
	}
	return render.Number(v)
}

func chartCmd() *cobra.Command {
	var (
		ff  filterFlags
		out string
	)
	cmd := &cobra.Command{
		Use:       "chart <weight|variance>",
		Short:     "Render the weight or variance chart to a PNG or SVG file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{render.KindWeight, render.KindVariance},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.FormatForPath(out)
			if err != nil {
				return err
			}
			f, err := ff.resolve()
			if err != nil {
				return err
			}
			v, err := appCtx.Charts.Current(f)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := render.Draw(args[0], v, &buf, format); err != nil {
				return err
			}
			if err := store.WriteFile(out, buf.Bytes()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.png or .svg)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func prefsCmd() *cobra.Command {
	var guides, showTrend bool
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or toggle chart guides/bounds and trend lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := appCtx.Prefs.Get()
			changed := false
			if cmd.Flags().Changed("guides") {
				p.ShowGuides, changed = guides, true
			}
			if cmd.Flags().Changed("trend") {
				p.ShowTrend, changed = showTrend, true
			}
			if changed {
				if err := appCtx.Prefs.Set(p); err != nil {
					return err
				}
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Guides & bounds: %s\nTrend:           %s\n", onOff(p.ShowGuides), onOff(p.ShowTrend))
			return nil
		},
	}
	cmd.Flags().BoolVar(&guides, "guides", true, "show start/target guides and enforce y-axis bounds")
	cmd.Flags().BoolVar(&showTrend, "trend", true, "show trend lines")
	return cmd
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
