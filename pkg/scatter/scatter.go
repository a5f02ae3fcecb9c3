package scatter

import (
	"fmt"
	"slices"

	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/color"
	"github.com/matzehuels/diamondplot/pkg/dataset"
	"github.com/matzehuels/diamondplot/pkg/errors"
	"github.com/matzehuels/diamondplot/pkg/fit"
)

// Figure kinds recorded on built figures.
const (
	KindScatter    = "scatter"
	KindRegression = "regression"
)

// DefaultHoverName and DefaultHoverData match the usual FanGraphs
// leaderboard export.
const DefaultHoverName = "Name"

var DefaultHoverData = []string{"Team", "PA"}

// Options names the dataset columns a scatter chart is drawn from.
type Options struct {
	X     string // horizontal axis
	Y     string // vertical axis
	Color string // marker colour; numeric columns use the colour scale, text columns a palette. Empty draws plain markers.

	// HoverName labels each point. Empty means DefaultHoverName; "-" disables it.
	HoverName string
	// HoverData lists extra columns shown on hover. Nil means DefaultHoverData.
	HoverData []string
}

func (o Options) withDefaults() Options {
	if o.HoverName == "" {
		o.HoverName = DefaultHoverName
	}
	if o.HoverData == nil {
		o.HoverData = DefaultHoverData
	}
	return o
}

// Scatter plots Y against X with dotted lines through the mean of each column,
// labelled "Mean <column>".
func Scatter(ds *dataset.Dataset, opts Options, cfg chart.Config) (*chart.Figure, error) {
	opts = opts.withDefaults()
	fig, err := markers(ds, opts, cfg)
	if err != nil {
		return nil, err
	}
	fig.SetKind(KindScatter)

	my, err := ds.Mean(opts.Y)
	if err != nil {
		return nil, err
	}
	mx, err := ds.Mean(opts.X)
	if err != nil {
		return nil, err
	}

	ref := chart.Line{Color: cfg.ReferenceLineColor, Width: 1, Dash: chart.DashDot}
	fig.AddHLine(my, ref, "Mean "+opts.Y)
	fig.AddVLine(mx, ref, "Mean "+opts.X)
	return fig, nil
}

// Regression holds the three lines drawn by [WithRegression].
type Regression struct {
	Fit   fit.Line
	Upper fit.Line // Fit shifted up by Sigma
	Lower fit.Line // Fit shifted down by Sigma
	Sigma float64  // sample standard deviation of y
	X     []float64
}

// FitLines fits y on x and derives the ±1 standard deviation lines, sampled
// at cfg.RegressionPoints evenly spaced x values between the column extremes.
func FitLines(ds *dataset.Dataset, x, y string, cfg chart.Config) (Regression, error) {
	xs, err := ds.Floats(x)
	if err != nil {
		return Regression{}, err
	}
	ys, err := ds.Floats(y)
	if err != nil {
		return Regression{}, err
	}
	line, err := fit.Linear(xs, ys)
	if err != nil {
		return Regression{}, errors.Wrap(errors.GetCode(err), err, "fit %s on %s", y, x)
	}
	sigma, err := ds.Std(y)
	if err != nil {
		return Regression{}, err
	}
	lo, err := ds.Min(x)
	if err != nil {
		return Regression{}, err
	}
	hi, err := ds.Max(x)
	if err != nil {
		return Regression{}, err
	}
	return Regression{
		Fit:   line,
		Upper: line.Shift(sigma),
		Lower: line.Shift(-sigma),
		Sigma: sigma,
		X:     fit.Linspace(lo, hi, cfg.RegressionPoints),
	}, nil
}

// WithRegression plots Y against X with the least-squares line and the lines
// one standard deviation of Y above and below it, all dashed in the
// regression colour at the configured alpha.
func WithRegression(ds *dataset.Dataset, opts Options, cfg chart.Config) (*chart.Figure, error) {
	opts = opts.withDefaults()
	fig, err := markers(ds, opts, cfg)
	if err != nil {
		return nil, err
	}
	fig.SetKind(KindRegression)

	reg, err := FitLines(ds, opts.X, opts.Y, cfg)
	if err != nil {
		return nil, err
	}
	rgba, err := color.HexToRGBA(cfg.RegressionColor, cfg.RegressionAlpha)
	if err != nil {
		return nil, err
	}
	style := chart.Line{Color: rgba.String(), Width: cfg.RegressionWidth, Dash: chart.DashDash}

	for _, l := range []struct {
		name string
		line fit.Line
	}{
		{"regression", reg.Fit},
		{"+1 st_dev", reg.Upper},
		{"-1 st_dev", reg.Lower},
	} {
		fig.AddTrace(chart.Trace{
			Name: l.name,
			Mode: chart.ModeLines,
			X:    reg.X,
			Y:    l.line.Sample(reg.X),
			Line: style,
		})
	}
	return fig, nil
}

// markers creates the figure and its point layer.
func markers(ds *dataset.Dataset, opts Options, cfg chart.Config) (*chart.Figure, error) {
	for _, name := range []string{opts.X, opts.Y} {
		if err := errors.ValidateColumnName(name); err != nil {
			return nil, err
		}
	}
	xs, err := ds.Floats(opts.X)
	if err != nil {
		return nil, err
	}
	ys, err := ds.Floats(opts.Y)
	if err != nil {
		return nil, err
	}
	names, hover, err := hoverColumns(ds, opts)
	if err != nil {
		return nil, err
	}

	fig := chart.New(cfg, fmt.Sprintf("%s vs %s", opts.X, opts.Y))
	fig.Layout.XAxis.Title = opts.X
	fig.Layout.YAxis.Title = opts.Y

	base := chart.Trace{
		Mode:  chart.ModeMarkers,
		X:     xs,
		Y:     ys,
		Text:  names,
		Hover: hover,
		Marker: chart.Marker{
			Size:      cfg.MarkerSize,
			Color:     color.D3[0],
			LineWidth: cfg.MarkerLineWidth,
			LineColor: cfg.MarkerLineColor,
		},
	}

	if opts.Color == "" {
		fig.AddTrace(base)
		return fig, nil
	}

	labels, err := ds.Strings(opts.Color)
	if err != nil {
		return nil, err
	}
	if !ds.IsNumeric(opts.Color) {
		for _, t := range byCategory(base, labels) {
			fig.AddTrace(t)
		}
		return fig, nil
	}

	values, err := ds.Floats(opts.Color)
	if err != nil {
		return nil, err
	}
	present := dataset.Present(values)
	base.Marker.Values = values
	base.Marker.ColorScale = cfg.Scale().Stops()
	if len(present) > 0 {
		base.Marker.CMin, base.Marker.CMax = slices.Min(present), slices.Max(present)
	}
	base.Marker.ShowScale = true
	base.Marker.ColorBarTitle = opts.Color
	fig.AddTrace(base)
	return fig, nil
}

func hoverColumns(ds *dataset.Dataset, opts Options) ([]string, []chart.HoverField, error) {
	var names []string
	if opts.HoverName != "-" {
		var err error
		if names, err = ds.Strings(opts.HoverName); err != nil {
			return nil, nil, err
		}
	}
	hover := make([]chart.HoverField, 0, len(opts.HoverData))
	for _, col := range opts.HoverData {
		vals, err := ds.Strings(col)
		if err != nil {
			return nil, nil, err
		}
		hover = append(hover, chart.HoverField{Name: col, Values: vals})
	}
	return names, hover, nil
}

// byCategory splits base into one legend entry per distinct label, in order
// of first appearance, coloured from the D3 palette.
func byCategory(base chart.Trace, labels []string) []chart.Trace {
	index := make(map[string]int)
	var traces []chart.Trace
	for row, label := range labels {
		i, ok := index[label]
		if !ok {
			i = len(traces)
			index[label] = i
			t := chart.Trace{
				Name:       label,
				Mode:       base.Mode,
				Marker:     base.Marker,
				ShowLegend: true,
			}
			t.Marker.Color = color.D3[i%len(color.D3)]
			for _, h := range base.Hover {
				t.Hover = append(t.Hover, chart.HoverField{Name: h.Name})
			}
			traces = append(traces, t)
		}
		t := &traces[i]
		t.X = append(t.X, base.X[row])
		t.Y = append(t.Y, base.Y[row])
		if base.Text != nil {
			t.Text = append(t.Text, base.Text[row])
		}
		for k, h := range base.Hover {
			t.Hover[k].Values = append(t.Hover[k].Values, h.Values[row])
		}
	}
	return traces
}
