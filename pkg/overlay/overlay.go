// Package overlay decorates an existing chart with percentile regions, text
// and shapes.
//
// Every function mutates the figure it is given and returns the same pointer,
// so overlays chain onto a builder call:
//
//	fig, err := scatter.Scatter(ds, opts, cfg)
//	fig, err = overlay.AddPercentiles(fig, ds, "xwOBA", "wOBA", 0.9, 0.1)
//	overlay.AddAnnotation(fig, "Judge", 0.477, 0.476, overlay.WithArrow())
//
// Colours and fonts come from the figure's own [chart.Config].
package overlay

import (
	"fmt"
	"math"

	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/dataset"
)

// PercentileLabel formats a quantile threshold as "<n>th percentile", with n
// the threshold times 100 truncated toward zero.
func PercentileLabel(p float64) string {
	return fmt.Sprintf("%dth percentile", int(math.Trunc(p*100)))
}

type corner struct{ x, y float64 }

func quantiles(ds *dataset.Dataset, x, y string, q float64) (corner, error) {
	qx, err := ds.Quantile(x, q)
	if err != nil {
		return corner{}, err
	}
	qy, err := ds.Quantile(y, q)
	if err != nil {
		return corner{}, err
	}
	return corner{qx, qy}, nil
}

// AddPercentiles outlines the region above the upper quantile of both columns
// and the region below the lower quantile, each with a dotted rectangle and a
// label in the configured upper/lower colour.
//
// The upper region spans from (Q(x, upper), Q(y, upper)) to the column
// maxima; the lower region from the column minima to (Q(x, lower),
// Q(y, lower)). Thresholds are not range checked here: values outside [0, 1]
// fail in the quantile lookup and leave fig unchanged.
func AddPercentiles(fig *chart.Figure, ds *dataset.Dataset, x, y string, upper, lower float64) (*chart.Figure, error) {
	var c [4]corner
	for i, q := range []float64{upper, 1, 0, lower} {
		var err error
		if c[i], err = quantiles(ds, x, y, q); err != nil {
			return fig, err
		}
	}
	hi, top, bottom, lo := c[0], c[1], c[2], c[3]
	cfg := fig.Config

	upperColor, lowerColor := cfg.UpperPercentileColor, cfg.LowerPercentileColor
	fig.AddShape(chart.Shape{
		Type: chart.ShapeRect,
		X0:   hi.x, Y0: hi.y, X1: top.x, Y1: top.y,
		Line: chart.Line{Color: upperColor, Width: cfg.OverlayWidth, Dash: chart.DashDot},
	})
	fig.AddAnnotation(chart.Annotation{
		Text: PercentileLabel(upper), X: hi.x, Y: top.y, ShowArrow: true,
		Font: chart.Font{Family: cfg.FontFamily, Size: cfg.PercentileFontSize, Color: upperColor},
	})

	fig.AddShape(chart.Shape{
		Type: chart.ShapeRect,
		X0:   bottom.x, Y0: bottom.y, X1: lo.x, Y1: lo.y,
		Line: chart.Line{Color: lowerColor, Width: cfg.OverlayWidth, Dash: chart.DashDot},
	})
	fig.AddAnnotation(chart.Annotation{
		Text: PercentileLabel(lower), X: bottom.x, Y: lo.y, ShowArrow: true,
		Font: chart.Font{Family: cfg.FontFamily, Size: cfg.PercentileFontSize, Color: lowerColor},
	})
	return fig, nil
}

// AnnotationOption customises [AddAnnotation].
type AnnotationOption func(*chart.Annotation)

// WithTextColor sets the annotation colour (default black).
func WithTextColor(c string) AnnotationOption {
	return func(a *chart.Annotation) { a.Font.Color = c }
}

// WithArrow draws an arrow from the label to its point.
func WithArrow() AnnotationOption {
	return func(a *chart.Annotation) { a.ShowArrow = true }
}

// AddAnnotation places message at data coordinates (x, y).
func AddAnnotation(fig *chart.Figure, message string, x, y float64, opts ...AnnotationOption) *chart.Figure {
	a := chart.Annotation{
		Text: message, X: x, Y: y,
		Font: chart.Font{Family: fig.Config.FontFamily, Size: fig.Config.AnnotationFontSize, Color: "black"},
	}
	for _, opt := range opts {
		opt(&a)
	}
	return fig.AddAnnotation(a)
}

// ShapeOption customises [AddShape].
type ShapeOption func(*chart.Shape)

// WithShapeType selects the geometry (default circle).
func WithShapeType(t chart.ShapeType) ShapeOption {
	return func(s *chart.Shape) { s.Type = t }
}

// WithOutline sets the outline colour (default from the config, purple).
func WithOutline(c string) ShapeOption {
	return func(s *chart.Shape) { s.Line.Color = c }
}

// AddShape draws a dashed shape bounded by (x0, y0)-(x1, y1) in data
// coordinates.
func AddShape(fig *chart.Figure, x0, x1, y0, y1 float64, opts ...ShapeOption) *chart.Figure {
	s := chart.Shape{
		Type: chart.ShapeCircle,
		XRef: chart.RefX, YRef: chart.RefY,
		X0: x0, Y0: y0, X1: x1, Y1: y1,
		Line: chart.Line{Color: fig.Config.ShapeColor, Width: 2, Dash: chart.DashDash},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return fig.AddShape(s)
}
