package render

import (
	"math"

	"github.com/matzehuels/diamondplot/pkg/chart"
)

// Rect is an axis-aligned pixel rectangle with its origin at the top left.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Projector maps figure coordinates to pixels. Pixel y grows downward, so
// larger data values land nearer the top of the plot.
type Projector struct {
	Plot Rect
	X, Y chart.Extent
}

// NewProjector lays the figure's bounds over the area inside its margins.
func NewProjector(fig *chart.Figure) Projector {
	m := fig.Config.Margin
	x, y := fig.Bounds()
	return Projector{
		Plot: Rect{
			X: m.Left,
			Y: m.Top,
			W: math.Max(1, float64(fig.Layout.Width)-m.Left-m.Right),
			H: math.Max(1, float64(fig.Layout.Height)-m.Top-m.Bottom),
		},
		X: x,
		Y: y,
	}
}

// PX maps a horizontal coordinate in the given reference system.
func (p Projector) PX(v float64, ref chart.Ref) float64 {
	if ref == chart.RefXDomain {
		return p.Plot.X + v*p.Plot.W
	}
	return p.Plot.X + frac(v, p.X)*p.Plot.W
}

// PY maps a vertical coordinate in the given reference system.
func (p Projector) PY(v float64, ref chart.Ref) float64 {
	if ref == chart.RefYDomain {
		return p.Plot.Bottom() - v*p.Plot.H
	}
	return p.Plot.Bottom() - frac(v, p.Y)*p.Plot.H
}

// Point maps a data point.
func (p Projector) Point(x, y float64) (float64, float64) {
	return p.PX(x, chart.RefX), p.PY(y, chart.RefY)
}

// Contains reports whether a pixel lies inside the plot rectangle, with a
// half-pixel tolerance on every edge.
func (p Projector) Contains(px, py float64) bool {
	const eps = 0.5
	return px >= p.Plot.X-eps && px <= p.Plot.Right()+eps &&
		py >= p.Plot.Y-eps && py <= p.Plot.Bottom()+eps
}

func frac(v float64, e chart.Extent) float64 {
	if e.Hi == e.Lo {
		return 0.5
	}
	return (v - e.Lo) / (e.Hi - e.Lo)
}

// Tick is a labelled axis position.
type Tick struct {
	Value float64
	Pos   float64 // pixel x for the x axis, pixel y for the y axis
	Label string
}

// XTicks returns the x axis ticks.
func (p Projector) XTicks(n int) []Tick {
	return p.ticks(p.X, n, func(v float64) float64 { return p.PX(v, chart.RefX) })
}

// YTicks returns the y axis ticks.
func (p Projector) YTicks(n int) []Tick {
	return p.ticks(p.Y, n, func(v float64) float64 { return p.PY(v, chart.RefY) })
}

func (p Projector) ticks(e chart.Extent, n int, pos func(float64) float64) []Tick {
	vals := chart.Ticks(e.Lo, e.Hi, n)
	step := 1.0
	if len(vals) > 1 {
		step = vals[1] - vals[0]
	}
	out := make([]Tick, len(vals))
	for i, v := range vals {
		out[i] = Tick{Value: v, Pos: pos(v), Label: chart.FormatTick(v, step)}
	}
	return out
}
