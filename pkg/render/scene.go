package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/color"
)

const (
	// arrowDX and arrowDY offset an arrowed label from its point, in pixels.
	arrowDX = -10
	arrowDY = -30

	colorBarGap    = 10
	colorBarWidth  = 15
	colorBarBands  = 48
	colorBarTicks  = 6
	legendRowGap   = 20
	legendFontSize = 12
)

// Font is a resolved text style.
type Font struct {
	Family string
	Size   float64
	Paint  Paint
}

// Stroke is a resolved line style. Dash is nil for solid lines.
type Stroke struct {
	Paint Paint
	Width float64
	Dash  []float64
}

// Path is a polyline drawn for a line-mode trace.
type Path struct {
	Points [][2]float64
	Stroke Stroke
}

// Marker is one drawn data point.
type Marker struct {
	X, Y, R float64
	Fill    Paint
	Outline Stroke
	// Hover is the tooltip text: the hover name, then "field: value" lines.
	Hover string
}

// ShapeGeom is a shape in pixels. For circles the bounding box is given.
type ShapeGeom struct {
	Type           chart.ShapeType
	X0, Y0, X1, Y1 float64
	Stroke         Stroke
	Fill           *Paint
	// Clip is set for shapes positioned in data coordinates.
	Clip bool
}

// Arrow runs from a label (tail) to the annotated point (head).
type Arrow struct {
	X0, Y0, X1, Y1 float64
}

// Label is positioned text. HAlign is "left", "center" or "right"; Baseline
// is the pixel y of the text baseline.
type Label struct {
	Text     string
	X        float64
	Baseline float64
	HAlign   string
	Font     Font
	Rotate   float64 // degrees, about (X, Baseline)
	Arrow    *Arrow
}

// ColorBar is the legend of a continuous colour scale.
type ColorBar struct {
	Box   Rect
	Bands []Paint // top to bottom
	Ticks []Tick  // Pos is the pixel y
	Title string
}

// LegendEntry is one row of the categorical legend.
type LegendEntry struct {
	Name string
	Fill Paint
	X, Y float64
}

// Scene is a figure resolved to pixels.
type Scene struct {
	ID             string
	Width, Height  float64
	Background     Paint
	PlotBackground Paint
	Grid           Stroke
	Proj           Projector

	XTicks, YTicks []Tick
	TickFont       Font

	Paths    []Path
	Markers  []Marker
	Shapes   []ShapeGeom
	Labels   []Label
	ColorBar *ColorBar
	Legend   []LegendEntry
}

// Build resolves fig into a Scene.
func Build(fig *chart.Figure) Scene {
	cfg := fig.Config
	p := NewProjector(fig)
	text := ParsePaint(cfg.TextColor)

	s := Scene{
		ID:             fig.ID,
		Width:          float64(fig.Layout.Width),
		Height:         float64(fig.Layout.Height),
		Background:     ParsePaint(cfg.Background),
		PlotBackground: ParsePaint(cfg.PlotBackground),
		Grid:           Stroke{Paint: ParsePaint(cfg.GridColor), Width: 1},
		Proj:           p,
		XTicks:         p.XTicks(fig.Layout.XAxis.NTicks),
		YTicks:         p.YTicks(fig.Layout.YAxis.NTicks),
		TickFont:       Font{Family: cfg.FontFamily, Size: cfg.TickFontSize, Paint: text},
	}

	for _, t := range fig.Traces {
		if t.Mode == chart.ModeLines {
			s.Paths = append(s.Paths, buildPath(p, t))
			continue
		}
		s.Markers = append(s.Markers, buildMarkers(p, t, fig.Layout)...)
		if t.Marker.ShowScale && len(t.Marker.ColorScale) > 0 && s.ColorBar == nil {
			s.ColorBar = buildColorBar(p, t.Marker)
		}
		if t.ShowLegend && t.Name != "" {
			s.Legend = append(s.Legend, LegendEntry{
				Name: t.Name,
				Fill: ParsePaint(t.Marker.Color),
				X:    p.Plot.Right() + colorBarGap,
				Y:    p.Plot.Y + float64(len(s.Legend))*legendRowGap + legendFontSize,
			})
		}
	}

	for _, sh := range fig.Shapes {
		s.Shapes = append(s.Shapes, buildShape(p, sh))
	}
	for _, a := range fig.Annotations {
		s.Labels = append(s.Labels, buildLabel(p, a))
	}
	s.Labels = append(s.Labels, titles(fig, p, text)...)
	return s
}

func stroke(l chart.Line) Stroke {
	return Stroke{Paint: ParsePaint(l.Color), Width: l.Width, Dash: chart.DashArray(l.Dash, l.Width)}
}

func buildPath(p Projector, t chart.Trace) Path {
	path := Path{Stroke: stroke(t.Line)}
	for i := range min(len(t.X), len(t.Y)) {
		if math.IsNaN(t.X[i]) || math.IsNaN(t.Y[i]) {
			continue
		}
		x, y := p.Point(t.X[i], t.Y[i])
		path.Points = append(path.Points, [2]float64{x, y})
	}
	return path
}

func buildMarkers(p Projector, t chart.Trace, l chart.Layout) []Marker {
	m := t.Marker
	base := ParsePaint(m.Color)
	var scale *color.Scale
	if len(m.Values) > 0 && len(m.ColorScale) > 0 {
		if sc, err := color.NewScale(m.ColorScale); err == nil {
			scale = &sc
		}
	}
	outline := Stroke{Paint: ParsePaint(m.LineColor), Width: m.LineWidth}

	out := make([]Marker, 0, len(t.X))
	for i := range min(len(t.X), len(t.Y)) {
		if math.IsNaN(t.X[i]) || math.IsNaN(t.Y[i]) {
			continue
		}
		x, y := p.Point(t.X[i], t.Y[i])
		fill := base
		if scale != nil && i < len(m.Values) {
			fill = Paint{C: scale.At(color.Normalize(m.Values[i], m.CMin, m.CMax)), A: 1}
		}
		out = append(out, Marker{
			X: x, Y: y, R: m.Size / 2,
			Fill:    fill,
			Outline: outline,
			Hover:   hoverText(t, i, l),
		})
	}
	return out
}

func hoverText(t chart.Trace, i int, l chart.Layout) string {
	var lines []string
	if i < len(t.Text) && t.Text[i] != "" {
		lines = append(lines, t.Text[i])
	}
	lines = append(lines,
		fmt.Sprintf("%s: %g", axisName(l.XAxis.Title, "x"), t.X[i]),
		fmt.Sprintf("%s: %g", axisName(l.YAxis.Title, "y"), t.Y[i]),
	)
	for _, h := range t.Hover {
		if i < len(h.Values) {
			lines = append(lines, h.Name+": "+h.Values[i])
		}
	}
	return strings.Join(lines, "\n")
}

func axisName(title, fallback string) string {
	if title == "" {
		return fallback
	}
	return title
}

func buildColorBar(p Projector, m chart.Marker) *ColorBar {
	scale, err := color.NewScale(m.ColorScale)
	if err != nil {
		return nil
	}
	cb := &ColorBar{
		Box:   Rect{X: p.Plot.Right() + colorBarGap, Y: p.Plot.Y, W: colorBarWidth, H: p.Plot.H},
		Title: m.ColorBarTitle,
	}
	for i := range colorBarBands {
		t := 1 - (float64(i)+0.5)/colorBarBands
		cb.Bands = append(cb.Bands, Paint{C: scale.At(t), A: 1})
	}
	vals := chart.Ticks(m.CMin, m.CMax, colorBarTicks)
	step := 1.0
	if len(vals) > 1 {
		step = vals[1] - vals[0]
	}
	for _, v := range vals {
		y := cb.Box.Bottom() - color.Normalize(v, m.CMin, m.CMax)*cb.Box.H
		cb.Ticks = append(cb.Ticks, Tick{Value: v, Pos: y, Label: chart.FormatTick(v, step)})
	}
	return cb
}

func buildShape(p Projector, sh chart.Shape) ShapeGeom {
	g := ShapeGeom{
		Type:   sh.Type,
		X0:     p.PX(sh.X0, sh.XRef),
		X1:     p.PX(sh.X1, sh.XRef),
		Y0:     p.PY(sh.Y0, sh.YRef),
		Y1:     p.PY(sh.Y1, sh.YRef),
		Stroke: stroke(sh.Line),
		Clip:   sh.XRef == chart.RefX && sh.YRef == chart.RefY,
	}
	if sh.FillColor != "" {
		fill := ParsePaint(sh.FillColor)
		g.Fill = &fill
	}
	return g
}

func buildLabel(p Projector, a chart.Annotation) Label {
	x, y := p.PX(a.X, a.XRef), p.PY(a.Y, a.YRef)
	l := Label{Text: a.Text, Font: resolveFont(a.Font)}
	if a.ShowArrow {
		tx, ty := x+arrowDX, y+arrowDY
		l.X, l.HAlign = tx, "center"
		l.Baseline = Baseline(ty, "middle", l.Font.Size)
		l.Arrow = &Arrow{X0: tx, Y0: ty + l.Font.Size*0.6, X1: x, Y1: y}
		return l
	}
	l.X = x
	l.HAlign = a.XAnchor
	if l.HAlign == "" {
		l.HAlign = "center"
	}
	l.Baseline = Baseline(y, a.YAnchor, l.Font.Size)
	return l
}

func resolveFont(f chart.Font) Font {
	c := f.Color
	if c == "" {
		c = "black"
	}
	return Font{Family: f.Family, Size: f.Size, Paint: ParsePaint(c)}
}

// Baseline returns the text baseline that puts a line of the given size at
// y with the vertical anchor "top", "bottom" or (otherwise) "middle".
func Baseline(y float64, anchor string, size float64) float64 {
	switch anchor {
	case "top":
		return y + size*0.8
	case "bottom":
		return y - size*0.2
	default:
		return y + size*0.35
	}
}

func titles(fig *chart.Figure, p Projector, text Paint) []Label {
	cfg := fig.Config
	var out []Label
	if fig.Layout.Title != "" {
		out = append(out, Label{
			Text: fig.Layout.Title, X: p.Plot.X, HAlign: "left",
			Baseline: Baseline(cfg.Margin.Top/2, "middle", cfg.TitleFontSize),
			Font:     Font{Family: cfg.FontFamily, Size: cfg.TitleFontSize, Paint: text},
		})
	}
	axisFont := Font{Family: cfg.FontFamily, Size: cfg.TickFontSize + 2, Paint: text}
	if t := fig.Layout.XAxis.Title; t != "" {
		out = append(out, Label{
			Text: t, X: p.Plot.X + p.Plot.W/2, HAlign: "center",
			Baseline: p.Plot.Bottom() + cfg.Margin.Bottom*0.6,
			Font:     axisFont,
		})
	}
	if t := fig.Layout.YAxis.Title; t != "" {
		out = append(out, Label{
			Text: t, X: p.Plot.X - cfg.Margin.Left*0.6, HAlign: "center",
			Baseline: p.Plot.Y + p.Plot.H/2,
			Font:     axisFont,
			Rotate:   -90,
		})
	}
	return out
}

// ArrowHead returns the triangle at the head of a, with sides of length size.
func ArrowHead(a *Arrow, size float64) [3][2]float64 {
	dx, dy := a.X1-a.X0, a.Y1-a.Y0
	n := math.Hypot(dx, dy)
	if n == 0 {
		return [3][2]float64{{a.X1, a.Y1}, {a.X1, a.Y1}, {a.X1, a.Y1}}
	}
	ux, uy := dx/n, dy/n
	bx, by := a.X1-ux*size, a.Y1-uy*size
	half := size / 2
	return [3][2]float64{
		{a.X1, a.Y1},
		{bx - uy*half, by + ux*half},
		{bx + uy*half, by - ux*half},
	}
}
