package chart

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Ref selects the coordinate system of a shape or annotation position.
type Ref string

const (
	RefX       Ref = "x"
	RefY       Ref = "y"
	RefXDomain Ref = "x domain"
	RefYDomain Ref = "y domain"
)

// Dash is a line dash pattern name.
type Dash string

const (
	DashSolid       Dash = "solid"
	DashDot         Dash = "dot"
	DashDash        Dash = "dash"
	DashLongDash    Dash = "longdash"
	DashDashDot     Dash = "dashdot"
	DashLongDashDot Dash = "longdashdot"
)

// ShapeType names the geometry of a [Shape].
type ShapeType string

const (
	ShapeRect   ShapeType = "rect"
	ShapeCircle ShapeType = "circle"
	ShapeLine   ShapeType = "line"
)

// Mode selects how a trace draws its points.
type Mode string

const (
	ModeMarkers Mode = "markers"
	ModeLines   Mode = "lines"
)

// Line styles a stroke.
type Line struct {
	Color string
	Width float64
	Dash  Dash
}

// Font styles annotation text.
type Font struct {
	Family string
	Size   float64
	Color  string
}

// Marker styles the points of a marker trace. When Values is set each point
// is coloured by sampling ColorScale over [CMin, CMax]; otherwise Color applies.
type Marker struct {
	Size          float64
	Color         string
	Values        []float64
	ColorScale    []string
	CMin, CMax    float64
	ShowScale     bool
	ColorBarTitle string
	LineWidth     float64
	LineColor     string
}

// HoverField is one extra column shown when hovering a point.
type HoverField struct {
	Name   string
	Values []string
}

// Trace is a data series.
type Trace struct {
	Name       string
	Mode       Mode
	X, Y       []float64
	Text       []string // hover name per point
	Hover      []HoverField
	Marker     Marker
	Line       Line
	ShowLegend bool
}

// Shape is a geometric overlay bounded by (X0, Y0)-(X1, Y1).
type Shape struct {
	Type      ShapeType
	XRef      Ref
	YRef      Ref
	X0, Y0    float64
	X1, Y1    float64
	Line      Line
	FillColor string
}

// Annotation is a text label anchored at (X, Y). XAnchor is "left", "center"
// or "right"; YAnchor is "top", "middle" or "bottom". Empty anchors center.
type Annotation struct {
	Text      string
	X, Y      float64
	XRef      Ref
	YRef      Ref
	XAnchor   string
	YAnchor   string
	ShowArrow bool
	Font      Font
}

// Axis configures one axis.
type Axis struct {
	Title  string
	NTicks int
	// Range fixes the axis extent; nil autoranges from the data.
	Range *[2]float64
}

// Layout holds figure-level settings.
type Layout struct {
	Title  string
	Width  int
	Height int
	XAxis  Axis
	YAxis  Axis
}

// Figure is a mutable chart. Build one with [New], add elements, then hand it
// to a sink. A Figure is not safe for concurrent mutation.
type Figure struct {
	ID          string
	Kind        string
	Layout      Layout
	Traces      []Trace
	Shapes      []Shape
	Annotations []Annotation
	Config      Config
}

var figureNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/diamondplot/figure"))

// New creates an empty figure sized and ticked from cfg. The ID is derived
// from the title and config so identical inputs render identical output.
func New(cfg Config, title string) *Figure {
	return &Figure{
		ID: figureID("", title, cfg),
		Layout: Layout{
			Title:  title,
			Width:  cfg.Width,
			Height: cfg.Height,
			XAxis:  Axis{NTicks: cfg.XTicks},
			YAxis:  Axis{NTicks: cfg.YTicks},
		},
		Config: cfg,
	}
}

// SetKind records what builder produced the figure and re-derives the ID
// from kind, title and config. Figures of different kinds over the same
// columns get distinct IDs, so their SVG element ids do not clash when
// inlined on one page.
func (f *Figure) SetKind(kind string) *Figure {
	f.Kind = kind
	f.ID = figureID(kind, f.Layout.Title, f.Config)
	return f
}

func figureID(kind, title string, cfg Config) string {
	key := fmt.Sprintf("%s\x00%s\x00%+v", kind, title, cfg)
	return uuid.NewSHA1(figureNamespace, []byte(key)).String()
}

// AddTrace appends a data series.
func (f *Figure) AddTrace(t Trace) *Figure {
	if t.Mode == "" {
		t.Mode = ModeMarkers
	}
	f.Traces = append(f.Traces, t)
	return f
}

// AddShape appends a shape. Unset references default to data coordinates and
// an unset type to a rectangle.
func (f *Figure) AddShape(s Shape) *Figure {
	if s.Type == "" {
		s.Type = ShapeRect
	}
	if s.XRef == "" {
		s.XRef = RefX
	}
	if s.YRef == "" {
		s.YRef = RefY
	}
	f.Shapes = append(f.Shapes, s)
	return f
}

// AddAnnotation appends a text annotation. Unset references default to data
// coordinates.
func (f *Figure) AddAnnotation(a Annotation) *Figure {
	if a.XRef == "" {
		a.XRef = RefX
	}
	if a.YRef == "" {
		a.YRef = RefY
	}
	f.Annotations = append(f.Annotations, a)
	return f
}

// AddHLine draws a horizontal line at y across the whole plotting area and,
// when label is non-empty, a label at its bottom-right end.
func (f *Figure) AddHLine(y float64, line Line, label string) *Figure {
	f.AddShape(Shape{Type: ShapeLine, XRef: RefXDomain, YRef: RefY, X0: 0, X1: 1, Y0: y, Y1: y, Line: line})
	if label != "" {
		f.AddAnnotation(Annotation{
			Text: label, X: 1, Y: y, XRef: RefXDomain, YRef: RefY,
			XAnchor: "right", YAnchor: "top",
			Font: Font{Family: f.Config.FontFamily, Size: f.Config.ReferenceFontSize, Color: f.Config.TextColor},
		})
	}
	return f
}

// AddVLine draws a vertical line at x across the whole plotting area and,
// when label is non-empty, a label at its bottom-right side.
func (f *Figure) AddVLine(x float64, line Line, label string) *Figure {
	f.AddShape(Shape{Type: ShapeLine, XRef: RefX, YRef: RefYDomain, X0: x, X1: x, Y0: 0, Y1: 1, Line: line})
	if label != "" {
		f.AddAnnotation(Annotation{
			Text: label, X: x, Y: 0, XRef: RefX, YRef: RefYDomain,
			XAnchor: "left", YAnchor: "bottom",
			Font: Font{Family: f.Config.FontFamily, Size: f.Config.ReferenceFontSize, Color: f.Config.TextColor},
		})
	}
	return f
}

// ElementCount returns the number of traces, shapes and annotations.
func (f *Figure) ElementCount() int {
	return len(f.Traces) + len(f.Shapes) + len(f.Annotations)
}

// Extent is a closed numeric interval.
type Extent struct{ Lo, Hi float64 }

func emptyExtent() Extent { return Extent{Lo: math.Inf(1), Hi: math.Inf(-1)} }

func (e *Extent) include(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	e.Lo = math.Min(e.Lo, v)
	e.Hi = math.Max(e.Hi, v)
}

func (e Extent) valid() bool { return e.Lo <= e.Hi }

// pad widens the extent by frac of its span on each side. An empty span
// widens by frac of the magnitude, or by 1 around zero.
func (e Extent) pad(frac float64) Extent {
	span := e.Hi - e.Lo
	if span == 0 {
		span = math.Abs(e.Lo)
		if span == 0 {
			span = 1 / frac
		}
	}
	return Extent{Lo: e.Lo - span*frac, Hi: e.Hi + span*frac}
}

// Bounds returns the axis ranges the figure will be drawn with: fixed ranges
// when set, otherwise the extent of all trace points and data-referenced
// shapes, padded by 5% on each side.
func (f *Figure) Bounds() (x, y Extent) {
	x, y = emptyExtent(), emptyExtent()
	for _, t := range f.Traces {
		for _, v := range t.X {
			x.include(v)
		}
		for _, v := range t.Y {
			y.include(v)
		}
	}
	for _, s := range f.Shapes {
		if s.XRef == RefX {
			x.include(s.X0)
			x.include(s.X1)
		}
		if s.YRef == RefY {
			y.include(s.Y0)
			y.include(s.Y1)
		}
	}
	x, y = finish(x, f.Layout.XAxis), finish(y, f.Layout.YAxis)
	return x, y
}

func finish(e Extent, a Axis) Extent {
	if a.Range != nil {
		return Extent{Lo: a.Range[0], Hi: a.Range[1]}
	}
	if !e.valid() {
		return Extent{Lo: -1, Hi: 1}
	}
	return e.pad(0.05)
}
