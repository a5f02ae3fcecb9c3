// Package pipeline provides the load → build → render pipeline for diamondplot.
//
// This package turns a dataset and a declarative plot definition into
// rendered artifacts. The CLI uses it directly; library users can drive
// individual stages.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a CSV, TSV or XLSX file into a [dataset.Dataset]
//  2. Build: Create a scatter or regression figure and apply overlays
//     (percentile regions, annotations, shapes) in that order
//  3. Render: Produce every requested format (SVG, PNG, JPEG, JSON)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(chart.DefaultConfig(), logger)
//	opts := pipeline.Options{
//	    X:          "xwOBA",
//	    Y:          "wOBA",
//	    Color:      "Barrel%",
//	    Regression: true,
//	    Formats:    []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, ds, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Plot definitions can also be read from TOML with [LoadOptions].
package pipeline

import (
	"os"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/errors"
	"github.com/matzehuels/diamondplot/pkg/render/sink"
	"github.com/matzehuels/diamondplot/pkg/scatter"
)

// Plot kinds.
const (
	KindScatter    = scatter.KindScatter
	KindRegression = scatter.KindRegression
)

// DefaultScale is the default raster scale relative to the layout size.
const DefaultScale = 1.0

// Percentiles selects the quantile regions to outline.
type Percentiles struct {
	Upper float64 `toml:"upper" json:"upper"`
	Lower float64 `toml:"lower" json:"lower"`
}

// Annotation is a text label in data coordinates.
type Annotation struct {
	Text  string  `toml:"text" json:"text"`
	X     float64 `toml:"x" json:"x"`
	Y     float64 `toml:"y" json:"y"`
	Color string  `toml:"color" json:"color,omitempty"`
	Arrow bool    `toml:"arrow" json:"arrow,omitempty"`
}

// Shape is a shape overlay in data coordinates.
type Shape struct {
	Type  string  `toml:"type" json:"type,omitempty"` // circle (default), rect or line
	X0    float64 `toml:"x0" json:"x0"`
	X1    float64 `toml:"x1" json:"x1"`
	Y0    float64 `toml:"y0" json:"y0"`
	Y1    float64 `toml:"y1" json:"y1"`
	Color string  `toml:"color" json:"color,omitempty"`
}

// Options is a complete plot definition. It round-trips through TOML and
// JSON so definitions can be kept next to the data they plot.
type Options struct {
	// Columns
	X         string   `toml:"x" json:"x"`
	Y         string   `toml:"y" json:"y"`
	Color     string   `toml:"color" json:"color,omitempty"`
	HoverName string   `toml:"hover_name" json:"hover_name,omitempty"`
	HoverData []string `toml:"hover_data" json:"hover_data,omitempty"`

	// Figure
	Regression  bool         `toml:"regression" json:"regression,omitempty"`
	Percentiles *Percentiles `toml:"percentiles" json:"percentiles,omitempty"`
	Annotations []Annotation `toml:"annotations" json:"annotations,omitempty"`
	Shapes      []Shape      `toml:"shapes" json:"shapes,omitempty"`

	// Output
	Formats []string `toml:"formats" json:"formats,omitempty"`
	Scale   float64  `toml:"scale" json:"scale,omitempty"`

	// Config is a chart config file applied over the runner's config.
	Config string `toml:"config" json:"config,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `toml:"-" json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Kind returns the figure kind the options build.
func (o *Options) Kind() string {
	if o.Regression {
		return KindRegression
	}
	return KindScatter
}

// ScatterOptions returns the column selection for the scatter builders.
func (o *Options) ScatterOptions() scatter.Options {
	return scatter.Options{
		X:         o.X,
		Y:         o.Y,
		Color:     o.Color,
		HoverName: o.HoverName,
		HoverData: o.HoverData,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run.
	ID uuid.UUID

	// Figure is the built figure, overlays included.
	Figure *chart.Figure

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows       int
	Elements   int
	Bytes      int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// LoadOptions reads a plot definition from a TOML file.
func LoadOptions(path string) (Options, error) {
	var o Options
	if _, err := toml.DecodeFile(path, &o); err != nil {
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "plot definition %s", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode plot definition %s", path)
	}
	return o, nil
}

// Merge overlays the non-zero fields of other onto o. Slices from other
// replace those of o; annotations and shapes are appended.
func (o Options) Merge(other Options) Options {
	if other.X != "" {
		o.X = other.X
	}
	if other.Y != "" {
		o.Y = other.Y
	}
	if other.Color != "" {
		o.Color = other.Color
	}
	if other.HoverName != "" {
		o.HoverName = other.HoverName
	}
	if len(other.HoverData) > 0 {
		o.HoverData = other.HoverData
	}
	if other.Regression {
		o.Regression = true
	}
	if other.Percentiles != nil {
		o.Percentiles = other.Percentiles
	}
	o.Annotations = append(append([]Annotation(nil), o.Annotations...), other.Annotations...)
	o.Shapes = append(append([]Shape(nil), o.Shapes...), other.Shapes...)
	if len(other.Formats) > 0 {
		o.Formats = other.Formats
	}
	if other.Scale != 0 {
		o.Scale = other.Scale
	}
	if other.Config != "" {
		o.Config = other.Config
	}
	if other.Logger != nil {
		o.Logger = other.Logger
	}
	o.validated = false
	return o
}

// ValidateFormats checks that every format is one the sinks can produce.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(sink.Normalize(f), sink.Formats()); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	for _, c := range []string{o.X, o.Y} {
		if err := errors.ValidateColumnName(c); err != nil {
			return err
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{sink.FormatSVG}
	}
	formats := make([]string, 0, len(o.Formats))
	for _, f := range o.Formats {
		if f = sink.Normalize(f); !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	o.Formats = formats
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if err := errors.ValidatePositive("scale", o.Scale); err != nil {
		return err
	}
	for _, s := range o.Shapes {
		if _, err := shapeType(s.Type); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

func shapeType(s string) (chart.ShapeType, error) {
	switch chart.ShapeType(s) {
	case "", chart.ShapeCircle:
		return chart.ShapeCircle, nil
	case chart.ShapeRect, chart.ShapeLine:
		return chart.ShapeType(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown shape type %q (want circle, rect or line)", s)
}
