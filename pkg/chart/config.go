package chart

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/diamondplot/pkg/color"
	"github.com/matzehuels/diamondplot/pkg/errors"
)

// Margin is the space between the figure edge and the plotting area, in pixels.
type Margin struct {
	Left   float64 `toml:"left" json:"l"`
	Right  float64 `toml:"right" json:"r"`
	Top    float64 `toml:"top" json:"t"`
	Bottom float64 `toml:"bottom" json:"b"`
}

// Config holds every rendering parameter a figure depends on.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	XTicks int `toml:"x_ticks"`
	YTicks int `toml:"y_ticks"`

	MarkerSize      float64 `toml:"marker_size"`
	MarkerLineWidth float64 `toml:"marker_line_width"`
	MarkerLineColor string  `toml:"marker_line_color"`
	ColorScale      string  `toml:"color_scale"`

	RegressionColor  string  `toml:"regression_color"`
	RegressionAlpha  float64 `toml:"regression_alpha"`
	RegressionWidth  float64 `toml:"regression_width"`
	RegressionPoints int     `toml:"regression_points"`

	ReferenceLineColor string `toml:"reference_line_color"`

	FontFamily         string  `toml:"font_family"`
	TitleFontSize      float64 `toml:"title_font_size"`
	TickFontSize       float64 `toml:"tick_font_size"`
	ReferenceFontSize  float64 `toml:"reference_font_size"`
	AnnotationFontSize float64 `toml:"annotation_font_size"`
	PercentileFontSize float64 `toml:"percentile_font_size"`
	TextColor          string  `toml:"text_color"`

	UpperPercentileColor string  `toml:"upper_percentile_color"`
	LowerPercentileColor string  `toml:"lower_percentile_color"`
	ShapeColor           string  `toml:"shape_color"`
	OverlayWidth         float64 `toml:"overlay_width"`

	Background     string `toml:"background"`
	PlotBackground string `toml:"plot_background"`
	GridColor      string `toml:"grid_color"`

	Margin Margin `toml:"margin"`
}

// DefaultConfig returns the standard look: a 1350x700 chart with up to 40 x
// ticks and 20 y ticks, size-10 markers with a width-2 outline on the Tropic
// scale, and the D3 blue at 40% alpha for regression lines.
func DefaultConfig() Config {
	return Config{
		Width:  1350,
		Height: 700,
		XTicks: 40,
		YTicks: 20,

		MarkerSize:      10,
		MarkerLineWidth: 2,
		MarkerLineColor: "#444444",
		ColorScale:      "Tropic",

		RegressionColor:  color.D3[0],
		RegressionAlpha:  0.4,
		RegressionWidth:  2,
		RegressionPoints: 100,

		ReferenceLineColor: "#444444",

		FontFamily:         "Arial",
		TitleFontSize:      17,
		TickFontSize:       12,
		ReferenceFontSize:  12,
		AnnotationFontSize: 18,
		PercentileFontSize: 15,
		TextColor:          "#2A3F5F",

		UpperPercentileColor: "LightSeaGreen",
		LowerPercentileColor: "#EF553B",
		ShapeColor:           "purple",
		OverlayWidth:         2,

		Background:     "white",
		PlotBackground: "#E5ECF6",
		GridColor:      "white",

		Margin: Margin{Left: 80, Right: 80, Top: 100, Bottom: 80},
	}
}

// LoadConfig reads a TOML file over [DefaultConfig]; keys absent from the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	return LoadConfigOver(DefaultConfig(), path)
}

// LoadConfigOver reads a TOML file over base; keys absent from the file keep
// base's values.
func LoadConfigOver(base Config, path string) (Config, error) {
	cfg := base
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks dimensions, counts and colours.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", float64(c.Width)},
		{"height", float64(c.Height)},
		{"x_ticks", float64(c.XTicks)},
		{"y_ticks", float64(c.YTicks)},
		{"marker_size", c.MarkerSize},
		{"regression_points", float64(c.RegressionPoints)},
	} {
		if err := errors.ValidatePositive(f.name, f.v); err != nil {
			return err
		}
	}
	if c.RegressionAlpha < 0 || c.RegressionAlpha > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "regression_alpha must be in [0, 1], got %v", c.RegressionAlpha)
	}
	if c.Margin.Left+c.Margin.Right >= float64(c.Width) || c.Margin.Top+c.Margin.Bottom >= float64(c.Height) {
		return errors.New(errors.ErrCodeInvalidConfig, "margins leave no room for the plot")
	}
	if _, ok := color.LookupScale(c.ColorScale); !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown color_scale %q", c.ColorScale)
	}
	if _, err := color.HexToRGBA(c.RegressionColor, c.RegressionAlpha); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "regression_color")
	}
	for name, v := range map[string]string{
		"marker_line_color":      c.MarkerLineColor,
		"reference_line_color":   c.ReferenceLineColor,
		"text_color":             c.TextColor,
		"upper_percentile_color": c.UpperPercentileColor,
		"lower_percentile_color": c.LowerPercentileColor,
		"shape_color":            c.ShapeColor,
		"background":             c.Background,
		"plot_background":        c.PlotBackground,
		"grid_color":             c.GridColor,
	} {
		if _, _, err := color.Parse(v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", name)
		}
	}
	return nil
}

// Scale resolves the configured continuous colour scale, falling back to Tropic.
func (c Config) Scale() color.Scale {
	if s, ok := color.LookupScale(c.ColorScale); ok {
		return s
	}
	s, _ := color.NewScale(color.Tropic)
	return s
}
