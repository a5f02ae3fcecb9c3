package sink

import (
	"strings"

	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/errors"
)

// Output format names accepted by [Render].
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatJSON = "json"
)

// Formats lists every format [Render] accepts, in canonical order.
func Formats() []string { return []string{FormatSVG, FormatPNG, FormatJPEG, FormatJSON} }

// Normalize lowercases a format name and maps "jpg" to "jpeg".
func Normalize(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "jpg" {
		return FormatJPEG
	}
	return f
}

// Extension returns the file extension for a format, without the dot.
func Extension(format string) string {
	f := Normalize(format)
	if f == FormatJPEG {
		return "jpg"
	}
	return f
}

// Render produces fig in the named format. Raster options apply to PNG and
// JPEG only.
func Render(fig *chart.Figure, format string, opts ...RasterOption) ([]byte, error) {
	f := Normalize(format)
	if err := errors.ValidateFormat(f, Formats()); err != nil {
		return nil, err
	}
	switch f {
	case FormatSVG:
		return RenderSVG(fig), nil
	case FormatPNG:
		return RenderPNG(fig, opts...)
	case FormatJPEG:
		return RenderJPEG(fig, opts...)
	default:
		return RenderJSON(fig, WithIndent())
	}
}
