package render

import (
	"fmt"
	imgcolor "image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/diamondplot/pkg/color"
)

// Paint is a resolved colour with its opacity.
type Paint struct {
	C colorful.Color
	A float64
}

// ParsePaint resolves a figure colour string. Unknown colours paint black.
func ParsePaint(s string) Paint {
	c, a := color.MustParse(s)
	return Paint{C: c, A: a}
}

// Hex returns the opaque colour as "#rrggbb".
func (p Paint) Hex() string { return p.C.Clamped().Hex() }

// Opacity formats the alpha for SVG attributes.
func (p Paint) Opacity() string { return fmt.Sprintf("%.3g", p.A) }

// NRGBA converts the paint for raster drawing.
func (p Paint) NRGBA() imgcolor.NRGBA {
	r, g, b := p.C.Clamped().RGB255()
	return imgcolor.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(math.Max(0, math.Min(1, p.A)) * 255))}
}
