package color

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

// RGBA is a colour with 8-bit channels and a fractional alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// String formats the colour as a CSS rgba() value, e.g. "rgba(31, 119, 180, 0.4)".
func (c RGBA) String() string {
	return "rgba(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " +
		strconv.Itoa(int(c.B)) + ", " + strconv.FormatFloat(c.A, 'f', -1, 64) + ")"
}

// Colorful returns the opaque part of c.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// HexToRGBA converts a six-digit hex colour, with or without a leading '#',
// into its channels and attaches alpha unchanged.
func HexToRGBA(h string, alpha float64) (RGBA, error) {
	digits := strings.TrimLeft(h, "#")
	if len(digits) != 6 {
		return RGBA{}, errors.New(errors.ErrCodeInvalidColor, "hex colour %q must have 6 digits", h)
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse hex colour %q", h)
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// Parse resolves a figure colour string into an opaque colour and its alpha.
// It accepts "#RRGGBB", "rgb(r, g, b)", "rgba(r, g, b, a)" and CSS colour
// names in any letter case ("LightSeaGreen").
func Parse(s string) (colorful.Color, float64, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := HexToRGBA(s, 1)
		if err != nil {
			return colorful.Color{}, 0, err
		}
		return c.Colorful(), 1, nil
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		c, err := parseFunctional(s)
		if err != nil {
			return colorful.Color{}, 0, err
		}
		return c.Colorful(), c.A, nil
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		c, _ := colorful.MakeColor(named)
		return c, 1, nil
	}
	return colorful.Color{}, 0, errors.New(errors.ErrCodeInvalidColor, "unknown colour %q", s)
}

// MustParse is like [Parse] but falls back to black for unknown colours.
// Renderers use it so a bad colour degrades a single element, not the chart.
func MustParse(s string) (colorful.Color, float64) {
	c, a, err := Parse(s)
	if err != nil {
		return colorful.Color{}, 1
	}
	return c, a
}

func parseFunctional(s string) (RGBA, error) {
	open, closing := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || closing < open {
		return RGBA{}, errors.New(errors.ErrCodeInvalidColor, "malformed colour %q", s)
	}
	parts := strings.Split(s[open+1:closing], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, errors.New(errors.ErrCodeInvalidColor, "malformed colour %q", s)
	}

	var ch [3]uint8
	for i := range 3 {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return RGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "channel %d of %q", i, s)
		}
		ch[i] = uint8(v)
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return RGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "alpha of %q", s)
		}
		alpha = a
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}
