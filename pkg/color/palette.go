package color

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// D3 is the ten-colour qualitative palette used for categorical series and
// for the regression overlay (its first entry).
var D3 = []string{
	"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD",
	"#8C564B", "#E377C2", "#7F7F7F", "#BCBD22", "#17BECF",
}

// Tropic is a teal-to-magenta diverging scale.
var Tropic = []string{
	"rgb(0, 155, 158)", "rgb(66, 183, 185)", "rgb(167, 211, 212)", "rgb(241, 241, 241)",
	"rgb(228, 193, 217)", "rgb(214, 145, 193)", "rgb(199, 93, 171)",
}

// Viridis is a perceptually uniform sequential scale.
var Viridis = []string{
	"#440154", "#482878", "#3E4989", "#31688E", "#26828E",
	"#1F9E89", "#35B779", "#6ECE58", "#B5DE2B", "#FDE725",
}

var scales = map[string][]string{
	"tropic":  Tropic,
	"viridis": Viridis,
}

// ScaleNames lists the continuous scales known to [LookupScale].
func ScaleNames() []string { return []string{"Tropic", "Viridis"} }

// Scale is a continuous colour scale built from evenly spaced stops.
type Scale struct {
	stops []colorful.Color
	raw   []string
}

// NewScale builds a scale from colour strings understood by [Parse].
func NewScale(stops []string) (Scale, error) {
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, _, err := Parse(s)
		if err != nil {
			return Scale{}, err
		}
		cs[i] = c
	}
	return Scale{stops: cs, raw: stops}, nil
}

// LookupScale returns the named scale; names are case-insensitive.
func LookupScale(name string) (Scale, bool) {
	stops, ok := scales[strings.ToLower(name)]
	if !ok {
		return Scale{}, false
	}
	s, err := NewScale(stops)
	return s, err == nil
}

// Stops returns the colour strings the scale was built from.
func (s Scale) Stops() []string { return s.raw }

// At samples the scale at t in [0, 1], blending neighbouring stops in Lab space.
// Values outside the range are clamped; NaN maps to the middle of the scale.
func (s Scale) At(t float64) colorful.Color {
	if len(s.stops) == 0 {
		return colorful.Color{}
	}
	if len(s.stops) == 1 {
		return s.stops[0]
	}
	if math.IsNaN(t) {
		t = 0.5
	}
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(s.stops)-1)
	i := int(math.Floor(pos))
	if i >= len(s.stops)-1 {
		return s.stops[len(s.stops)-1]
	}
	return s.stops[i].BlendLab(s.stops[i+1], pos-float64(i)).Clamped()
}

// Normalize maps v from [lo, hi] onto [0, 1]; a degenerate range maps to 0.5.
func Normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}
