package chart

import (
	"math"
	"strconv"
	"strings"
)

// niceSteps are the mantissas tick spacing is rounded up to.
var niceSteps = []float64{1, 2, 2.5, 5, 10}

// Ticks returns evenly spaced round tick values inside [lo, hi], at most n
// of them (n < 2 is treated as 2).
func Ticks(lo, hi float64, n int) []float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	if n < 2 {
		n = 2
	}
	if hi == lo || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return []float64{lo}
	}

	step := TickStep(lo, hi, n)
	start := math.Ceil(lo/step) * step
	var ticks []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		// snap values like 0.30000000000000004
		ticks = append(ticks, roundTo(v, step))
	}
	return ticks
}

// TickStep returns the round spacing that fits at most n ticks in [lo, hi].
func TickStep(lo, hi float64, n int) float64 {
	raw := (hi - lo) / float64(n-1)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for {
		for _, m := range niceSteps {
			step := m * mag
			if count := math.Floor(hi/step) - math.Ceil(lo/step) + 1; count <= float64(n) {
				return step
			}
		}
		mag *= 10
	}
}

func roundTo(v, step float64) float64 {
	decimals := max(0, -int(math.Floor(math.Log10(step)))+2)
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// FormatTick renders a tick label with just enough decimals for step.
func FormatTick(v, step float64) string {
	decimals := 0
	if step > 0 {
		decimals = max(0, -int(math.Floor(math.Log10(step)+1e-9)))
		for range 3 {
			scaled := step * math.Pow(10, float64(decimals))
			if math.Abs(scaled-math.Round(scaled)) < 1e-6 {
				break
			}
			decimals++
		}
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}

// DashArray returns the stroke dash lengths for a dash style at the given
// line width. Lengths scale with the width, never below a width of 3.
// Solid (and unknown) styles return nil.
func DashArray(d Dash, width float64) []float64 {
	w := math.Max(width, 3)
	switch d {
	case DashDot:
		return []float64{w, w}
	case DashDash:
		return []float64{3 * w, 3 * w}
	case DashLongDash:
		return []float64{5 * w, 5 * w}
	case DashDashDot:
		return []float64{3 * w, w, w, w}
	case DashLongDashDot:
		return []float64{5 * w, 2 * w, w, 2 * w}
	default:
		return nil
	}
}
