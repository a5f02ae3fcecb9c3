// Package fit computes the straight-line fits drawn over scatter charts.
package fit

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

// Line is y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 { return l.Slope*x + l.Intercept }

// Shift returns the parallel line moved vertically by dy.
func (l Line) Shift(dy float64) Line {
	return Line{Slope: l.Slope, Intercept: l.Intercept + dy}
}

// Sample evaluates the line at every x in xs.
func (l Line) Sample(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = l.At(x)
	}
	return ys
}

// Linear fits y on x by ordinary least squares. Pairs where either value is
// NaN are ignored. Fewer than two pairs, or x without spread, cannot define
// a line and fail with DEGENERATE_FIT.
func Linear(x, y []float64) (Line, error) {
	if len(x) != len(y) {
		return Line{}, errors.New(errors.ErrCodeLengthMismatch, "x has %d values, y has %d", len(x), len(y))
	}
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return Line{}, errors.New(errors.ErrCodeDegenerateFit, "need at least 2 points, have %d", len(xs))
	}

	varX, err := stats.SampleVariance(xs)
	if err != nil {
		return Line{}, errors.Wrap(errors.ErrCodeInternal, err, "variance of x")
	}
	if varX == 0 {
		return Line{}, errors.New(errors.ErrCodeDegenerateFit, "x values are all equal")
	}
	cov, err := stats.Covariance(xs, ys)
	if err != nil {
		return Line{}, errors.Wrap(errors.ErrCodeInternal, err, "covariance")
	}
	mx, _ := stats.Mean(xs)
	my, _ := stats.Mean(ys)

	m := cov / varX
	return Line{Slope: m, Intercept: my - m*mx}, nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n == 1 yields [lo]; n <= 0 yields nil.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
