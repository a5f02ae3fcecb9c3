package dataset

import (
	"math"
	"slices"

	"github.com/montanaflynn/stats"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

// Present returns vals without NaN entries.
func Present(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// present loads a numeric column and drops missing cells. A column with no
// present values fails with EMPTY_DATA.
func (d *Dataset) present(name string) ([]float64, error) {
	vals, err := d.Floats(name)
	if err != nil {
		return nil, err
	}
	vals = Present(vals)
	if len(vals) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyData, "column %q has no values", name)
	}
	return vals, nil
}

// Mean returns the arithmetic mean of a numeric column.
func (d *Dataset) Mean(name string) (float64, error) {
	vals, err := d.present(name)
	if err != nil {
		return 0, err
	}
	m, err := stats.Mean(vals)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "mean of %q", name)
	}
	return m, nil
}

// Std returns the sample standard deviation (n-1 denominator) of a numeric
// column. A single value yields NaN.
func (d *Dataset) Std(name string) (float64, error) {
	vals, err := d.present(name)
	if err != nil {
		return 0, err
	}
	if len(vals) < 2 {
		return math.NaN(), nil
	}
	s, err := stats.StandardDeviationSample(vals)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "std of %q", name)
	}
	return s, nil
}

// Min returns the smallest value of a numeric column.
func (d *Dataset) Min(name string) (float64, error) {
	vals, err := d.present(name)
	if err != nil {
		return 0, err
	}
	m, err := stats.Min(vals)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "min of %q", name)
	}
	return m, nil
}

// Max returns the largest value of a numeric column.
func (d *Dataset) Max(name string) (float64, error) {
	vals, err := d.present(name)
	if err != nil {
		return 0, err
	}
	m, err := stats.Max(vals)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "max of %q", name)
	}
	return m, nil
}

// Quantile returns the q-th quantile of a numeric column, q in [0, 1],
// interpolating linearly between the two closest ranks. Quantile(name, 0)
// is the minimum and Quantile(name, 1) the maximum.
func (d *Dataset) Quantile(name string, q float64) (float64, error) {
	if err := errors.ValidateQuantile(q); err != nil {
		return 0, err
	}
	vals, err := d.present(name)
	if err != nil {
		return 0, err
	}
	return Quantile(vals, q), nil
}

// Quantile computes the linearly interpolated q-th quantile of vals, which
// must be non-empty and NaN-free. q is not range checked.
func Quantile(vals []float64, q float64) float64 {
	sorted := slices.Sorted(slices.Values(vals))
	h := float64(len(sorted)-1) * q
	lo := math.Floor(h)
	i := int(lo)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	if i < 0 {
		return sorted[0]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Summary describes a numeric column.
type Summary struct {
	Column string
	Count  int // present (non-missing) values
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe summarises a numeric column.
func (d *Dataset) Describe(name string) (Summary, error) {
	vals, err := d.present(name)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{Column: name, Count: len(vals), Std: math.NaN()}
	if s.Mean, err = stats.Mean(vals); err != nil {
		return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "describe %q", name)
	}
	if len(vals) > 1 {
		if s.Std, err = stats.StandardDeviationSample(vals); err != nil {
			return Summary{}, errors.Wrap(errors.ErrCodeInternal, err, "describe %q", name)
		}
	}
	s.Min = Quantile(vals, 0)
	s.Q25 = Quantile(vals, 0.25)
	s.Median = Quantile(vals, 0.5)
	s.Q75 = Quantile(vals, 0.75)
	s.Max = Quantile(vals, 1)
	return s, nil
}
