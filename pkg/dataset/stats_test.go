package dataset

import (
	"math"
	"testing"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestMean(t *testing.T) {
	d := New()
	must(t, d.AddFloats("x", []float64{1, 2, 3, 4}))
	got, err := d.Mean("x")
	if err != nil || !approx(got, 2.5) {
		t.Errorf("Mean = %v, %v; want 2.5", got, err)
	}
}

func TestStdIsSample(t *testing.T) {
	d := New()
	must(t, d.AddFloats("x", []float64{2, 4, 4, 4, 5, 5, 7, 9}))
	got, err := d.Std("x")
	if err != nil {
		t.Fatal(err)
	}
	// population std is 2; the sample std divides by n-1.
	want := math.Sqrt(32.0 / 7.0)
	if !approx(got, want) {
		t.Errorf("Std = %v, want %v", got, want)
	}
}

func TestStdSingleValue(t *testing.T) {
	d := New()
	must(t, d.AddFloats("x", []float64{3}))
	got, err := d.Std("x")
	if err != nil || !math.IsNaN(got) {
		t.Errorf("Std = %v, %v; want NaN", got, err)
	}
}

func TestQuantile(t *testing.T) {
	d := New()
	must(t, d.AddFloats("x", []float64{4, 1, 3, 2, 5}))

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.1, 1.4},
		{0.25, 2},
		{0.5, 3},
		{0.9, 4.6},
		{1, 5},
	}
	for _, tt := range tests {
		got, err := d.Quantile("x", tt.q)
		if err != nil {
			t.Fatalf("Quantile(%v) error: %v", tt.q, err)
		}
		if !approx(got, tt.want) {
			t.Errorf("Quantile(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestQuantileOutOfRange(t *testing.T) {
	d := New()
	must(t, d.AddFloats("x", []float64{1, 2}))
	for _, q := range []float64{-0.5, 1.01} {
		if _, err := d.Quantile("x", q); !errors.Is(err, errors.ErrCodeInvalidQuantile) {
			t.Errorf("Quantile(%v) error = %v, want %s", q, err, errors.ErrCodeInvalidQuantile)
		}
	}
}

func TestStatsEmptyColumn(t *testing.T) {
	d := New()
	must(t, d.AddStrings("x", []string{"", "NA"}))
	if _, err := d.Mean("x"); !errors.Is(err, errors.ErrCodeEmptyData) {
		t.Errorf("Mean error = %v, want %s", err, errors.ErrCodeEmptyData)
	}
}

func TestMinMax(t *testing.T) {
	d := batting(t)
	lo, err := d.Min("PA")
	if err != nil || lo != 516 {
		t.Errorf("Min(PA) = %v, %v", lo, err)
	}
	hi, err := d.Max("PA")
	if err != nil || hi != 731 {
		t.Errorf("Max(PA) = %v, %v", hi, err)
	}
}

func TestDescribe(t *testing.T) {
	d := New()
	must(t, d.AddFloats("x", []float64{1, 2, 3, 4, 5}))
	s, err := d.Describe("x")
	if err != nil {
		t.Fatal(err)
	}
	if s.Count != 5 || s.Min != 1 || s.Max != 5 || s.Median != 3 || s.Q25 != 2 || s.Q75 != 4 {
		t.Errorf("Describe = %+v", s)
	}
	if !approx(s.Mean, 3) || !approx(s.Std, math.Sqrt(2.5)) {
		t.Errorf("Describe mean/std = %v/%v", s.Mean, s.Std)
	}
}
