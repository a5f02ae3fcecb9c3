package color

import (
	"math"
	"testing"
)

func TestScaleEndpoints(t *testing.T) {
	s, ok := LookupScale("tropic")
	if !ok {
		t.Fatal("LookupScale(tropic) not found")
	}

	first, _, _ := Parse(Tropic[0])
	last, _, _ := Parse(Tropic[len(Tropic)-1])

	if got := s.At(0); got.Hex() != first.Hex() {
		t.Errorf("At(0) = %s, want %s", got.Hex(), first.Hex())
	}
	if got := s.At(1); got.Hex() != last.Hex() {
		t.Errorf("At(1) = %s, want %s", got.Hex(), last.Hex())
	}
	if got := s.At(2); got.Hex() != last.Hex() {
		t.Errorf("At(2) should clamp to last stop, got %s", got.Hex())
	}
	if got := s.At(-1); got.Hex() != first.Hex() {
		t.Errorf("At(-1) should clamp to first stop, got %s", got.Hex())
	}
}

func TestScaleMidpointIsNeutral(t *testing.T) {
	s, _ := LookupScale("Tropic")
	mid, _, _ := Parse(Tropic[3])
	if got := s.At(0.5); got.Hex() != mid.Hex() {
		t.Errorf("At(0.5) = %s, want %s", got.Hex(), mid.Hex())
	}
	if got := s.At(math.NaN()); got.Hex() != mid.Hex() {
		t.Errorf("At(NaN) = %s, want %s", got.Hex(), mid.Hex())
	}
}

func TestLookupScaleUnknown(t *testing.T) {
	if _, ok := LookupScale("rainbow"); ok {
		t.Error("LookupScale(rainbow) should not exist")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 0.5},
		{0, 0, 10, 0},
		{10, 0, 10, 1},
		{3, 3, 3, 0.5},
	}
	for _, tt := range tests {
		if got := Normalize(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Normalize(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestD3(t *testing.T) {
	if len(D3) != 10 {
		t.Fatalf("len(D3) = %d, want 10", len(D3))
	}
	for _, h := range D3 {
		if _, err := HexToRGBA(h, 1); err != nil {
			t.Errorf("D3 entry %q invalid: %v", h, err)
		}
	}
}
