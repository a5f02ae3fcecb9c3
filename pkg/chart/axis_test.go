package chart

import (
	"math"
	"testing"
)

func TestTicks(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   float64
		n        int
		wantStep float64
	}{
		{"unit range", 0, 1, 11, 0.1},
		{"woba range", 0.25, 0.48, 20, 0.02},
		{"plate appearances", 500, 740, 40, 10},
		{"few ticks", 0, 100, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticks := Ticks(tt.lo, tt.hi, tt.n)
			if len(ticks) == 0 || len(ticks) > tt.n {
				t.Fatalf("Ticks() returned %d ticks, want 1..%d", len(ticks), tt.n)
			}
			for i, v := range ticks {
				if v < tt.lo-1e-9 || v > tt.hi+1e-9 {
					t.Errorf("tick %v outside [%v, %v]", v, tt.lo, tt.hi)
				}
				if i > 0 && math.Abs(ticks[i]-ticks[i-1]-tt.wantStep) > 1e-9 {
					t.Errorf("step %v, want %v", ticks[i]-ticks[i-1], tt.wantStep)
				}
			}
		})
	}
}

func TestTicksDegenerate(t *testing.T) {
	if got := Ticks(3, 3, 10); len(got) != 1 || got[0] != 3 {
		t.Errorf("Ticks(3, 3) = %v", got)
	}
	if got := Ticks(1, 0, 3); len(got) == 0 || got[0] != 0 {
		t.Errorf("Ticks reversed = %v", got)
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v, step float64
		want    string
	}{
		{0.3, 0.1, "0.3"},
		{0.32, 0.02, "0.32"},
		{0.025, 0.025, "0.025"},
		{700, 10, "700"},
		{7.5, 2.5, "7.5"},
		{-0.0, 0.1, "0.0"},
	}
	for _, tt := range tests {
		if got := FormatTick(tt.v, tt.step); got != tt.want {
			t.Errorf("FormatTick(%v, %v) = %q, want %q", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestDashArray(t *testing.T) {
	if DashArray(DashSolid, 2) != nil {
		t.Error("solid should have no dashes")
	}
	if got := DashArray(DashDash, 2); len(got) != 2 || got[0] != 9 {
		t.Errorf("DashArray(dash, 2) = %v, want [9 9]", got)
	}
	if got := DashArray(DashDot, 4); len(got) != 2 || got[0] != 4 {
		t.Errorf("DashArray(dot, 4) = %v, want [4 4]", got)
	}
}
