package color

import (
	"math"
	"testing"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

func TestHexToRGBA(t *testing.T) {
	tests := []struct {
		name  string
		hex   string
		alpha float64
		want  RGBA
	}{
		{"red with hash", "#FF0000", 0.5, RGBA{255, 0, 0, 0.5}},
		{"red without hash", "FF0000", 0.5, RGBA{255, 0, 0, 0.5}},
		{"d3 blue", "#1F77B4", 0.4, RGBA{31, 119, 180, 0.4}},
		{"lowercase", "#ef553b", 1, RGBA{239, 85, 59, 1}},
		{"black transparent", "000000", 0, RGBA{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGBA(tt.hex, tt.alpha)
			if err != nil {
				t.Fatalf("HexToRGBA(%q) error: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("HexToRGBA(%q, %v) = %+v, want %+v", tt.hex, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestHexToRGBAAlphaPassThrough(t *testing.T) {
	for _, a := range []float64{0, 0.123456789, 0.4, 1, math.SmallestNonzeroFloat64} {
		got, err := HexToRGBA("#17BECF", a)
		if err != nil {
			t.Fatalf("HexToRGBA error: %v", err)
		}
		if got.A != a {
			t.Errorf("alpha = %v, want %v", got.A, a)
		}
	}
}

func TestHexToRGBAMalformed(t *testing.T) {
	for _, h := range []string{"", "#FFF", "#FF00000", "#GG0000", "zzzzzz"} {
		_, err := HexToRGBA(h, 1)
		if err == nil {
			t.Errorf("HexToRGBA(%q) expected error", h)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidColor) {
			t.Errorf("HexToRGBA(%q) code = %s, want %s", h, errors.GetCode(err), errors.ErrCodeInvalidColor)
		}
	}
}

func TestRGBAString(t *testing.T) {
	c := RGBA{31, 119, 180, 0.4}
	if got, want := c.String(), "rgba(31, 119, 180, 0.4)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		r, g, b   uint8
		wantAlpha float64
	}{
		{"hex", "#EF553B", 239, 85, 59, 1},
		{"rgb", "rgb(0, 155, 158)", 0, 155, 158, 1},
		{"rgba", "rgba(31, 119, 180, 0.4)", 31, 119, 180, 0.4},
		{"css name", "LightSeaGreen", 32, 178, 170, 1},
		{"css lower", "purple", 128, 0, 128, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, a, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			r, g, b := c.RGB255()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Parse(%q) = (%d, %d, %d), want (%d, %d, %d)", tt.in, r, g, b, tt.r, tt.g, tt.b)
			}
			if a != tt.wantAlpha {
				t.Errorf("Parse(%q) alpha = %v, want %v", tt.in, a, tt.wantAlpha)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	for _, s := range []string{"notacolour", "rgb(1,2)", "rgb(300, 0, 0)"} {
		if _, _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) expected error", s)
		}
	}
}
