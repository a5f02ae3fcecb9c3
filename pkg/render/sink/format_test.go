package sink

import (
	"bytes"
	"testing"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

func TestRender(t *testing.T) {
	fig := regressionFigure(t)
	tests := []struct {
		format string
		prefix []byte
	}{
		{"svg", []byte("<svg")},
		{"SVG", []byte("<svg")},
		{"png", []byte("\x89PNG")},
		{"jpg", []byte{0xFF, 0xD8}},
		{"jpeg", []byte{0xFF, 0xD8}},
		{"json", []byte("{")},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			data, err := Render(fig, tt.format, WithScale(0.2))
			if err != nil {
				t.Fatalf("Render(%q) error: %v", tt.format, err)
			}
			if !bytes.HasPrefix(data, tt.prefix) {
				t.Errorf("Render(%q) starts with %q", tt.format, data[:min(8, len(data))])
			}
		})
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(regressionFigure(t), "pdf")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestExtension(t *testing.T) {
	for in, want := range map[string]string{"svg": "svg", "JPEG": "jpg", "jpg": "jpg", "json": "json"} {
		if got := Extension(in); got != want {
			t.Errorf("Extension(%q) = %q, want %q", in, got, want)
		}
	}
}
