package pipeline

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		formats []string
		wantErr bool
	}{
		{[]string{"svg"}, false},
		{[]string{"svg", "png", "jpeg", "json"}, false},
		{[]string{"JPG"}, false},
		{[]string{"pdf"}, true},
		{[]string{"svg", "invalid"}, true},
		{[]string{""}, true},
		{nil, false},
	}

	for _, tt := range tests {
		err := ValidateFormats(tt.formats)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormats(%q) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{X: "xwOBA", Y: "wOBA", Formats: []string{"SVG", "jpg", "svg"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(opts.Formats, []string{"svg", "jpeg"}) {
		t.Errorf("Formats = %v, want [svg jpeg]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}

	empty := Options{X: "xwOBA", Y: "wOBA"}
	if err := empty.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(empty.Formats, []string{"svg"}) {
		t.Errorf("default Formats = %v, want [svg]", empty.Formats)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing x", Options{Y: "wOBA"}, errors.ErrCodeInvalidInput},
		{"bad format", Options{X: "a", Y: "b", Formats: []string{"pdf"}}, errors.ErrCodeInvalidFormat},
		{"negative scale", Options{X: "a", Y: "b", Scale: -1}, errors.ErrCodeInvalidConfig},
		{"bad shape", Options{X: "a", Y: "b", Shapes: []Shape{{Type: "star"}}}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestKind(t *testing.T) {
	if k := (&Options{}).Kind(); k != KindScatter {
		t.Errorf("Kind() = %q, want %q", k, KindScatter)
	}
	if k := (&Options{Regression: true}).Kind(); k != KindRegression {
		t.Errorf("Kind() = %q, want %q", k, KindRegression)
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.toml")
	def := `x = "xwOBA"
y = "wOBA"
color = "Barrel%"
hover_data = ["Team"]
regression = true
formats = ["svg", "json"]

[percentiles]
upper = 0.9
lower = 0.1

[[annotations]]
text = "Judge"
x = 0.477
y = 0.476
arrow = true

[[shapes]]
type = "rect"
x0 = 0.4
x1 = 0.5
y0 = 0.4
y1 = 0.5
color = "black"
`
	if err := os.WriteFile(path, []byte(def), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() error: %v", err)
	}
	if opts.X != "xwOBA" || opts.Y != "wOBA" || opts.Color != "Barrel%" || !opts.Regression {
		t.Errorf("columns = %+v", opts)
	}
	if opts.Percentiles == nil || opts.Percentiles.Upper != 0.9 || opts.Percentiles.Lower != 0.1 {
		t.Errorf("Percentiles = %+v", opts.Percentiles)
	}
	if len(opts.Annotations) != 1 || !opts.Annotations[0].Arrow || opts.Annotations[0].Text != "Judge" {
		t.Errorf("Annotations = %+v", opts.Annotations)
	}
	if len(opts.Shapes) != 1 || opts.Shapes[0].Type != "rect" || opts.Shapes[0].X1 != 0.5 {
		t.Errorf("Shapes = %+v", opts.Shapes)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("x = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptions(path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad toml: error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestMerge(t *testing.T) {
	base := Options{
		X: "xwOBA", Y: "wOBA", Formats: []string{"svg"},
		Annotations: []Annotation{{Text: "a"}},
	}
	flags := Options{
		Y: "OBP", Regression: true, Formats: []string{"png"},
		Annotations: []Annotation{{Text: "b"}},
		Percentiles: &Percentiles{Upper: 0.8, Lower: 0.2},
	}
	got := base.Merge(flags)
	if got.X != "xwOBA" || got.Y != "OBP" || !got.Regression {
		t.Errorf("merged columns = %+v", got)
	}
	if !slices.Equal(got.Formats, []string{"png"}) {
		t.Errorf("Formats = %v, want [png]", got.Formats)
	}
	if len(got.Annotations) != 2 || got.Annotations[0].Text != "a" || got.Annotations[1].Text != "b" {
		t.Errorf("Annotations = %+v", got.Annotations)
	}
	if len(base.Annotations) != 1 {
		t.Error("Merge modified the receiver's annotations")
	}
	if got.Percentiles.Upper != 0.8 {
		t.Errorf("Percentiles = %+v", got.Percentiles)
	}
}
