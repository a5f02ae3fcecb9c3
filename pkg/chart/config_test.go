package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	data := `
width = 900
color_scale = "Viridis"

[margin]
left = 60
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 900 || cfg.ColorScale != "Viridis" || cfg.Margin.Left != 60 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Height != 700 || cfg.XTicks != 40 || cfg.Margin.Top != 100 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigOverLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.toml")
	if err := os.WriteFile(path, []byte("height = 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	base := DefaultConfig()
	base.Width = 1600
	base.ShapeColor = "orange"

	cfg, err := LoadConfigOver(base, path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Height != 500 {
		t.Errorf("Height = %d, want 500 from the file", cfg.Height)
	}
	if cfg.Width != 1600 || cfg.ShapeColor != "orange" {
		t.Errorf("base values lost: width %d, shape colour %q", cfg.Width, cfg.ShapeColor)
	}
	if base.Height != 700 {
		t.Error("LoadConfigOver modified base")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("width = \"wide\""), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad type error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"alpha above one", func(c *Config) { c.RegressionAlpha = 1.5 }},
		{"unknown scale", func(c *Config) { c.ColorScale = "Rainbow" }},
		{"bad regression colour", func(c *Config) { c.RegressionColor = "blue" }},
		{"bad shape colour", func(c *Config) { c.ShapeColor = "notacolour" }},
		{"margins too wide", func(c *Config) { c.Margin.Left = 2000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}
