// Package fonts provides the embedded fonts used for raster rendering.
//
// The Go font family ships inside golang.org/x/image as byte slices, so
// PNG and JPEG output needs no fonts installed on the host. SVG output
// names the configured family instead and lets the viewer resolve it.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

// Weight selects a face of the embedded family.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// FallbackFontFamily is the CSS family list for text whose configured font
// is unavailable to the viewer.
const FallbackFontFamily = `Arial, 'Go', 'Helvetica Neue', sans-serif`

var (
	parseOnce sync.Once
	parsed    [2]*truetype.Font
	parseErr  error
)

func load() error {
	parseOnce.Do(func() {
		for i, data := range [][]byte{goregular.TTF, gobold.TTF} {
			f, err := truetype.Parse(data)
			if err != nil {
				parseErr = errors.Wrap(errors.ErrCodeInternal, err, "parse embedded font")
				return
			}
			parsed[i] = f
		}
	})
	return parseErr
}

// Font returns the parsed font for w. Parsing happens once per process.
func Font(w Weight) (*truetype.Font, error) {
	if err := load(); err != nil {
		return nil, err
	}
	if w != Bold {
		w = Regular
	}
	return parsed[w], nil
}

// Face returns a new face of the given point size at 72 DPI, so one point
// is one pixel. Faces hold glyph caches and must not be shared between
// goroutines; ask for a new one per drawing context.
func Face(w Weight, size float64) (font.Face, error) {
	f, err := Font(w)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}
