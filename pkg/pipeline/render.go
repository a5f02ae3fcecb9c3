package pipeline

import (
	"fmt"

	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(fig *chart.Figure, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := sink.Render(fig, format, sink.WithScale(opts.Scale))
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[sink.Normalize(format)] = data
	}
	return artifacts, nil
}
