package pipeline

import (
	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/dataset"
	"github.com/matzehuels/diamondplot/pkg/overlay"
	"github.com/matzehuels/diamondplot/pkg/scatter"
)

// Build creates the figure described by opts and applies its overlays:
// percentile regions first, then annotations, then shapes.
func Build(ds *dataset.Dataset, opts Options, cfg chart.Config) (*chart.Figure, error) {
	var (
		fig *chart.Figure
		err error
	)
	if opts.Regression {
		fig, err = scatter.WithRegression(ds, opts.ScatterOptions(), cfg)
	} else {
		fig, err = scatter.Scatter(ds, opts.ScatterOptions(), cfg)
	}
	if err != nil {
		return nil, err
	}

	if p := opts.Percentiles; p != nil {
		if _, err := overlay.AddPercentiles(fig, ds, opts.X, opts.Y, p.Upper, p.Lower); err != nil {
			return nil, err
		}
	}
	for _, a := range opts.Annotations {
		var aopts []overlay.AnnotationOption
		if a.Color != "" {
			aopts = append(aopts, overlay.WithTextColor(a.Color))
		}
		if a.Arrow {
			aopts = append(aopts, overlay.WithArrow())
		}
		overlay.AddAnnotation(fig, a.Text, a.X, a.Y, aopts...)
	}
	for _, s := range opts.Shapes {
		t, err := shapeType(s.Type)
		if err != nil {
			return nil, err
		}
		sopts := []overlay.ShapeOption{overlay.WithShapeType(t)}
		if s.Color != "" {
			sopts = append(sopts, overlay.WithOutline(s.Color))
		}
		overlay.AddShape(fig, s.X0, s.X1, s.Y0, s.Y1, sopts...)
	}
	return fig, nil
}
