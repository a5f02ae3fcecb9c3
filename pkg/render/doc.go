// Package render turns a [chart.Figure] into pixel geometry shared by every
// output format.
//
// # Overview
//
// A figure stores traces, shapes and annotations in data coordinates (or in
// axis-domain fractions for reference lines). Before any pixels are written
// the figure is resolved into a [Scene]:
//
//   - A [Projector] maps data and domain coordinates to pixels inside the
//     plot rectangle left by the configured margins.
//   - Tick positions and labels come from [chart.Ticks].
//   - Marker colours are sampled from the trace's colour scale.
//   - Annotation anchors and arrows are placed the way interactive plotting
//     tools place them: arrowed labels float 30px above their point.
//
// The [sink] subpackage writes a Scene as SVG, PNG or JPEG and the figure
// itself as plotly-compatible JSON:
//
//	fig, _ := scatter.Scatter(ds, scatter.Options{X: "xwOBA", Y: "wOBA"}, cfg)
//	svg := sink.RenderSVG(fig)
//	png, err := sink.RenderPNG(fig, sink.WithScale(0.5))
//
// [sink]: github.com/matzehuels/diamondplot/pkg/render/sink
package render
