// Package pkg provides the core libraries for diamondplot.
//
// # Overview
//
// Diamondplot turns tables of player statistics into annotated scatter
// charts. The pkg directory is organized into four main areas:
//
//  1. Data: [dataset] tables read from CSV, TSV or XLSX, with the summary
//     statistics the charts need
//  2. Charts: [chart] figures, [scatter] builders and [overlay] helpers
//  3. Rendering: [render] scenes and the [render/sink] output formats
//  4. Orchestration: [pipeline] (load → build → render)
//
// # Architecture
//
// The typical data flow through diamondplot:
//
//	CSV/XLSX file
//	     ↓
//	[dataset] (columns, missing cells, quantiles)
//	     ↓
//	[scatter] (points, mean lines or regression ±1 std)
//	     ↓
//	[overlay] (percentile regions, annotations, shapes)
//	     ↓
//	[render/sink] (SVG, PNG, JPEG, plotly JSON)
//
// # Quick Start
//
//	ds, _ := dataset.Load("hitters.csv", dataset.LoadOptions{})
//	cfg := chart.DefaultConfig()
//
//	fig, _ := scatter.WithRegression(ds, scatter.Options{X: "xwOBA", Y: "wOBA", Color: "Barrel%"}, cfg)
//	fig, _ = overlay.AddPercentiles(fig, ds, "xwOBA", "wOBA", 0.9, 0.1)
//	overlay.AddAnnotation(fig, "Judge", 0.477, 0.476, overlay.WithArrow())
//
//	svg := sink.RenderSVG(fig)
//
// # Supporting Packages
//
// [color] parses hex colours into RGBA strings. [fit] computes least-squares
// lines. [fonts] embeds the Go fonts used for raster output. [errors] carries
// machine-readable error codes. [observability] exposes pipeline hooks, and
// [buildinfo] holds version metadata set at link time.
//
// [dataset]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/dataset
// [chart]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/chart
// [scatter]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/scatter
// [overlay]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/overlay
// [render]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/pipeline
// [color]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/color
// [fit]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/fit
// [fonts]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/fonts
// [errors]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/diamondplot/pkg/buildinfo
package pkg
