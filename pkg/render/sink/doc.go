// Package sink writes figures in their final output formats.
//
// # Overview
//
// A "sink" takes a finished [chart.Figure] and produces bytes:
//
//   - SVG: hand-written vector output with per-point hover titles
//   - PNG: raster output drawn with gg and the Go fonts
//   - JPEG: the same raster, encoded lossy
//   - JSON: a plotly-compatible {"data", "layout"} document
//
// SVG, PNG and JPEG all draw the same [render.Scene], so they agree on
// every position.
//
//	svg := sink.RenderSVG(fig)
//	png, err := sink.RenderPNG(fig, sink.WithScale(2))
//	doc, err := sink.RenderJSON(fig)
//
// # Formats
//
// [Render] dispatches on a format name ("svg", "png", "jpeg", "json") and is
// what the pipeline uses; [Formats] lists the names it accepts.
package sink
