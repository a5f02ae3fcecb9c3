// Package chart defines the in-memory figure that scatter builders create and
// overlays decorate.
//
// # Overview
//
// A [Figure] holds traces (marker and line series), shapes (rectangles,
// circles, reference lines) and text annotations, plus the [Config] it was
// built with. Figures are plain values: every element is an exported struct
// and nothing is drawn until a sink renders the figure.
//
// Element operations mutate the figure and return it so calls chain:
//
//	fig.AddAnnotation(chart.Annotation{Text: "Judge", X: 0.476, Y: 0.477}).
//	    AddShape(chart.Shape{Type: chart.ShapeCircle, X0: 0.46, X1: 0.49, Y0: 0.46, Y1: 0.49})
//
// # Coordinates
//
// Element positions are in data units unless their reference says otherwise:
// [RefXDomain] and [RefYDomain] measure a fraction of the plotting area, so a
// horizontal reference line spans x from 0 to 1 in domain units whatever the
// data range is.
//
// # Configuration
//
// [Config] replaces any global theme. Dimensions, tick counts, marker sizes,
// overlay colours and fonts all live in it; [DefaultConfig] returns the
// standard look and [LoadConfig] overlays a TOML file on top of it.
package chart
