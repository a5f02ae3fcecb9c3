// Package color converts and resolves the colour strings used in charts.
//
// [HexToRGBA] is the single conversion helper for turning a "#RRGGBB" string
// into an RGBA tuple with alpha blending; every overlay that needs a
// translucent line colour goes through it. [Parse] resolves any colour a
// figure may carry (hex, rgb(), rgba(), CSS names) for raster sinks.
//
// Palettes mirror the ones baseball charts are usually drawn with: [D3] for
// categorical series and [Tropic] as the diverging scale for continuous
// marker colours.
package color
