package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/diamondplot/pkg/buildinfo"
	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/fonts"
	"github.com/matzehuels/diamondplot/pkg/render"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	hover     bool
	generator bool
}

// WithoutHover drops the per-marker <title> tooltips.
func WithoutHover() SVGOption { return func(r *svgRenderer) { r.hover = false } }

// WithoutGenerator drops the generator comment, for byte-stable output
// across versions.
func WithoutGenerator() SVGOption { return func(r *svgRenderer) { r.generator = false } }

// RenderSVG renders the figure as a standalone SVG document.
func RenderSVG(fig *chart.Figure, opts ...SVGOption) []byte {
	r := svgRenderer{hover: true, generator: true}
	for _, opt := range opts {
		opt(&r)
	}
	s := render.Build(fig)
	clip := "plot-" + s.ID

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(s.Width), num(s.Height), num(s.Width), num(s.Height))
	if r.generator {
		fmt.Fprintf(&buf, "  <!-- %s -->\n", buildinfo.Generator())
	}
	p := s.Proj.Plot
	fmt.Fprintf(&buf, `  <defs><clipPath id="%s"><rect x="%s" y="%s" width="%s" height="%s"/></clipPath></defs>`+"\n",
		clip, num(p.X), num(p.Y), num(p.W), num(p.H))

	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" %s/>`+"\n", fill(s.Background))
	fmt.Fprintf(&buf, `  <rect class="plot" x="%s" y="%s" width="%s" height="%s" %s/>`+"\n",
		num(p.X), num(p.Y), num(p.W), num(p.H), fill(s.PlotBackground))

	renderAxes(&buf, s)

	fmt.Fprintf(&buf, `  <g clip-path="url(#%s)">`+"\n", clip)
	for _, sh := range s.Shapes {
		if sh.Clip {
			renderShape(&buf, sh)
		}
	}
	for _, path := range s.Paths {
		renderPath(&buf, path)
	}
	for _, m := range s.Markers {
		renderMarker(&buf, m, r.hover)
	}
	buf.WriteString("  </g>\n")

	for _, sh := range s.Shapes {
		if !sh.Clip {
			renderShape(&buf, sh)
		}
	}
	if s.ColorBar != nil {
		renderColorBar(&buf, s.ColorBar, s.TickFont)
	}
	for _, e := range s.Legend {
		fmt.Fprintf(&buf, `  <circle class="legend" cx="%s" cy="%s" r="5" %s/>`+"\n", num(e.X+5), num(e.Y-4), fill(e.Fill))
		renderText(&buf, render.Label{Text: e.Name, X: e.X + 14, Baseline: e.Y, HAlign: "left", Font: s.TickFont})
	}
	for _, l := range s.Labels {
		renderLabel(&buf, l)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderAxes(buf *bytes.Buffer, s render.Scene) {
	p := s.Proj.Plot
	buf.WriteString(`  <g class="grid">` + "\n")
	for _, t := range s.XTicks {
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" %s/>`+"\n",
			num(t.Pos), num(p.Y), num(t.Pos), num(p.Bottom()), strokeAttrs(s.Grid))
	}
	for _, t := range s.YTicks {
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" %s/>`+"\n",
			num(p.X), num(t.Pos), num(p.Right()), num(t.Pos), strokeAttrs(s.Grid))
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="ticks">` + "\n")
	for _, t := range s.XTicks {
		renderText(buf, render.Label{
			Text: t.Label, X: t.Pos, HAlign: "center",
			Baseline: render.Baseline(p.Bottom()+6, "top", s.TickFont.Size), Font: s.TickFont,
		})
	}
	for _, t := range s.YTicks {
		renderText(buf, render.Label{
			Text: t.Label, X: p.X - 6, HAlign: "right",
			Baseline: render.Baseline(t.Pos, "middle", s.TickFont.Size), Font: s.TickFont,
		})
	}
	buf.WriteString("  </g>\n")
}

func renderPath(buf *bytes.Buffer, path render.Path) {
	if len(path.Points) == 0 {
		return
	}
	var d strings.Builder
	for i, pt := range path.Points {
		if i == 0 {
			d.WriteString("M")
		} else {
			d.WriteString(" L")
		}
		d.WriteString(num(pt[0]) + "," + num(pt[1]))
	}
	fmt.Fprintf(buf, `    <path class="line" d="%s" fill="none" %s/>`+"\n", d.String(), strokeAttrs(path.Stroke))
}

func renderMarker(buf *bytes.Buffer, m render.Marker, hover bool) {
	fmt.Fprintf(buf, `    <circle class="point" cx="%s" cy="%s" r="%s" %s %s`,
		num(m.X), num(m.Y), num(m.R), fill(m.Fill), strokeAttrs(m.Outline))
	if !hover || m.Hover == "" {
		buf.WriteString("/>\n")
		return
	}
	fmt.Fprintf(buf, "><title>%s</title></circle>\n", escapeXML(m.Hover))
}

func renderShape(buf *bytes.Buffer, sh render.ShapeGeom) {
	f := `fill="none"`
	if sh.Fill != nil {
		f = fill(*sh.Fill)
	}
	x0, x1 := min(sh.X0, sh.X1), max(sh.X0, sh.X1)
	y0, y1 := min(sh.Y0, sh.Y1), max(sh.Y0, sh.Y1)
	switch sh.Type {
	case chart.ShapeLine:
		fmt.Fprintf(buf, `    <line class="shape" x1="%s" y1="%s" x2="%s" y2="%s" %s/>`+"\n",
			num(sh.X0), num(sh.Y0), num(sh.X1), num(sh.Y1), strokeAttrs(sh.Stroke))
	case chart.ShapeCircle:
		fmt.Fprintf(buf, `    <ellipse class="shape" cx="%s" cy="%s" rx="%s" ry="%s" %s %s/>`+"\n",
			num((x0+x1)/2), num((y0+y1)/2), num((x1-x0)/2), num((y1-y0)/2), f, strokeAttrs(sh.Stroke))
	default:
		fmt.Fprintf(buf, `    <rect class="shape" x="%s" y="%s" width="%s" height="%s" %s %s/>`+"\n",
			num(x0), num(y0), num(x1-x0), num(y1-y0), f, strokeAttrs(sh.Stroke))
	}
}

func renderColorBar(buf *bytes.Buffer, cb *render.ColorBar, font render.Font) {
	buf.WriteString(`  <g class="colorbar">` + "\n")
	band := cb.Box.H / float64(len(cb.Bands))
	for i, p := range cb.Bands {
		// overlap by a hair so anti-aliasing leaves no seams
		fmt.Fprintf(buf, `    <rect x="%s" y="%s" width="%s" height="%s" %s/>`+"\n",
			num(cb.Box.X), num(cb.Box.Y+float64(i)*band), num(cb.Box.W), num(band+0.5), fill(p))
	}
	for _, t := range cb.Ticks {
		renderText(buf, render.Label{
			Text: t.Label, X: cb.Box.Right() + 4, HAlign: "left",
			Baseline: render.Baseline(t.Pos, "middle", font.Size), Font: font,
		})
	}
	if cb.Title != "" {
		renderText(buf, render.Label{
			Text: cb.Title, X: cb.Box.X, HAlign: "left",
			Baseline: cb.Box.Y - 8, Font: font,
		})
	}
	buf.WriteString("  </g>\n")
}

func renderLabel(buf *bytes.Buffer, l render.Label) {
	if a := l.Arrow; a != nil {
		fmt.Fprintf(buf, `  <line class="arrow" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
			num(a.X0), num(a.Y0), num(a.X1), num(a.Y1), l.Font.Paint.Hex())
		fmt.Fprintf(buf, `  <polygon class="arrowhead" points="%s" fill="%s"/>`+"\n",
			arrowHead(a), l.Font.Paint.Hex())
	}
	renderText(buf, l)
}

func renderText(buf *bytes.Buffer, l render.Label) {
	anchor := "middle"
	switch l.HAlign {
	case "left":
		anchor = "start"
	case "right":
		anchor = "end"
	}
	family := l.Font.Family
	if family == "" {
		family = fonts.FallbackFontFamily
	}
	transform := ""
	if l.Rotate != 0 {
		transform = fmt.Sprintf(` transform="rotate(%s %s %s)"`, num(l.Rotate), num(l.X), num(l.Baseline))
	}
	fmt.Fprintf(buf, `  <text x="%s" y="%s" text-anchor="%s" font-family="%s" font-size="%s" %s%s>%s</text>`+"\n",
		num(l.X), num(l.Baseline), anchor, escapeXML(family), num(l.Font.Size),
		fill(l.Font.Paint), transform, escapeXML(l.Text))
}

func arrowHead(a *render.Arrow) string {
	pts := render.ArrowHead(a, 6)
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = num(p[0]) + "," + num(p[1])
	}
	return strings.Join(parts, " ")
}

func fill(p render.Paint) string {
	if p.A < 1 {
		return fmt.Sprintf(`fill="%s" fill-opacity="%s"`, p.Hex(), p.Opacity())
	}
	return fmt.Sprintf(`fill="%s"`, p.Hex())
}

func strokeAttrs(s render.Stroke) string {
	if s.Width <= 0 {
		return `stroke="none"`
	}
	out := fmt.Sprintf(`stroke="%s" stroke-width="%s"`, s.Paint.Hex(), num(s.Width))
	if s.Paint.A < 1 {
		out += fmt.Sprintf(` stroke-opacity="%s"`, s.Paint.Opacity())
	}
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = num(d)
		}
		out += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	return out
}

// num formats a coordinate to two decimals, trimming trailing zeros.
func num(v float64) string { return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) }

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
