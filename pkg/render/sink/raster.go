package sink

import (
	"bytes"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/errors"
	"github.com/matzehuels/diamondplot/pkg/fonts"
	"github.com/matzehuels/diamondplot/pkg/render"
)

// supersample is the factor raster output is drawn at before being resized
// to its final size.
const supersample = 2

// RasterOption configures [RenderPNG], [RenderJPEG] and [Rasterize].
type RasterOption func(*rasterRenderer)

type rasterRenderer struct {
	scale   float64
	quality int
}

// WithScale sets the output size relative to the figure's layout size
// (default 1.0).
func WithScale(s float64) RasterOption {
	return func(r *rasterRenderer) { r.scale = s }
}

// WithQuality sets the JPEG quality, 1 to 100 (default 90).
func WithQuality(q int) RasterOption {
	return func(r *rasterRenderer) { r.quality = q }
}

func newRasterRenderer(opts []RasterOption) (rasterRenderer, error) {
	r := rasterRenderer{scale: 1, quality: 90}
	for _, opt := range opts {
		opt(&r)
	}
	if err := errors.ValidatePositive("scale", r.scale); err != nil {
		return r, err
	}
	if r.quality < 1 || r.quality > 100 {
		return r, errors.New(errors.ErrCodeInvalidConfig, "jpeg quality must be in [1, 100], got %d", r.quality)
	}
	return r, nil
}

// RenderPNG renders the figure as PNG.
func RenderPNG(fig *chart.Figure, opts ...RasterOption) ([]byte, error) {
	r, err := newRasterRenderer(opts)
	if err != nil {
		return nil, err
	}
	img, err := r.rasterize(fig)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// RenderJPEG renders the figure as JPEG.
func RenderJPEG(fig *chart.Figure, opts ...RasterOption) ([]byte, error) {
	r, err := newRasterRenderer(opts)
	if err != nil {
		return nil, err
	}
	img, err := r.rasterize(fig)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(r.quality)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode jpeg")
	}
	return buf.Bytes(), nil
}

// Rasterize draws the figure into an image of the layout size times the
// configured scale.
func Rasterize(fig *chart.Figure, opts ...RasterOption) (image.Image, error) {
	r, err := newRasterRenderer(opts)
	if err != nil {
		return nil, err
	}
	return r.rasterize(fig)
}

func (r rasterRenderer) rasterize(fig *chart.Figure) (image.Image, error) {
	s := render.Build(fig)
	w := max(1, int(math.Round(s.Width*r.scale)))
	h := max(1, int(math.Round(s.Height*r.scale)))

	c := &canvas{
		dc:    gg.NewContext(w*supersample, h*supersample),
		k:     r.scale * supersample,
		faces: map[float64]font.Face{},
	}
	if err := c.draw(s); err != nil {
		return nil, err
	}
	return imaging.Resize(c.dc.Image(), w, h, imaging.Lanczos), nil
}

// canvas draws scene coordinates multiplied by k. Coordinates are scaled by
// hand rather than through the context matrix so glyphs render at their
// native size instead of being resampled.
type canvas struct {
	dc    *gg.Context
	k     float64
	faces map[float64]font.Face
}

func (c *canvas) draw(s render.Scene) error {
	dc, k := c.dc, c.k
	dc.SetColor(s.Background.NRGBA())
	dc.Clear()

	p := s.Proj.Plot
	c.fillRect(p, s.PlotBackground)
	for _, t := range s.XTicks {
		c.line(t.Pos, p.Y, t.Pos, p.Bottom(), s.Grid)
	}
	for _, t := range s.YTicks {
		c.line(p.X, t.Pos, p.Right(), t.Pos, s.Grid)
	}
	for _, t := range s.XTicks {
		if err := c.text(render.Label{
			Text: t.Label, X: t.Pos, HAlign: "center",
			Baseline: render.Baseline(p.Bottom()+6, "top", s.TickFont.Size), Font: s.TickFont,
		}); err != nil {
			return err
		}
	}
	for _, t := range s.YTicks {
		if err := c.text(render.Label{
			Text: t.Label, X: p.X - 6, HAlign: "right",
			Baseline: render.Baseline(t.Pos, "middle", s.TickFont.Size), Font: s.TickFont,
		}); err != nil {
			return err
		}
	}

	dc.DrawRectangle(p.X*k, p.Y*k, p.W*k, p.H*k)
	dc.Clip()
	for _, sh := range s.Shapes {
		if sh.Clip {
			c.shape(sh)
		}
	}
	for _, path := range s.Paths {
		c.path(path)
	}
	for _, m := range s.Markers {
		dc.DrawCircle(m.X*k, m.Y*k, m.R*k)
		dc.SetColor(m.Fill.NRGBA())
		dc.FillPreserve()
		c.stroke(m.Outline)
	}
	dc.ResetClip()

	for _, sh := range s.Shapes {
		if !sh.Clip {
			c.shape(sh)
		}
	}
	if cb := s.ColorBar; cb != nil {
		if err := c.colorBar(cb, s.TickFont); err != nil {
			return err
		}
	}
	for _, e := range s.Legend {
		dc.DrawCircle((e.X+5)*k, (e.Y-4)*k, 5*k)
		dc.SetColor(e.Fill.NRGBA())
		dc.Fill()
		if err := c.text(render.Label{Text: e.Name, X: e.X + 14, Baseline: e.Y, HAlign: "left", Font: s.TickFont}); err != nil {
			return err
		}
	}
	for _, l := range s.Labels {
		if a := l.Arrow; a != nil {
			c.line(a.X0, a.Y0, a.X1, a.Y1, render.Stroke{Paint: l.Font.Paint, Width: 1})
			head := render.ArrowHead(a, 6)
			dc.MoveTo(head[0][0]*k, head[0][1]*k)
			dc.LineTo(head[1][0]*k, head[1][1]*k)
			dc.LineTo(head[2][0]*k, head[2][1]*k)
			dc.ClosePath()
			dc.SetColor(l.Font.Paint.NRGBA())
			dc.Fill()
		}
		if err := c.text(l); err != nil {
			return err
		}
	}
	return nil
}

func (c *canvas) fillRect(r render.Rect, p render.Paint) {
	c.dc.DrawRectangle(r.X*c.k, r.Y*c.k, r.W*c.k, r.H*c.k)
	c.dc.SetColor(p.NRGBA())
	c.dc.Fill()
}

func (c *canvas) line(x0, y0, x1, y1 float64, s render.Stroke) {
	c.dc.DrawLine(x0*c.k, y0*c.k, x1*c.k, y1*c.k)
	c.stroke(s)
}

// stroke strokes and clears the current path.
func (c *canvas) stroke(s render.Stroke) {
	if s.Width <= 0 {
		c.dc.ClearPath()
		return
	}
	dash := make([]float64, len(s.Dash))
	for i, d := range s.Dash {
		dash[i] = d * c.k
	}
	c.dc.SetDash(dash...)
	c.dc.SetLineWidth(s.Width * c.k)
	c.dc.SetColor(s.Paint.NRGBA())
	c.dc.Stroke()
	c.dc.SetDash()
}

func (c *canvas) path(p render.Path) {
	for i, pt := range p.Points {
		if i == 0 {
			c.dc.MoveTo(pt[0]*c.k, pt[1]*c.k)
			continue
		}
		c.dc.LineTo(pt[0]*c.k, pt[1]*c.k)
	}
	c.stroke(p.Stroke)
}

func (c *canvas) shape(sh render.ShapeGeom) {
	k := c.k
	x0, x1 := min(sh.X0, sh.X1), max(sh.X0, sh.X1)
	y0, y1 := min(sh.Y0, sh.Y1), max(sh.Y0, sh.Y1)
	switch sh.Type {
	case chart.ShapeLine:
		c.line(sh.X0, sh.Y0, sh.X1, sh.Y1, sh.Stroke)
		return
	case chart.ShapeCircle:
		c.dc.DrawEllipse((x0+x1)/2*k, (y0+y1)/2*k, (x1-x0)/2*k, (y1-y0)/2*k)
	default:
		c.dc.DrawRectangle(x0*k, y0*k, (x1-x0)*k, (y1-y0)*k)
	}
	if sh.Fill != nil {
		c.dc.SetColor(sh.Fill.NRGBA())
		c.dc.FillPreserve()
	}
	c.stroke(sh.Stroke)
}

func (c *canvas) colorBar(cb *render.ColorBar, f render.Font) error {
	band := cb.Box.H / float64(len(cb.Bands))
	for i, p := range cb.Bands {
		c.fillRect(render.Rect{X: cb.Box.X, Y: cb.Box.Y + float64(i)*band, W: cb.Box.W, H: band + 0.5}, p)
	}
	for _, t := range cb.Ticks {
		if err := c.text(render.Label{
			Text: t.Label, X: cb.Box.Right() + 4, HAlign: "left",
			Baseline: render.Baseline(t.Pos, "middle", f.Size), Font: f,
		}); err != nil {
			return err
		}
	}
	if cb.Title == "" {
		return nil
	}
	return c.text(render.Label{Text: cb.Title, X: cb.Box.X, HAlign: "left", Baseline: cb.Box.Y - 8, Font: f})
}

func (c *canvas) text(l render.Label) error {
	if l.Text == "" {
		return nil
	}
	size := l.Font.Size * c.k
	face, ok := c.faces[size]
	if !ok {
		var err error
		if face, err = fonts.Face(fonts.Regular, size); err != nil {
			return err
		}
		c.faces[size] = face
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(l.Font.Paint.NRGBA())

	ax := 0.5
	switch l.HAlign {
	case "left":
		ax = 0
	case "right":
		ax = 1
	}
	x, y := l.X*c.k, l.Baseline*c.k
	if l.Rotate != 0 {
		c.dc.Push()
		c.dc.RotateAbout(gg.Radians(l.Rotate), x, y)
		defer c.dc.Pop()
	}
	c.dc.DrawStringAnchored(l.Text, x, y, ax, 0)
	return nil
}
