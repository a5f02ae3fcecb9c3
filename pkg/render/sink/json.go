package sink

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/matzehuels/diamondplot/pkg/buildinfo"
	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/errors"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent bool
}

// WithIndent pretty-prints the document.
func WithIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonFigure struct {
	Data   []jsonTrace `json:"data"`
	Layout jsonLayout  `json:"layout"`
}

type jsonTrace struct {
	Type          string      `json:"type"`
	Name          string      `json:"name,omitempty"`
	Mode          string      `json:"mode"`
	X             []jsonFloat `json:"x"`
	Y             []jsonFloat `json:"y"`
	HoverText     []string    `json:"hovertext,omitempty"`
	CustomData    [][]string  `json:"customdata,omitempty"`
	HoverTemplate string      `json:"hovertemplate,omitempty"`
	Marker        *jsonMarker `json:"marker,omitempty"`
	Line          *jsonLine   `json:"line,omitempty"`
	ShowLegend    bool        `json:"showlegend"`
}

type jsonMarker struct {
	Size       float64       `json:"size"`
	Color      any           `json:"color"`
	ColorScale [][2]any      `json:"colorscale,omitempty"`
	CMin       *float64      `json:"cmin,omitempty"`
	CMax       *float64      `json:"cmax,omitempty"`
	ShowScale  bool          `json:"showscale,omitempty"`
	ColorBar   *jsonColorBar `json:"colorbar,omitempty"`
	Line       *jsonLine     `json:"line,omitempty"`
}

type jsonColorBar struct {
	Title jsonTitle `json:"title"`
}

type jsonLine struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width"`
	Dash  string  `json:"dash,omitempty"`
}

type jsonTitle struct {
	Text string `json:"text"`
}

type jsonAxis struct {
	Title  jsonTitle   `json:"title"`
	NTicks int         `json:"nticks"`
	Range  *[2]float64 `json:"range,omitempty"`
}

type jsonFont struct {
	Family string  `json:"family,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Color  string  `json:"color,omitempty"`
}

type jsonShape struct {
	Type      string   `json:"type"`
	XRef      string   `json:"xref"`
	YRef      string   `json:"yref"`
	X0        float64  `json:"x0"`
	Y0        float64  `json:"y0"`
	X1        float64  `json:"x1"`
	Y1        float64  `json:"y1"`
	Line      jsonLine `json:"line"`
	FillColor string   `json:"fillcolor,omitempty"`
}

type jsonAnnotation struct {
	Text      string   `json:"text"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	XRef      string   `json:"xref"`
	YRef      string   `json:"yref"`
	XAnchor   string   `json:"xanchor,omitempty"`
	YAnchor   string   `json:"yanchor,omitempty"`
	ShowArrow bool     `json:"showarrow"`
	Font      jsonFont `json:"font"`
}

type jsonLayout struct {
	Title        jsonTitle        `json:"title"`
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	XAxis        jsonAxis         `json:"xaxis"`
	YAxis        jsonAxis         `json:"yaxis"`
	Shapes       []jsonShape      `json:"shapes"`
	Annotations  []jsonAnnotation `json:"annotations"`
	PaperBGColor string           `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string           `json:"plot_bgcolor,omitempty"`
	Margin       chart.Margin     `json:"margin"`
	Meta         jsonMeta         `json:"meta"`
}

type jsonMeta struct {
	ID        string `json:"id"`
	Generator string `json:"generator"`
}

// jsonFloat encodes NaN and infinities as null, which JSON cannot represent.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// RenderJSON encodes the figure as a plotly figure document:
// {"data": [...traces], "layout": {...}}.
func RenderJSON(fig *chart.Figure, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonFigure{
		Data:   make([]jsonTrace, 0, len(fig.Traces)),
		Layout: buildJSONLayout(fig),
	}
	for _, t := range fig.Traces {
		out.Data = append(out.Data, buildJSONTrace(t))
	}

	var (
		data []byte
		err  error
	)
	if r.indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode figure json")
	}
	return data, nil
}

func floats(vs []float64) []jsonFloat {
	out := make([]jsonFloat, len(vs))
	for i, v := range vs {
		out[i] = jsonFloat(v)
	}
	return out
}

func buildJSONTrace(t chart.Trace) jsonTrace {
	jt := jsonTrace{
		Type:       "scatter",
		Name:       t.Name,
		Mode:       string(t.Mode),
		X:          floats(t.X),
		Y:          floats(t.Y),
		HoverText:  t.Text,
		ShowLegend: t.ShowLegend,
	}
	if t.Mode == chart.ModeLines {
		jt.Line = &jsonLine{Color: t.Line.Color, Width: t.Line.Width, Dash: string(t.Line.Dash)}
		return jt
	}

	m := t.Marker
	jm := &jsonMarker{Size: m.Size, Color: m.Color, ShowScale: m.ShowScale}
	if len(m.Values) > 0 {
		jm.Color = floats(m.Values)
		cmin, cmax := m.CMin, m.CMax
		jm.CMin, jm.CMax = &cmin, &cmax
		for i, stop := range m.ColorScale {
			pos := 0.0
			if len(m.ColorScale) > 1 {
				pos = float64(i) / float64(len(m.ColorScale)-1)
			}
			jm.ColorScale = append(jm.ColorScale, [2]any{pos, stop})
		}
		if m.ColorBarTitle != "" {
			jm.ColorBar = &jsonColorBar{Title: jsonTitle{Text: m.ColorBarTitle}}
		}
	}
	if m.LineWidth > 0 {
		jm.Line = &jsonLine{Color: m.LineColor, Width: m.LineWidth}
	}
	jt.Marker = jm

	if len(t.Hover) > 0 {
		jt.CustomData = make([][]string, len(t.X))
		for i := range jt.CustomData {
			row := make([]string, len(t.Hover))
			for k, h := range t.Hover {
				if i < len(h.Values) {
					row[k] = h.Values[i]
				}
			}
			jt.CustomData[i] = row
		}
		jt.HoverTemplate = hoverTemplate(t)
	}
	return jt
}

func hoverTemplate(t chart.Trace) string {
	tmpl := "<b>%{hovertext}</b><br><br>x=%{x}<br>y=%{y}"
	for k, h := range t.Hover {
		tmpl += "<br>" + h.Name + "=%{customdata[" + strconv.Itoa(k) + "]}"
	}
	return tmpl + "<extra></extra>"
}

func buildJSONLayout(fig *chart.Figure) jsonLayout {
	l := fig.Layout
	cfg := fig.Config
	out := jsonLayout{
		Title:        jsonTitle{Text: l.Title},
		Width:        l.Width,
		Height:       l.Height,
		XAxis:        jsonAxis{Title: jsonTitle{Text: l.XAxis.Title}, NTicks: l.XAxis.NTicks, Range: l.XAxis.Range},
		YAxis:        jsonAxis{Title: jsonTitle{Text: l.YAxis.Title}, NTicks: l.YAxis.NTicks, Range: l.YAxis.Range},
		Shapes:       make([]jsonShape, 0, len(fig.Shapes)),
		Annotations:  make([]jsonAnnotation, 0, len(fig.Annotations)),
		PaperBGColor: cfg.Background,
		PlotBGColor:  cfg.PlotBackground,
		Margin:       cfg.Margin,
		Meta:         jsonMeta{ID: fig.ID, Generator: buildinfo.Generator()},
	}
	for _, s := range fig.Shapes {
		out.Shapes = append(out.Shapes, jsonShape{
			Type: string(s.Type), XRef: string(s.XRef), YRef: string(s.YRef),
			X0: s.X0, Y0: s.Y0, X1: s.X1, Y1: s.Y1,
			Line:      jsonLine{Color: s.Line.Color, Width: s.Line.Width, Dash: string(s.Line.Dash)},
			FillColor: s.FillColor,
		})
	}
	for _, a := range fig.Annotations {
		out.Annotations = append(out.Annotations, jsonAnnotation{
			Text: a.Text, X: a.X, Y: a.Y,
			XRef: string(a.XRef), YRef: string(a.YRef),
			XAnchor: a.XAnchor, YAnchor: a.YAnchor,
			ShowArrow: a.ShowArrow,
			Font:      jsonFont{Family: a.Font.Family, Size: a.Font.Size, Color: a.Font.Color},
		})
	}
	return out
}
