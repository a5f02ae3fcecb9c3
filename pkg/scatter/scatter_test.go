package scatter

import (
	"math"
	"testing"

	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/dataset"
	"github.com/matzehuels/diamondplot/pkg/errors"
)

const tol = 1e-9

func hitters(t *testing.T) *dataset.Dataset {
	t.Helper()
	d := dataset.New()
	for _, err := range []error{
		d.AddStrings("Name", []string{"Judge", "Soto", "Ohtani", "Witt", "Betts", "Ramirez"}),
		d.AddStrings("Team", []string{"NYY", "NYY", "LAD", "KCR", "LAD", "CLE"}),
		d.AddFloats("PA", []float64{704, 713, 731, 709, 516, 682}),
		d.AddFloats("xwOBA", []float64{0.477, 0.439, 0.440, 0.384, 0.374, 0.359}),
		d.AddFloats("wOBA", []float64{0.476, 0.419, 0.431, 0.408, 0.372, 0.360}),
		d.AddFloats("Barrel%", []float64{26.8, 19.4, 21.5, 11.1, 7.4, 10.0}),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	return d
}

func mean(vals []float64) float64 {
	var s float64
	for _, v := range vals {
		s += v
	}
	return s / float64(len(vals))
}

func TestScatterMeanLines(t *testing.T) {
	ds := hitters(t)
	fig, err := Scatter(ds, Options{X: "xwOBA", Y: "wOBA", Color: "Barrel%"}, chart.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if fig.Layout.Title != "xwOBA vs wOBA" {
		t.Errorf("Title = %q", fig.Layout.Title)
	}
	if len(fig.Traces) != 1 || len(fig.Shapes) != 2 || len(fig.Annotations) != 2 {
		t.Fatalf("traces/shapes/annotations = %d/%d/%d, want 1/2/2",
			len(fig.Traces), len(fig.Shapes), len(fig.Annotations))
	}

	ys, _ := ds.Floats("wOBA")
	xs, _ := ds.Floats("xwOBA")
	h, v := fig.Shapes[0], fig.Shapes[1]
	if math.Abs(h.Y0-mean(ys)) > tol || h.Y0 != h.Y1 || h.XRef != chart.RefXDomain {
		t.Errorf("horizontal line = %+v, want y = %v", h, mean(ys))
	}
	if math.Abs(v.X0-mean(xs)) > tol || v.X0 != v.X1 || v.YRef != chart.RefYDomain {
		t.Errorf("vertical line = %+v, want x = %v", v, mean(xs))
	}
	if h.Line.Dash != chart.DashDot {
		t.Errorf("mean line dash = %q, want dot", h.Line.Dash)
	}
	if fig.Annotations[0].Text != "Mean wOBA" || fig.Annotations[1].Text != "Mean xwOBA" {
		t.Errorf("labels = %q, %q", fig.Annotations[0].Text, fig.Annotations[1].Text)
	}
}

func TestScatterMarkerStyle(t *testing.T) {
	cfg := chart.DefaultConfig()
	fig, err := Scatter(hitters(t), Options{X: "xwOBA", Y: "wOBA", Color: "Barrel%"}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	tr := fig.Traces[0]
	if tr.Marker.Size != 10 || tr.Marker.LineWidth != 2 {
		t.Errorf("marker = %+v, want size 10 outline 2", tr.Marker)
	}
	if !tr.Marker.ShowScale || tr.Marker.CMin != 7.4 || tr.Marker.CMax != 26.8 {
		t.Errorf("continuous colour = %+v", tr.Marker)
	}
	if len(tr.Text) != 6 || tr.Text[0] != "Judge" {
		t.Errorf("hover names = %v", tr.Text)
	}
	if len(tr.Hover) != 2 || tr.Hover[0].Name != "Team" || tr.Hover[1].Name != "PA" {
		t.Errorf("hover data = %+v", tr.Hover)
	}
	if fig.Layout.Width != 1350 || fig.Layout.Height != 700 ||
		fig.Layout.XAxis.NTicks != 40 || fig.Layout.YAxis.NTicks != 20 {
		t.Errorf("layout = %+v", fig.Layout)
	}
}

func TestScatterCategoricalColour(t *testing.T) {
	fig, err := Scatter(hitters(t), Options{X: "xwOBA", Y: "wOBA", Color: "Team"}, chart.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	// NYY, LAD, KCR, CLE
	if len(fig.Traces) != 4 {
		t.Fatalf("traces = %d, want 4", len(fig.Traces))
	}
	nyy := fig.Traces[0]
	if nyy.Name != "NYY" || len(nyy.X) != 2 || nyy.Text[1] != "Soto" || !nyy.ShowLegend {
		t.Errorf("NYY trace = %+v", nyy)
	}
	if fig.Traces[1].Marker.Color == nyy.Marker.Color {
		t.Error("categories share a colour")
	}
	if got := nyy.Hover[1].Values; len(got) != 2 || got[0] != "704" {
		t.Errorf("NYY hover PA = %v", got)
	}
}

func TestScatterReturnsNewFigure(t *testing.T) {
	ds := hitters(t)
	opts := Options{X: "xwOBA", Y: "wOBA", Color: "Barrel%"}
	a, err := Scatter(ds, opts, chart.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Scatter(ds, opts, chart.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("Scatter returned the same figure twice")
	}
	a.AddAnnotation(chart.Annotation{Text: "x"})
	if b.ElementCount() == a.ElementCount() {
		t.Error("mutating one figure changed the other")
	}
}

func TestScatterMissingColumn(t *testing.T) {
	ds := hitters(t)
	tests := []struct {
		name string
		opts Options
	}{
		{"missing x", Options{X: "OPS", Y: "wOBA"}},
		{"missing y", Options{X: "xwOBA", Y: "OPS"}},
		{"missing colour", Options{X: "xwOBA", Y: "wOBA", Color: "HardHit%"}},
		{"missing hover", Options{X: "xwOBA", Y: "wOBA", HoverData: []string{"Age"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scatter(ds, tt.opts, chart.DefaultConfig())
			if !errors.Is(err, errors.ErrCodeColumnNotFound) {
				t.Errorf("error = %v, want %s", err, errors.ErrCodeColumnNotFound)
			}
			_, err = WithRegression(ds, tt.opts, chart.DefaultConfig())
			if !errors.Is(err, errors.ErrCodeColumnNotFound) {
				t.Errorf("regression error = %v, want %s", err, errors.ErrCodeColumnNotFound)
			}
		})
	}
}

func TestScatterNoHover(t *testing.T) {
	d := dataset.New()
	_ = d.AddFloats("x", []float64{1, 2, 3})
	_ = d.AddFloats("y", []float64{2, 4, 6})
	fig, err := Scatter(d, Options{X: "x", Y: "y", HoverName: "-", HoverData: []string{}}, chart.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if fig.Traces[0].Text != nil || len(fig.Traces[0].Hover) != 0 {
		t.Errorf("hover should be empty: %+v", fig.Traces[0])
	}
}

func TestFigureIDsDifferByKind(t *testing.T) {
	ds := hitters(t)
	opts := Options{X: "xwOBA", Y: "wOBA"}
	plain, err := Scatter(ds, opts, chart.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	reg, err := WithRegression(ds, opts, chart.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if plain.Layout.Title != reg.Layout.Title {
		t.Fatalf("titles differ: %q vs %q", plain.Layout.Title, reg.Layout.Title)
	}
	if plain.ID == reg.ID {
		t.Errorf("scatter and regression figures share ID %s", plain.ID)
	}
	if plain.Kind != KindScatter || reg.Kind != KindRegression {
		t.Errorf("kinds = %q, %q", plain.Kind, reg.Kind)
	}

	again, err := Scatter(ds, opts, chart.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != plain.ID {
		t.Error("identical inputs should give identical IDs")
	}
}
