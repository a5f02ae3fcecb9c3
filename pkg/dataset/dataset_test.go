package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

func batting(t *testing.T) *Dataset {
	t.Helper()
	d := New()
	must(t, d.AddStrings("Name", []string{"Judge", "Soto", "Ohtani", "Witt", "Betts"}))
	must(t, d.AddStrings("Team", []string{"NYY", "NYY", "LAD", "KCR", "LAD"}))
	must(t, d.AddFloats("PA", []float64{704, 713, 731, 709, 516}))
	must(t, d.AddFloats("wOBA", []float64{0.476, 0.419, 0.431, 0.408, 0.372}))
	return d
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func TestAddColumns(t *testing.T) {
	d := batting(t)
	if d.Len() != 5 {
		t.Errorf("Len() = %d, want 5", d.Len())
	}
	if got := strings.Join(d.Columns(), ","); got != "Name,Team,PA,wOBA" {
		t.Errorf("Columns() = %s", got)
	}
	if !d.Has("PA") || d.Has("OPS") {
		t.Error("Has() mismatch")
	}
}

func TestAddColumnErrors(t *testing.T) {
	d := batting(t)
	tests := []struct {
		name string
		err  error
		code errors.Code
	}{
		{"length mismatch", d.AddFloats("OPS", []float64{1, 2}), errors.ErrCodeLengthMismatch},
		{"duplicate", d.AddStrings("Name", make([]string, 5)), errors.ErrCodeInvalidInput},
		{"empty name", d.AddFloats("", make([]float64, 5)), errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.code) {
				t.Errorf("error = %v, want code %s", tt.err, tt.code)
			}
		})
	}
}

func TestFloatsMissingColumn(t *testing.T) {
	d := batting(t)
	_, err := d.Floats("xwOBA")
	if !errors.Is(err, errors.ErrCodeColumnNotFound) {
		t.Errorf("Floats(xwOBA) error = %v, want %s", err, errors.ErrCodeColumnNotFound)
	}
}

func TestFloatsNotNumeric(t *testing.T) {
	d := batting(t)
	_, err := d.Floats("Team")
	if !errors.Is(err, errors.ErrCodeColumnNotNumeric) {
		t.Errorf("Floats(Team) error = %v, want %s", err, errors.ErrCodeColumnNotNumeric)
	}
	if d.IsNumeric("Team") {
		t.Error("IsNumeric(Team) = true")
	}
	if !d.IsNumeric("PA") {
		t.Error("IsNumeric(PA) = false")
	}
}

func TestFromRecordsMissingCells(t *testing.T) {
	d, err := FromRecords([]string{"Name", "HR"}, [][]string{
		{"A", "10"},
		{"B", "NA"},
		{"C", ""},
		{"D"},
	})
	if err != nil {
		t.Fatal(err)
	}
	hr, err := d.Floats("HR")
	if err != nil {
		t.Fatal(err)
	}
	if hr[0] != 10 {
		t.Errorf("hr[0] = %v, want 10", hr[0])
	}
	for i := 1; i < 4; i++ {
		if !math.IsNaN(hr[i]) {
			t.Errorf("hr[%d] = %v, want NaN", i, hr[i])
		}
	}
	mean, err := d.Mean("HR")
	if err != nil || mean != 10 {
		t.Errorf("Mean(HR) = %v, %v; want 10", mean, err)
	}
}

func TestFromRecordsErrors(t *testing.T) {
	if _, err := FromRecords([]string{"a", "a"}, nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("duplicate header error = %v", err)
	}
	if _, err := FromRecords([]string{"a"}, [][]string{{"1", "2"}}); !errors.Is(err, errors.ErrCodeLengthMismatch) {
		t.Errorf("long row error = %v", err)
	}
}

func TestSelectAndFilterMin(t *testing.T) {
	d := batting(t)
	q, err := d.FilterMin("PA", 700)
	if err != nil {
		t.Fatal(err)
	}
	if q.Len() != 4 {
		t.Fatalf("FilterMin Len() = %d, want 4", q.Len())
	}
	names, _ := q.Strings("Name")
	if strings.Join(names, ",") != "Judge,Soto,Ohtani,Witt" {
		t.Errorf("names = %v", names)
	}
	if _, err := d.Select([]int{9}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Select out of range error = %v", err)
	}
}
