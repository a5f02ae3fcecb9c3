package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

const battingCSV = "\ufeffName,Team,PA,wOBA\nJudge,NYY,704,.476\nSoto,NYY,713,.419\nOhtani,LAD,731,.431\n"

func TestReadCSV(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(battingCSV), 0)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
	if !d.Has("Name") {
		t.Error("BOM not stripped from first header")
	}
	woba, err := d.Floats("wOBA")
	if err != nil {
		t.Fatal(err)
	}
	if woba[0] != 0.476 {
		t.Errorf("wOBA[0] = %v, want 0.476", woba[0])
	}
}

func TestCSVRoundTrip(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(battingCSV), 0)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := d.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := ReadCSV(&buf, 0)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(back.Columns(), ",") != strings.Join(d.Columns(), ",") || back.Len() != d.Len() {
		t.Errorf("round trip changed table: %v rows %d", back.Columns(), back.Len())
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader(""), 0); !errors.Is(err, errors.ErrCodeEmptyData) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeEmptyData)
	}
}

// pandasCSV is what DataFrame.to_csv() writes by default: the index comes
// first under an empty header.
const pandasCSV = ",Name,Team,PA,xwOBA,wOBA\n0,Judge,NYY,704,.477,.458\n1,Soto,NYY,713,.439,.419\n"

func TestReadCSVBlankHeader(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(pandasCSV), 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(d.Columns(), ","); got != "Unnamed: 0,Name,Team,PA,xwOBA,wOBA" {
		t.Errorf("Columns() = %s", got)
	}
	idx, err := d.Floats("Unnamed: 0")
	if err != nil {
		t.Fatal(err)
	}
	if idx[1] != 1 {
		t.Errorf("index[1] = %v, want 1", idx[1])
	}
	xw, err := d.Floats("xwOBA")
	if err != nil {
		t.Fatal(err)
	}
	if xw[0] != 0.477 {
		t.Errorf("xwOBA[0] = %v, want 0.477", xw[0])
	}
}

func TestReadCSVBlankHeaderDuplicate(t *testing.T) {
	in := ",Unnamed: 0,PA\n0,a,704\n"
	if _, err := ReadCSV(strings.NewReader(in), 0); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want duplicate column", err)
	}
}

func TestLoadXLSXBlankHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"", "Name", "PA"},
		{0, "Judge", 704},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !d.Has("Unnamed: 0") || !d.Has("Name") {
		t.Errorf("Columns() = %v", d.Columns())
	}
}

func writeWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"Name", "Team", "PA", "xwOBA"},
		{"Judge", "NYY", 704, 0.477},
		{"Soto", "NYY", 713, 0.439},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batting.xlsx")
	writeWorkbook(t, path)

	d, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	pa, err := d.Floats("PA")
	if err != nil {
		t.Fatal(err)
	}
	if pa[1] != 713 {
		t.Errorf("PA[1] = %v, want 713", pa[1])
	}

	if _, err := Load(path, LoadOptions{Sheet: "Pitching"}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("missing sheet error = %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "nope.csv"), LoadOptions{}); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
	path := filepath.Join(dir, "data.parquet")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, LoadOptions{}); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("unsupported error = %v", err)
	}
}
