package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

// LoadOptions controls [Load].
type LoadOptions struct {
	// Sheet selects the worksheet of a spreadsheet. Empty means the active sheet.
	Sheet string
	// Comma overrides the CSV field delimiter. Zero means ','.
	Comma rune
}

// ReadCSV decodes a table whose first record is the header.
// A UTF-8 byte order mark on the first header cell is stripped.
func ReadCSV(r io.Reader, comma rune) (*Dataset, error) {
	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read csv")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyData, "csv has no header")
	}
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return FromRecords(header, records[1:])
}

// ReadXLSX decodes a worksheet whose first row is the header.
func ReadXLSX(r io.Reader, sheet string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open workbook")
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "sheet %q not found (have %s)",
			sheet, strings.Join(f.GetSheetList(), ", "))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %q", sheet)
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyData, "sheet %q is empty", sheet)
	}
	return FromRecords(rows[0], rows[1:])
}

// Load reads a dataset from a local .csv, .tsv or .xlsx file.
func Load(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(f, opts.Comma)
	case ".tsv":
		return ReadCSV(f, '\t')
	case ".xlsx", ".xlsm":
		return ReadXLSX(f, opts.Sheet)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported data file %q (want .csv, .tsv or .xlsx)", ext)
	}
}

// WriteCSV encodes the dataset as CSV with a header row.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.order); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(d.order))
	for i := range d.rows {
		for j, name := range d.order {
			row[j] = d.cols[name].text[i]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
