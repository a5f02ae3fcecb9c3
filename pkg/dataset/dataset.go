package dataset

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/diamondplot/pkg/errors"
)

// missing holds the cell spellings read as NaN, compared case-insensitively.
var missing = []string{"", "na", "n/a", "nan", "null", "none"}

type column struct {
	name string
	text []string
	nums []float64 // set when the column was added as numbers
}

// Dataset is a column-oriented table with named columns in insertion order.
// The zero value is not usable; create tables with [New] or [FromRecords].
type Dataset struct {
	order []string
	cols  map[string]*column
	rows  int
}

// New returns an empty dataset.
func New() *Dataset {
	return &Dataset{cols: make(map[string]*column)}
}

// FromRecords builds a dataset from a header row and data rows. Short rows
// are padded with empty cells; long rows are rejected. Blank header cells,
// such as the index column of a pandas export, are named "Unnamed: <i>".
func FromRecords(header []string, records [][]string) (*Dataset, error) {
	d := New()
	names := make([]string, len(header))
	for i, h := range header {
		if strings.TrimSpace(h) == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		if err := errors.ValidateColumnName(h); err != nil {
			return nil, err
		}
		if _, dup := d.cols[h]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate column %q", h)
		}
		names[i] = h
		d.order = append(d.order, h)
		d.cols[h] = &column{name: h, text: make([]string, 0, len(records))}
	}
	header = names

	for i, rec := range records {
		if len(rec) > len(header) {
			return nil, errors.New(errors.ErrCodeLengthMismatch,
				"row %d has %d cells, header has %d", i+1, len(rec), len(header))
		}
		for j, h := range header {
			cell := ""
			if j < len(rec) {
				cell = strings.TrimSpace(rec[j])
			}
			c := d.cols[h]
			c.text = append(c.text, cell)
		}
	}
	d.rows = len(records)
	return d, nil
}

// AddFloats appends a numeric column.
func (d *Dataset) AddFloats(name string, values []float64) error {
	if err := d.checkNew(name, len(values)); err != nil {
		return err
	}
	text := make([]string, len(values))
	for i, v := range values {
		text[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	d.add(&column{name: name, text: text, nums: slices.Clone(values)})
	return nil
}

// AddStrings appends a textual column.
func (d *Dataset) AddStrings(name string, values []string) error {
	if err := d.checkNew(name, len(values)); err != nil {
		return err
	}
	d.add(&column{name: name, text: slices.Clone(values)})
	return nil
}

func (d *Dataset) checkNew(name string, n int) error {
	if err := errors.ValidateColumnName(name); err != nil {
		return err
	}
	if _, dup := d.cols[name]; dup {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate column %q", name)
	}
	if len(d.order) > 0 && n != d.rows {
		return errors.New(errors.ErrCodeLengthMismatch,
			"column %q has %d values, dataset has %d rows", name, n, d.rows)
	}
	return nil
}

func (d *Dataset) add(c *column) {
	if len(d.order) == 0 {
		d.rows = len(c.text)
	}
	d.order = append(d.order, c.name)
	d.cols[c.name] = c
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.rows }

// Columns returns the column names in insertion order.
func (d *Dataset) Columns() []string { return slices.Clone(d.order) }

// Has reports whether the dataset has a column called name.
func (d *Dataset) Has(name string) bool {
	_, ok := d.cols[name]
	return ok
}

func (d *Dataset) lookup(name string) (*column, error) {
	c, ok := d.cols[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeColumnNotFound, "column %q not found", name)
	}
	return c, nil
}

// Strings returns a copy of the textual cells of a column.
func (d *Dataset) Strings(name string) ([]string, error) {
	c, err := d.lookup(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.text), nil
}

// Floats returns the column parsed as numbers. Missing cells become NaN; any
// other unparsable cell fails with COLUMN_NOT_NUMERIC wrapping the parse error.
func (d *Dataset) Floats(name string) ([]float64, error) {
	c, err := d.lookup(name)
	if err != nil {
		return nil, err
	}
	if c.nums != nil {
		return slices.Clone(c.nums), nil
	}

	out := make([]float64, len(c.text))
	for i, cell := range c.text {
		if isMissing(cell) {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeColumnNotNumeric, err,
				"column %q row %d", name, i+1)
		}
		out[i] = v
	}
	return out, nil
}

// IsNumeric reports whether every present cell of the column parses as a number
// and at least one cell is present.
func (d *Dataset) IsNumeric(name string) bool {
	vals, err := d.Floats(name)
	if err != nil {
		return false
	}
	return slices.ContainsFunc(vals, func(v float64) bool { return !math.IsNaN(v) })
}

// Select returns a new dataset holding the given rows, in the given order.
func (d *Dataset) Select(rows []int) (*Dataset, error) {
	out := New()
	out.rows = len(rows)
	for _, name := range d.order {
		c := d.cols[name]
		nc := &column{name: name, text: make([]string, len(rows))}
		if c.nums != nil {
			nc.nums = make([]float64, len(rows))
		}
		for i, r := range rows {
			if r < 0 || r >= d.rows {
				return nil, errors.New(errors.ErrCodeInvalidInput, "row %d out of range [0, %d)", r, d.rows)
			}
			nc.text[i] = c.text[r]
			if c.nums != nil {
				nc.nums[i] = c.nums[r]
			}
		}
		out.order = append(out.order, name)
		out.cols[name] = nc
	}
	return out, nil
}

// FilterMin keeps the rows whose value in the named column is at least min,
// the usual "qualified hitters" cut (e.g. PA >= 300). Missing values are dropped.
func (d *Dataset) FilterMin(name string, min float64) (*Dataset, error) {
	vals, err := d.Floats(name)
	if err != nil {
		return nil, err
	}
	keep := make([]int, 0, len(vals))
	for i, v := range vals {
		if v >= min {
			keep = append(keep, i)
		}
	}
	return d.Select(keep)
}

func isMissing(cell string) bool {
	lc := strings.ToLower(strings.TrimSpace(cell))
	return slices.Contains(missing, lc)
}
