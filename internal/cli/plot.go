package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/diamondplot/pkg/dataset"
	"github.com/matzehuels/diamondplot/pkg/errors"
	"github.com/matzehuels/diamondplot/pkg/pipeline"
	"github.com/matzehuels/diamondplot/pkg/render/sink"
)

// plotFlags holds the command-line flags for the plot command.
type plotFlags struct {
	x, y       string
	color      string
	hoverName  string
	hoverData  []string
	regression bool
	// regressionSet records an explicit --regression, which overrides --plot
	// in either direction.
	regressionSet bool
	percentiles   string   // "upper,lower"
	annotations   []string // "text@x,y"
	shapes        []string // "x0,x1,y0,y1[,type]"
	minimums      []string // "column=value"
	formats       string
	output        string // output file (single format) or base path (multiple)
	config        string // chart config TOML
	plot          string // plot definition TOML
	sheet         string
	scale         float64
}

// plotCommand creates the plot command for building and rendering charts.
func (c *CLI) plotCommand() *cobra.Command {
	var f plotFlags

	cmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "Plot two columns of a CSV/XLSX file",
		Long: `Plot two columns of a CSV, TSV or XLSX file as a scatter chart.

Without --regression the chart carries dash-dot lines at the mean of each
column. With --regression it carries the least-squares line and lines one
standard deviation above and below it.

Examples:
  diamondplot plot hitters.csv --x xwOBA --y wOBA --color Barrel%
  diamondplot plot hitters.csv --x xwOBA --y wOBA --regression --percentiles 0.9,0.1
  diamondplot plot hitters.xlsx --plot judge.toml -f svg,png -o out/judge`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.regressionSet = cmd.Flags().Changed("regression")
			opts, err := f.options()
			if err != nil {
				return err
			}
			return c.runPlot(cmd.Context(), args[0], &f, opts)
		},
	}

	cmd.Flags().StringVar(&f.x, "x", "", "column for the x axis")
	cmd.Flags().StringVar(&f.y, "y", "", "column for the y axis")
	cmd.Flags().StringVar(&f.color, "color", "", "column to colour points by (numeric: colour scale, text: categories)")
	cmd.Flags().StringVar(&f.hoverName, "hover-name", "", `column shown as the hover title (default "Name", "-" for none)`)
	cmd.Flags().StringSliceVar(&f.hoverData, "hover-data", nil, "extra hover columns (default Team,PA)")
	cmd.Flags().BoolVar(&f.regression, "regression", false, "draw the regression line and ±1 std lines instead of mean lines")
	cmd.Flags().StringVar(&f.percentiles, "percentiles", "", "outline upper and lower quantile regions, e.g. 0.9,0.1")
	cmd.Flags().StringArrayVar(&f.annotations, "annotate", nil, `add a text label, "text@x,y" (repeatable)`)
	cmd.Flags().StringArrayVar(&f.shapes, "shape", nil, `add a shape, "x0,x1,y0,y1[,circle|rect|line]" (repeatable)`)
	cmd.Flags().StringArrayVar(&f.minimums, "min", nil, `keep rows where column >= value, "PA=300" (repeatable)`)
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, jpeg, json (comma-separated)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&f.config, "config", "", "chart config file (TOML); a config key in --plot is layered over it")
	cmd.Flags().StringVar(&f.plot, "plot", "", "plot definition file (TOML); flags override it")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "worksheet to read from a spreadsheet (default: active sheet)")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "raster scale relative to the chart size (default 1)")

	return cmd
}

// options builds pipeline options from the plot definition file, if any,
// with flags layered on top.
func (f *plotFlags) options() (pipeline.Options, error) {
	var base pipeline.Options
	if f.plot != "" {
		var err error
		if base, err = pipeline.LoadOptions(f.plot); err != nil {
			return pipeline.Options{}, err
		}
	}

	flags := pipeline.Options{
		X:          f.x,
		Y:          f.y,
		Color:      f.color,
		HoverName:  f.hoverName,
		HoverData:  f.hoverData,
		Regression: f.regression,
		Scale:      f.scale,
	}
	if f.formats != "" {
		flags.Formats = parseFormats(f.formats)
	}
	if f.percentiles != "" {
		p, err := parsePercentiles(f.percentiles)
		if err != nil {
			return pipeline.Options{}, err
		}
		flags.Percentiles = &p
	}
	for _, s := range f.annotations {
		a, err := parseAnnotation(s)
		if err != nil {
			return pipeline.Options{}, err
		}
		flags.Annotations = append(flags.Annotations, a)
	}
	for _, s := range f.shapes {
		sh, err := parseShape(s)
		if err != nil {
			return pipeline.Options{}, err
		}
		flags.Shapes = append(flags.Shapes, sh)
	}

	opts := base.Merge(flags)
	if f.regressionSet {
		opts.Regression = f.regression
	}
	if opts.X == "" || opts.Y == "" {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "--x and --y are required (or set x and y in --plot)")
	}
	return opts, nil
}

func (c *CLI) runPlot(ctx context.Context, path string, f *plotFlags, opts pipeline.Options) error {
	runner, err := c.newRunner(f.config)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	ds, err := runner.Load(ctx, path, dataset.LoadOptions{Sheet: f.sheet})
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	prog.done("loaded dataset", "rows", ds.Len(), "columns", len(ds.Columns()))

	if ds, err = applyMinimums(ds, f.minimums); err != nil {
		return err
	}
	if n := countMissing(ds, opts.X, opts.Y); n > 0 {
		printWarning("%d rows missing %s or %s are not plotted", n, opts.X, opts.Y)
	}

	spinner := newSpinner(ctx, c.status, "Rendering "+strings.Join(parseFormats(strings.Join(opts.Formats, ",")), ", "))
	spinner.Start()
	res, err := runner.Execute(ctx, ds, opts)
	if err != nil {
		spinner.StopWithError("Plot failed")
		if errors.Is(err, errors.ErrCodeColumnNotFound) {
			printNextStep("List the available columns", appName+" describe "+path)
		}
		return err
	}
	spinner.Stop()

	formats := formatsOf(res.Artifacts)
	paths := outputPaths(f.output, path, opts.X, opts.Y, formats)
	for _, format := range formats {
		out := paths[format]
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(out, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
	}

	printSuccess("Plotted %s", StyleTitle.Render(res.Figure.Layout.Title))
	printStats(res.Stats.Rows, res.Stats.Elements, res.Stats.Bytes)
	for _, format := range formats {
		printFile(paths[format])
	}
	return nil
}

// formatsOf returns the artifact formats in canonical order.
func formatsOf(artifacts map[string][]byte) []string {
	var out []string
	for _, f := range sink.Formats() {
		if _, ok := artifacts[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// outputPaths maps each format to a file path. A single format with an
// explicit output writes exactly there; otherwise output (or a name derived
// from the input file and columns) is a base path that gets the format's
// extension.
func outputPaths(output, input, x, y string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}

	base := output
	if base == "" {
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		base = sanitize(stem + "_" + x + "_vs_" + y)
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	for _, f := range formats {
		paths[f] = base + "." + sink.Extension(f)
	}
	return paths
}

// sanitize replaces characters that are awkward in file names.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '%':
			return 'p'
		case '/', '\\', ' ', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, s)
}

// parsePercentiles parses "upper,lower".
func parsePercentiles(s string) (pipeline.Percentiles, error) {
	vals, err := parseFloats(s, 2)
	if err != nil {
		return pipeline.Percentiles{}, fmt.Errorf("--percentiles %q: %w", s, err)
	}
	return pipeline.Percentiles{Upper: vals[0], Lower: vals[1]}, nil
}

// parseAnnotation parses "text@x,y". The text may itself contain '@'; the
// last one separates the coordinates.
func parseAnnotation(s string) (pipeline.Annotation, error) {
	i := strings.LastIndex(s, "@")
	if i <= 0 {
		return pipeline.Annotation{}, errors.New(errors.ErrCodeInvalidInput, "--annotate %q: want text@x,y", s)
	}
	vals, err := parseFloats(s[i+1:], 2)
	if err != nil {
		return pipeline.Annotation{}, fmt.Errorf("--annotate %q: %w", s, err)
	}
	return pipeline.Annotation{Text: s[:i], X: vals[0], Y: vals[1]}, nil
}

// parseShape parses "x0,x1,y0,y1" with an optional trailing shape type.
func parseShape(s string) (pipeline.Shape, error) {
	parts := strings.Split(s, ",")
	var typ string
	if len(parts) == 5 {
		typ = strings.TrimSpace(parts[4])
		parts = parts[:4]
	}
	vals, err := parseFloats(strings.Join(parts, ","), 4)
	if err != nil {
		return pipeline.Shape{}, fmt.Errorf("--shape %q: %w", s, err)
	}
	return pipeline.Shape{Type: typ, X0: vals[0], X1: vals[1], Y0: vals[2], Y1: vals[3]}, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.New(errors.ErrCodeInvalidInput, "want %d comma-separated numbers, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "value %d", i+1)
		}
		out[i] = v
	}
	return out, nil
}

// applyMinimums filters ds by each "column=value" threshold in turn.
func applyMinimums(ds *dataset.Dataset, minimums []string) (*dataset.Dataset, error) {
	for _, m := range minimums {
		name, val, ok := strings.Cut(m, "=")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--min %q: want column=value", m)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "--min %q", m)
		}
		before := ds.Len()
		if ds, err = ds.FilterMin(strings.TrimSpace(name), v); err != nil {
			return nil, err
		}
		printInfo("%s ≥ %s keeps %d of %d rows", name, val, ds.Len(), before)
	}
	return ds, nil
}

// countMissing returns how many rows lack a value in x or y. Lookup errors
// count nothing; the pipeline reports them.
func countMissing(ds *dataset.Dataset, x, y string) int {
	xs, err := ds.Floats(x)
	if err != nil {
		return 0
	}
	ys, err := ds.Floats(y)
	if err != nil {
		return 0
	}
	n := 0
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			n++
		}
	}
	return n
}
