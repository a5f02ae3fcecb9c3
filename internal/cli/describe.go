package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/diamondplot/pkg/dataset"
	"github.com/matzehuels/diamondplot/pkg/errors"
)

// describeCommand creates the describe command for summarising a data file.
func (c *CLI) describeCommand() *cobra.Command {
	var sheet string
	var columns []string

	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Summarise the columns of a CSV/XLSX file",
		Long: `Summarise the columns of a CSV, TSV or XLSX file.

Numeric columns are shown with count, mean, standard deviation and
quartiles; text columns are listed by name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDescribe(cmd.Context(), args[0], sheet, columns)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet to read from a spreadsheet (default: active sheet)")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "only describe these columns")

	return cmd
}

func (c *CLI) runDescribe(ctx context.Context, path, sheet string, columns []string) error {
	runner, err := c.newRunner("")
	if err != nil {
		return err
	}
	ds, err := runner.Load(ctx, path, dataset.LoadOptions{Sheet: sheet})
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	summaries, text, err := describeColumns(ds, columns)
	if err != nil {
		return err
	}

	printKeyValue("file", path)
	printKeyValue("rows", strconv.Itoa(ds.Len()))
	printKeyValue("columns", strconv.Itoa(len(ds.Columns())))
	fmt.Println()
	if len(summaries) > 0 {
		fmt.Println(summaryTable(summaries))
	}
	if len(text) > 0 {
		printInfo("text columns: %s", strings.Join(text, ", "))
	}
	if len(summaries) >= 2 {
		fmt.Println()
		printNextStep("Plot two columns", fmt.Sprintf("%s plot %s --x %q --y %q", appName, path, summaries[0].Column, summaries[1].Column))
	}
	return nil
}

// describeColumns summarises the numeric columns of ds and returns the names
// of the rest. An empty selection means every column.
func describeColumns(ds *dataset.Dataset, selection []string) ([]dataset.Summary, []string, error) {
	names := selection
	if len(names) == 0 {
		names = ds.Columns()
	}

	var summaries []dataset.Summary
	var text []string
	for _, name := range names {
		if !ds.Has(name) {
			return nil, nil, errors.New(errors.ErrCodeColumnNotFound, "column %q not found", name)
		}
		if !ds.IsNumeric(name) {
			text = append(text, name)
			continue
		}
		s, err := ds.Describe(name)
		if err != nil {
			return nil, nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, text, nil
}
