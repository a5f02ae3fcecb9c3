// Package cli implements the diamondplot command-line interface.
//
// # Commands
//
// The main commands are:
//   - plot: Build a scatter or regression chart from a CSV/XLSX file and
//     write it as SVG, PNG, JPEG or JSON
//   - describe: Summarise the numeric columns of a data file
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// lives on the [CLI] and is handed to the pipeline runner.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/diamondplot/pkg/buildinfo"
	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/pipeline"
	"github.com/matzehuels/diamondplot/pkg/render/sink"
)

// appName is the application name used for display.
const appName = buildinfo.Name

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// status receives transient progress output such as the spinner.
	status io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), status: w}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Diamondplot draws baseball scatter charts",
		Long:         `Diamondplot turns player stat tables into annotated scatter charts: mean lines, regression bands, percentile regions, labels and shapes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.plotCommand())
	root.AddCommand(c.describeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use. A non-empty configPath
// is loaded over the default chart config.
func (c *CLI) newRunner(configPath string) (*pipeline.Runner, error) {
	cfg := chart.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = chart.LoadConfig(configPath); err != nil {
			return nil, err
		}
		c.Logger.Debug("loaded chart config", "path", configPath)
	}
	return pipeline.NewRunner(cfg, c.Logger), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{sink.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
