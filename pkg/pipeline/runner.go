package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/diamondplot/pkg/chart"
	"github.com/matzehuels/diamondplot/pkg/dataset"
	"github.com/matzehuels/diamondplot/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for its config and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Config chart.Config
	Logger *log.Logger
}

// NewRunner creates a runner that builds figures with cfg.
// If logger is nil, log output is discarded.
func NewRunner(cfg chart.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Config: cfg, Logger: logger}
}

// Load reads a dataset from disk, reporting to the observability hooks.
func (r *Runner) Load(ctx context.Context, path string, lopts dataset.LoadOptions) (*dataset.Dataset, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	ds, err := dataset.Load(path, lopts)
	rows := 0
	if ds != nil {
		rows = ds.Len()
	}
	hooks.OnLoadComplete(ctx, path, rows, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded dataset", "path", path, "rows", rows, "columns", len(ds.Columns()))
	return ds, nil
}

// Execute runs the complete build → render pipeline over ds.
func (r *Runner) Execute(ctx context.Context, ds *dataset.Dataset, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	cfg, err := r.config(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:        uuid.New(),
		Artifacts: make(map[string][]byte),
	}
	result.Stats.Rows = ds.Len()

	// Stage 1: Build
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buildStart := time.Now()
	fig, err := r.Build(ctx, ds, opts, cfg)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Figure = fig
	result.Stats.Elements = fig.ElementCount()

	// Stage 2: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, fig, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	for _, data := range artifacts {
		result.Stats.Bytes += len(data)
	}

	opts.Logger.Info("rendered outputs",
		"run", result.ID,
		"formats", opts.Formats,
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build validates opts and builds the figure, timing the stage.
func (r *Runner) Build(ctx context.Context, ds *dataset.Dataset, opts Options, cfg chart.Config) (*chart.Figure, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	kind := opts.Kind()
	hooks.OnBuildStart(ctx, kind, ds.Len())
	start := time.Now()

	fig, err := Build(ds, opts, cfg)
	elements := 0
	if fig != nil {
		elements = fig.ElementCount()
	}
	elapsed := time.Since(start)
	hooks.OnBuildComplete(ctx, kind, elements, elapsed, err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("built figure",
		"kind", kind,
		"title", fig.Layout.Title,
		"elements", elements,
		"duration", elapsed)
	return fig, nil
}

// Render produces every requested format for fig.
func (r *Runner) Render(ctx context.Context, fig *chart.Figure, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := Render(fig, opts)
	size := 0
	for _, data := range artifacts {
		size += len(data)
	}
	hooks.OnRenderComplete(ctx, opts.Formats, size, time.Since(start), err)
	return artifacts, err
}

// config resolves the chart config for a run: the runner's, with the file
// named by opts.Config loaded over it.
func (r *Runner) config(opts Options) (chart.Config, error) {
	if opts.Config == "" {
		return r.Config, nil
	}
	cfg, err := chart.LoadConfigOver(r.Config, opts.Config)
	if err != nil {
		return chart.Config{}, err
	}
	opts.Logger.Debug("loaded chart config", "path", opts.Config)
	return cfg, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
