// Package pipeline sequences the light curve analysis stages: validate
// and load the photometry export, clean it, summarize it, render the
// plot and write any configured artifacts. The runner owns the
// user-facing console stream and stops at the first stage failure;
// stages themselves report progress through structured logs only.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mazouznourelislam20-prog/variable-star-analysis/internal/chart"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/internal/config"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/internal/dataprocessing"
	apperrors "github.com/mazouznourelislam20-prog/variable-star-analysis/internal/errors"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/internal/exporter"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/internal/infrastructure"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/internal/validation"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/pkg/contracts/domain"
)

const (
	// bannerWidth is the width of the `=` rules framing the run header.
	bannerWidth = 60

	// runTitle is the header line shown at the start of every run.
	runTitle = "VARIABLE STAR LIGHT CURVE ANALYSIS"
)

// nextSteps are the follow-up analyses suggested after a successful run.
// They are advisory text only; none of them is performed by this tool.
var nextSteps = []string{
	"Look for periodicity using Fourier analysis or Lomb-Scargle",
	"Measure the period by visual inspection or frequency analysis",
	"Compare light curve shape to known variable star types",
	"Model the light curve with theoretical predictions",
}

// Runner executes one analysis run end to end. Each stage either
// completes or terminates the run; there are no partial statistics and
// no partial plot.
type Runner struct {
	cfg     *config.Config
	console io.Writer
	logger  *slog.Logger

	validator  *validation.FileValidator
	loader     *dataprocessing.Loader
	cleaner    *dataprocessing.Cleaner
	summarizer *dataprocessing.Summarizer
	renderer   *chart.Renderer
	exporter   *exporter.ObservationExporter
}

// Result collects what a successful run produced.
type Result struct {
	// Source is the resolved path the observations were loaded from.
	Source string

	// Observations is the cleaned table the statistics and plot are
	// based on.
	Observations []domain.Observation

	// Summary reports what the cleaning stage removed.
	Summary domain.CleaningSummary

	// Stats holds the descriptive statistics of the light curve.
	Stats domain.LightCurveStats

	// PlotPath is where the light curve PNG was written.
	PlotPath string
}

// New assembles a Runner from configuration. The console writer
// receives the user-facing output; a nil writer defaults to stdout and
// a nil logger to the process default.
func New(cfg *config.Config, console io.Writer, logger *slog.Logger) *Runner {
	if console == nil {
		console = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		cfg:        cfg,
		console:    console,
		logger:     logger,
		validator:  validation.NewFileValidator(infrastructure.WithComponent(logger, "validator")),
		loader:     dataprocessing.NewLoader(infrastructure.WithComponent(logger, "loader"), delimiterRune(cfg.Input.Delimiter)),
		cleaner:    dataprocessing.NewCleaner(infrastructure.WithComponent(logger, "cleaner")),
		summarizer: dataprocessing.NewSummarizer(infrastructure.WithComponent(logger, "summarizer"), dataprocessing.DefaultSummarizerConfig()),
		renderer: chart.NewRenderer(infrastructure.WithComponent(logger, "renderer"), chart.RendererConfig{
			WidthInches:  cfg.Chart.WidthInches,
			HeightInches: cfg.Chart.HeightInches,
			DPI:          cfg.Chart.DPI,
			Title:        cfg.Chart.Title,
		}),
		exporter: exporter.NewObservationExporter(infrastructure.WithComponent(logger, "exporter")),
	}
}

// Run executes the pipeline: load, clean, summarize, plot, export. It
// returns the first stage failure; in that case the terminal condition
// has already been reported on the console and nothing after the failed
// stage has run.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	ctx = infrastructure.EnsureRunID(ctx)
	start := time.Now()

	r.logger.InfoContext(ctx, "starting light curve analysis",
		slog.String("input", r.cfg.Input.Path),
		slog.String("plot", r.cfg.Output.PlotPath))

	r.printBanner()

	table, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	observations, summary := r.cleaner.Clean(ctx, table)
	if summary.RemovedMissing > 0 {
		fmt.Fprintf(r.console, "Removed %d rows with missing values\n", summary.RemovedMissing)
	}
	if summary.RemovedNonPositive > 0 {
		fmt.Fprintf(r.console, "Removed %d rows with non-positive errors\n", summary.RemovedNonPositive)
	}
	fmt.Fprintf(r.console, "Data cleaned: %d valid observations remaining\n", summary.RemainingRows)

	if len(observations) == 0 {
		fmt.Fprintln(r.console, "No valid data after cleaning. Exiting.")
		r.logger.WarnContext(ctx, "no valid observations after cleaning",
			slog.Int("initial_rows", summary.InitialRows),
			slog.Int("removed_missing", summary.RemovedMissing),
			slog.Int("removed_non_positive_error", summary.RemovedNonPositive))
		return nil, apperrors.NewEmptyResultError("no valid observations after cleaning").
			WithContext("initial_rows", summary.InitialRows)
	}

	stats, err := r.summarizer.Summarize(ctx, observations)
	if err != nil {
		return nil, err
	}
	if err := r.summarizer.WriteReport(r.console, stats); err != nil {
		return nil, err
	}

	plotPath := r.cfg.Output.PlotPath
	if err := r.renderer.Render(ctx, observations, plotPath); err != nil {
		return nil, err
	}
	fmt.Fprintf(r.console, "Light curve saved to '%s'\n", plotPath)

	if err := r.exportArtifacts(ctx, table.Source, observations, stats); err != nil {
		return nil, err
	}

	r.printCompletion()

	r.logger.InfoContext(ctx, "light curve analysis finished",
		slog.String("source", table.Source),
		slog.Int("observations", len(observations)),
		slog.String("plot", plotPath),
		slog.Duration("elapsed", time.Since(start)))

	return &Result{
		Source:       table.Source,
		Observations: observations,
		Summary:      summary,
		Stats:        stats,
		PlotPath:     plotPath,
	}, nil
}

// load resolves the input path, validates it and reads it into a raw
// table, reporting the outcome on the console.
func (r *Runner) load(ctx context.Context) (*domain.RawTable, error) {
	path := config.ResolveDataFile(r.cfg.Input.Path)
	format := r.cfg.Input.Format
	if format == "" || format == dataprocessing.FormatAuto {
		format = dataprocessing.DetectFormat(path)
	}

	if err := r.validator.ValidateObservationFile(path, format); err != nil {
		r.printLoadFailure(path, err)
		return nil, err
	}

	table, err := r.loader.Load(ctx, path, format)
	if err != nil {
		r.printLoadFailure(path, err)
		return nil, err
	}

	fmt.Fprintf(r.console, "Loaded data from %s\n", path)
	fmt.Fprintf(r.console, "  Total observations: %d\n", table.RowCount())
	fmt.Fprintf(r.console, "  Columns: %s\n", strings.Join(table.ColumnNames(), ", "))
	return table, nil
}

// exportArtifacts writes the optional run artifacts named in the
// configuration. An empty path disables the artifact.
func (r *Runner) exportArtifacts(ctx context.Context, source string, observations []domain.Observation, stats domain.LightCurveStats) error {
	if path := r.cfg.Output.CleanCSV; path != "" {
		if err := r.exporter.ExportObservations(ctx, path, observations); err != nil {
			return err
		}
		fmt.Fprintf(r.console, "Cleaned observations saved to '%s'\n", path)
	}

	if path := r.cfg.Output.ReportPath; path != "" {
		if err := r.summarizer.SaveReport(ctx, path, stats); err != nil {
			return err
		}
		fmt.Fprintf(r.console, "Statistics report saved to '%s'\n", path)
	}

	if path := r.cfg.Output.StatsJSON; path != "" {
		if err := r.summarizer.WriteJSON(ctx, path, source, stats); err != nil {
			return err
		}
		fmt.Fprintf(r.console, "Statistics JSON saved to '%s'\n", path)
	}

	return nil
}

func (r *Runner) printBanner() {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(r.console, "\n%s\n%s\n%s\n\n", banner, runTitle, banner)
}

// printLoadFailure reports a failed load in user terms. Missing files
// get the short form; everything else shows the underlying error.
func (r *Runner) printLoadFailure(path string, err error) {
	if apperrors.IsType(err, apperrors.ErrTypeNotFound) {
		fmt.Fprintf(r.console, "Error: File '%s' not found.\n", path)
	} else {
		fmt.Fprintf(r.console, "Error reading file: %v\n", err)
	}
	fmt.Fprintln(r.console, "Failed to load data. Exiting.")
}

func (r *Runner) printCompletion() {
	fmt.Fprint(r.console, "\nAnalysis complete!\n")
	fmt.Fprint(r.console, "\nNext steps for deeper analysis:\n")
	for i, step := range nextSteps {
		fmt.Fprintf(r.console, "  %d. %s\n", i+1, step)
	}
}

// delimiterRune returns the first rune of the configured delimiter, or
// zero when it is empty so the loader falls back to its default.
func delimiterRune(s string) rune {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	return runes[0]
}
