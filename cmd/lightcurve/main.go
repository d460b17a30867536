// Command lightcurve analyzes a variable star photometry export: it
// loads the observations, cleans them, prints descriptive statistics
// and renders the light curve as a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mazouznourelislam20-prog/variable-star-analysis/internal/config"
	apperrors "github.com/mazouznourelislam20-prog/variable-star-analysis/internal/errors"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/internal/infrastructure"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/internal/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns its exit code: 0 on success, 1 on a
// failed run, 2 on a command line error.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, config.AppVersion)
		return 0
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", apperrors.NewConfigError("failed to load configuration", err))
		return 1
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", apperrors.NewConfigError("command line overrides rejected", err))
		return 1
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "Error: Failed to initialize logger: %v\n", err)
		return 1
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())
	if _, err := pipeline.New(cfg, stdout, logger).Run(ctx); err != nil {
		infrastructure.WithError(logger, err).ErrorContext(ctx, "analysis run failed",
			slog.String("type", string(apperrors.TypeOf(err))))

		// Load, validation and empty-data conditions have already been
		// reported on the console by the runner.
		switch apperrors.TypeOf(err) {
		case apperrors.ErrTypeNotFound, apperrors.ErrTypeLoad,
			apperrors.ErrTypeValidation, apperrors.ErrTypeEmpty:
		default:
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	return 0
}

// cliOptions carries the parsed command line: the config file to load
// plus the per-flag overrides, where an empty string means unset.
type cliOptions struct {
	configFile  string
	showVersion bool

	inputPath   string
	inputFormat string
	plotPath    string
	cleanCSV    string
	reportPath  string
	statsJSON   string
}

func parseArgs(args []string, output io.Writer) (*cliOptions, error) {
	fs := flag.NewFlagSet("lightcurve", flag.ContinueOnError)
	fs.SetOutput(output)

	opts := &cliOptions{}
	fs.StringVar(&opts.configFile, "config", "", "path to a YAML configuration file")
	fs.StringVar(&opts.inputPath, "in", "", "observation file to analyze (CSV or XLSX)")
	fs.StringVar(&opts.plotPath, "out", "", "output path for the light curve PNG")
	fs.StringVar(&opts.inputFormat, "format", "", "input format: auto, csv or xlsx")
	fs.StringVar(&opts.cleanCSV, "clean-csv", "", "optional output path for the cleaned observations CSV")
	fs.StringVar(&opts.reportPath, "report", "", "optional output path for the statistics text report")
	fs.StringVar(&opts.statsJSON, "stats-json", "", "optional output path for the statistics JSON")
	fs.BoolVar(&opts.showVersion, "version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// apply layers the flag overrides over the loaded configuration.
func (o *cliOptions) apply(cfg *config.Config) {
	if o.inputPath != "" {
		cfg.Input.Path = o.inputPath
	}
	if o.inputFormat != "" {
		cfg.Input.Format = o.inputFormat
	}
	if o.plotPath != "" {
		cfg.Output.PlotPath = o.plotPath
	}
	if o.cleanCSV != "" {
		cfg.Output.CleanCSV = o.cleanCSV
	}
	if o.reportPath != "" {
		cfg.Output.ReportPath = o.reportPath
	}
	if o.statsJSON != "" {
		cfg.Output.StatsJSON = o.statsJSON
	}
}
