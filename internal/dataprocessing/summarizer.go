package dataprocessing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mazouznourelislam20-prog/variable-star-analysis/internal/config"
	apperrors "github.com/mazouznourelislam20-prog/variable-star-analysis/internal/errors"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/pkg/contracts/domain"
)

// bannerWidth is the width of the `=` rules framing the statistics report.
const bannerWidth = 60

// Summarizer is the single source of truth for light curve statistics.
// All statistics shown to the user, written to the text report or
// exported as JSON come from one Summarize call, so every output of a
// run agrees on the numbers.
type Summarizer struct {
	logger      *slog.Logger
	daysPerYear float64
}

// SummarizerConfig holds configuration options for the Summarizer.
type SummarizerConfig struct {
	DaysPerYear float64 // Days per year used to convert the observation span
}

// DefaultSummarizerConfig returns a default configuration for typical use cases.
func DefaultSummarizerConfig() SummarizerConfig {
	return SummarizerConfig{
		DaysPerYear: domain.DaysPerYear,
	}
}

// NewSummarizer creates a new light curve summarizer with the given configuration.
func NewSummarizer(logger *slog.Logger, config SummarizerConfig) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}

	if config.DaysPerYear <= 0 {
		config.DaysPerYear = domain.DaysPerYear
	}

	return &Summarizer{
		logger:      logger,
		daysPerYear: config.DaysPerYear,
	}
}

// Summarize computes descriptive statistics over cleaned observations.
// The standard deviation is the sample standard deviation (n-1), which
// is NaN for a single observation. The input must be non-empty; the
// pipeline halts on an empty table before statistics are requested.
func (s *Summarizer) Summarize(ctx context.Context, observations []domain.Observation) (domain.LightCurveStats, error) {
	if len(observations) == 0 {
		return domain.LightCurveStats{}, apperrors.NewEmptyResultError("no observations to summarize")
	}

	times := make([]float64, len(observations))
	brightness := make([]float64, len(observations))
	errs := make([]float64, len(observations))
	for i, obs := range observations {
		times[i] = obs.Time
		brightness[i] = obs.Brightness
		errs[i] = obs.Error
	}

	timeStart := floats.Min(times)
	timeEnd := floats.Max(times)
	spanDays := timeEnd - timeStart
	brightnessMin := floats.Min(brightness)
	brightnessMax := floats.Max(brightness)

	stats := domain.LightCurveStats{
		Observations:   len(observations),
		TimeStart:      timeStart,
		TimeEnd:        timeEnd,
		SpanDays:       spanDays,
		SpanYears:      spanDays / s.daysPerYear,
		BrightnessMean: stat.Mean(brightness, nil),
		BrightnessStd:  stat.StdDev(brightness, nil),
		BrightnessMin:  brightnessMin,
		BrightnessMax:  brightnessMax,
		Amplitude:      brightnessMax - brightnessMin,
		MeanError:      stat.Mean(errs, nil),
	}

	s.logger.InfoContext(ctx, "light curve statistics computed",
		slog.Int("observations", stats.Observations),
		slog.Float64("span_days", stats.SpanDays),
		slog.Float64("brightness_mean", stats.BrightnessMean),
		slog.Float64("amplitude", stats.Amplitude),
		slog.Float64("mean_error", stats.MeanError))

	return stats, nil
}

// WriteReport renders the statistics block in the layout shown on the
// console: a banner-framed section with the observation span, the
// brightness statistics and the mean measurement error.
func (s *Summarizer) WriteReport(w io.Writer, stats domain.LightCurveStats) error {
	banner := strings.Repeat("=", bannerWidth)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n", banner)
	fmt.Fprintln(&sb, "LIGHT CURVE STATISTICS")
	fmt.Fprintln(&sb, banner)
	fmt.Fprintf(&sb, "Observation span: %.2f days (%.2f years)\n", stats.SpanDays, stats.SpanYears)
	fmt.Fprintln(&sb)
	fmt.Fprintln(&sb, "Brightness statistics:")
	fmt.Fprintf(&sb, "  Mean:      %.4f\n", stats.BrightnessMean)
	fmt.Fprintf(&sb, "  Std Dev:   %.4f\n", stats.BrightnessStd)
	fmt.Fprintf(&sb, "  Min:       %.4f\n", stats.BrightnessMin)
	fmt.Fprintf(&sb, "  Max:       %.4f\n", stats.BrightnessMax)
	fmt.Fprintf(&sb, "  Amplitude: %.4f\n", stats.Amplitude)
	fmt.Fprintln(&sb)
	fmt.Fprintf(&sb, "Mean measurement error: %.6f\n", stats.MeanError)
	fmt.Fprintf(&sb, "%s\n", banner)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return apperrors.NewStorageError("failed to write statistics report", err)
	}
	return nil
}

// SaveReport persists the statistics block to a text file.
func (s *Summarizer) SaveReport(ctx context.Context, path string, stats domain.LightCurveStats) error {
	s.logger.InfoContext(ctx, "writing statistics report",
		slog.String("path", path))

	if err := config.EnsureParentDir(path); err != nil {
		return apperrors.NewStorageError("failed to create directory for statistics report", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create statistics report file", err)
	}
	defer file.Close()

	if err := s.WriteReport(file, stats); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "successfully wrote statistics report",
		slog.String("path", path))

	return nil
}

// statsDocument mirrors LightCurveStats for JSON export. The sample
// standard deviation is undefined for a single observation; JSON has
// no NaN, so it is exported as null in that case.
type statsDocument struct {
	domain.LightCurveStats
	BrightnessStd *float64 `json:"brightness_std"`
}

func newStatsDocument(stats domain.LightCurveStats) statsDocument {
	doc := statsDocument{LightCurveStats: stats}
	if !math.IsNaN(stats.BrightnessStd) {
		doc.BrightnessStd = &stats.BrightnessStd
	}
	return doc
}

// WriteJSON writes the statistics to a JSON file with metadata.
// The output is structured for downstream tooling rather than people.
func (s *Summarizer) WriteJSON(ctx context.Context, path, source string, stats domain.LightCurveStats) error {
	s.logger.InfoContext(ctx, "writing statistics to JSON",
		slog.String("path", path))

	if err := config.EnsureParentDir(path); err != nil {
		return apperrors.NewStorageError("failed to create directory for JSON output", err)
	}

	jsonData := map[string]interface{}{
		"stats":        newStatsDocument(stats),
		"source":       source,
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "light_curve_stats_v1",
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create JSON file for statistics", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(jsonData); err != nil {
		return apperrors.NewStorageError("failed to encode statistics to JSON", err)
	}

	s.logger.InfoContext(ctx, "successfully wrote statistics to JSON",
		slog.String("path", path))

	return nil
}
