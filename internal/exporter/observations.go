package exporter

import (
	"context"
	"log/slog"

	apperrors "github.com/mazouznourelislam20-prog/variable-star-analysis/internal/errors"
	"github.com/mazouznourelislam20-prog/variable-star-analysis/pkg/contracts/domain"
)

// observationHeaders are the columns of a cleaned-data export.
var observationHeaders = []string{"time", "brightness", "error"}

// ObservationExporter persists cleaned observations as CSV so downstream
// tools (period finders, plotting notebooks) can reload exactly the data
// the analysis ran on.
type ObservationExporter struct {
	csvWriter *CSVWriter
	logger    *slog.Logger
}

// NewObservationExporter creates a new observation exporter
func NewObservationExporter(logger *slog.Logger) *ObservationExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ObservationExporter{
		csvWriter: NewCSVWriter(logger),
		logger:    logger,
	}
}

// ExportObservations writes the cleaned observation table to path. Values
// are rendered with full float64 precision so reloading the export yields
// the values the pipeline computed with, bit for bit.
func (e *ObservationExporter) ExportObservations(ctx context.Context, path string, observations []domain.Observation) error {
	if len(observations) == 0 {
		return apperrors.NewEmptyResultError("no observations to export")
	}

	e.logger.InfoContext(ctx, "exporting cleaned observations",
		slog.String("path", path),
		slog.Int("observations", len(observations)))

	records := make([][]string, len(observations))
	for i, obs := range observations {
		records[i] = []string{
			formatFloat(obs.Time),
			formatFloat(obs.Brightness),
			formatFloat(obs.Error),
		}
	}

	if err := e.csvWriter.WriteCSV(path, WriteOptions{
		Headers: observationHeaders,
		Records: records,
	}); err != nil {
		return apperrors.NewStorageError("failed to export cleaned observations", err).
			WithContext("path", path)
	}

	e.logger.InfoContext(ctx, "cleaned observations exported",
		slog.String("path", path))
	return nil
}
