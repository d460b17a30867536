package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/mazouznourelislam20-prog/variable-star-analysis/pkg/contracts/domain"
)

// Cleaner coerces raw string observations into typed ones and filters
// out rows that cannot be used for analysis: rows with missing or
// unparseable values in the time, brightness or error columns, and
// rows whose quoted measurement error is zero or negative.
type Cleaner struct {
	logger *slog.Logger
}

// NewCleaner creates a Cleaner.
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{logger: logger}
}

// Clean converts the raw table into typed observations. Only the time,
// brightness and error columns are carried forward; the detrended
// columns in the raw table are not used by the analysis. Relative row
// order is preserved. An empty result is not an error here; the caller
// decides whether the pipeline can continue.
func (c *Cleaner) Clean(ctx context.Context, table *domain.RawTable) ([]domain.Observation, domain.CleaningSummary) {
	summary := domain.CleaningSummary{}
	if table == nil {
		return nil, summary
	}
	summary.InitialRows = table.RowCount()

	observations := make([]domain.Observation, 0, summary.InitialRows)
	for _, row := range table.Rows {
		bjd, okTime := parseOptionalFloat(row.BJD)
		brightness, okBrightness := parseOptionalFloat(row.Raw)
		errValue, okErr := parseOptionalFloat(row.Err)

		if !okTime || !okBrightness || !okErr {
			summary.RemovedMissing++
			continue
		}
		if errValue <= 0 {
			summary.RemovedNonPositive++
			continue
		}
		observations = append(observations, domain.Observation{
			Time:       bjd,
			Brightness: brightness,
			Error:      errValue,
		})
	}
	summary.RemainingRows = len(observations)

	c.logger.InfoContext(ctx, "observations cleaned",
		slog.Int("initial_rows", summary.InitialRows),
		slog.Int("removed_missing", summary.RemovedMissing),
		slog.Int("removed_non_positive_error", summary.RemovedNonPositive),
		slog.Int("remaining_rows", summary.RemainingRows))

	return observations, summary
}

// parseOptionalFloat parses a cell that may be absent. Empty cells and
// unparseable tokens are missing, and so is an explicit NaN literal.
// Infinities parse as ordinary values. Thousands separators are not
// accepted.
func parseOptionalFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
