// Package domain contains the core domain models for the variable star
// light curve analysis pipeline.
package domain

import "math"

// ObservationColumns names the five positional columns of a photometry
// export, in file order. Input files are schema-less: whatever the header
// line says is discarded and these names are applied by position.
var ObservationColumns = []string{"BJD", "raw", "ost_decorr", "ost_tfa", "err"}

// ObservationColumnCount is the fixed width of a photometry export row.
const ObservationColumnCount = 5

// RawObservation is a single uncoerced row from a photometry export.
// Cells stay as text at this stage because real exports carry blanks,
// sentinel strings and malformed numbers; numeric coercion is the cleaning
// stage's job.
type RawObservation struct {
	// BJD is the observation timestamp cell (Barycentric Julian Day).
	BJD string `json:"bjd" csv:"BJD"`

	// Raw is the uncorrected relative flux cell. This is the brightness
	// series the analysis uses.
	Raw string `json:"raw" csv:"raw"`

	// OstDecorr and OstTfa are detrended flux variants present in the
	// export. They are carried through loading for completeness but are
	// not used by the analysis.
	OstDecorr string `json:"ost_decorr" csv:"ost_decorr"`
	OstTfa    string `json:"ost_tfa" csv:"ost_tfa"`

	// Err is the measurement uncertainty cell.
	Err string `json:"err" csv:"err"`
}

// RawTable is the loading stage's output: every data row of one input file
// in file order, plus provenance. The header line is never part of Rows.
type RawTable struct {
	// Source is the path the table was loaded from.
	Source string `json:"source"`

	// Rows holds the data rows in file order.
	Rows []RawObservation `json:"rows"`
}

// RowCount returns the number of data rows in the table.
func (t *RawTable) RowCount() int {
	return len(t.Rows)
}

// ColumnNames returns a copy of the positional column names applied to
// every row.
func (t *RawTable) ColumnNames() []string {
	names := make([]string, len(ObservationColumns))
	copy(names, ObservationColumns)
	return names
}

// Observation is a cleaned photometric measurement. Every instance produced
// by the cleaning stage satisfies IsValid.
type Observation struct {
	// Time is the observation timestamp in Barycentric Julian Days.
	Time float64 `json:"time" csv:"time"`

	// Brightness is the observed relative flux.
	Brightness float64 `json:"brightness" csv:"brightness"`

	// Error is the measurement uncertainty. Cleaned data guarantees
	// Error > 0; a non-positive uncertainty marks an unreliable or
	// corrupted measurement.
	Error float64 `json:"error" csv:"error" validate:"gt=0"`
}

// IsValid reports whether the observation satisfies the cleaned-data
// invariants: all three fields are defined numbers and the uncertainty is
// strictly positive.
func (o Observation) IsValid() bool {
	if math.IsNaN(o.Time) || math.IsNaN(o.Brightness) || math.IsNaN(o.Error) {
		return false
	}
	return o.Error > 0
}

// CleaningSummary reports what the cleaning stage did to one raw table.
// Both removal counts are reported, not just the missing-value count, so
// the console output always explains the gap between initial and remaining
// rows.
type CleaningSummary struct {
	InitialRows        int `json:"initial_rows"`
	RemovedMissing     int `json:"removed_missing"`
	RemovedNonPositive int `json:"removed_non_positive_error"`
	RemainingRows      int `json:"remaining_rows"`
}

// RemovedTotal returns the number of rows dropped across both filters.
func (s CleaningSummary) RemovedTotal() int {
	return s.RemovedMissing + s.RemovedNonPositive
}
