// Package dataprocessing provides the data stages of the light curve
// analysis pipeline. It consolidates loading, cleaning, and statistical
// summarization into a cohesive package that handles the data lifecycle
// from file ingestion to the numbers shown in the run report.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Loader: Reads delimited text files or Excel workbooks into raw string tables
// 2. Cleaner: Coerces raw cells to numbers and filters unusable rows
// 3. Summarizer: Computes descriptive statistics and renders/persists reports
//
// # Usage
//
// Loading a file:
//
//	loader := dataprocessing.NewLoader(logger, ',')
//	table, err := loader.Load(ctx, "data/mmRR2_lc.csv", dataprocessing.FormatAuto)
//	if err != nil {
//	    return err
//	}
//
// Cleaning:
//
//	cleaner := dataprocessing.NewCleaner(logger)
//	observations, summary := cleaner.Clean(ctx, table)
//
// Statistics:
//
//	summarizer := dataprocessing.NewSummarizer(logger, dataprocessing.DefaultSummarizerConfig())
//	stats, err := summarizer.Summarize(ctx, observations)
//
// # Data Flow
//
// The typical data flow through this package:
//
//	Observation File → Loader → RawTable → Cleaner → Observations → Summarizer → Statistics
//
// # Error Handling
//
// Failures are reported as typed errors from internal/errors so callers
// can distinguish a missing file from a malformed one:
//
//	- Load failures carry the offending path and, where known, the line
//	- An empty observation set surfaces as an empty-result error
//	- Report persistence failures are storage errors
//
// Cell-level problems are not errors: unparseable values become missing
// values and are filtered (and counted) by the Cleaner.
package dataprocessing
