// Package exporter provides CSV export functionality for the light curve
// analysis pipeline.
//
// This package contains two components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// appending, and a UTF-8 BOM for Excel compatibility.
//
// ObservationExporter: Persists the cleaned observation table with full
// float precision so exports reload losslessly.
//
// Example usage:
//
//	exp := exporter.NewObservationExporter(logger)
//	err := exp.ExportObservations(ctx, "out/clean.csv", observations)
package exporter
