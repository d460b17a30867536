package exporter

import (
	"strconv"
)

// formatFloat formats a measurement value for CSV output. The shortest
// decimal that round-trips through strconv.ParseFloat is used, so exported
// values reload without precision loss. Fixed-point notation keeps BJD
// timestamps readable (2459000.5, not 2.4590005e+06).
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
