// Package config provides centralized configuration management for the
// light curve analysis tool. It handles loading configuration from multiple
// sources, validation, and filesystem path helpers shared by the artifact
// writers.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Command-line flags (applied by the caller, highest priority)
//	2. Environment variables
//	3. Configuration file (YAML)
//	4. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern LIGHTCURVE_* for
// namespacing, mirroring the config structure:
//
//	LIGHTCURVE_INPUT_PATH=data/mmRR2_lc.csv
//	LIGHTCURVE_INPUT_FORMAT=csv
//	LIGHTCURVE_OUTPUT_PLOT_PATH=light_curve.png
//	LIGHTCURVE_CHART_DPI=150
//	LIGHTCURVE_LOGGING_LEVEL=info
//
// # Validation
//
// Configuration is validated at load time with struct tags (go-playground
// validator): required fields, value ranges and enumerated choices.
// Validation failures name the offending YAML key.
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load(configFile)
//	if err != nil {
//	    // report and exit
//	}
package config
