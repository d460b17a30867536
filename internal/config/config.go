package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Chart   ChartConfig   `yaml:"chart" envconfig:"CHART"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes the observation file to analyze
type InputConfig struct {
	// Path is the observation export to load. Relative paths resolve
	// against the working directory, with an executable-relative
	// fallback for packaged installs (see ResolveDataFile).
	Path string `yaml:"path" envconfig:"PATH" validate:"required"`

	// Format selects the reader: csv, xlsx, or auto (by extension).
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=auto csv xlsx"`

	// Delimiter is the CSV field separator.
	Delimiter string `yaml:"delimiter" envconfig:"DELIMITER" validate:"required,len=1"`
}

// OutputConfig names the artifacts a run produces
type OutputConfig struct {
	// PlotPath is where the light curve PNG is written.
	PlotPath string `yaml:"plot_path" envconfig:"PLOT_PATH" validate:"required"`

	// CleanCSV, ReportPath and StatsJSON are optional artifacts; an
	// empty path disables the artifact.
	CleanCSV   string `yaml:"clean_csv" envconfig:"CLEAN_CSV"`
	ReportPath string `yaml:"report_path" envconfig:"REPORT_PATH"`
	StatsJSON  string `yaml:"stats_json" envconfig:"STATS_JSON"`
}

// ChartConfig controls how the light curve plot is rendered
type ChartConfig struct {
	WidthInches  float64 `yaml:"width_inches" envconfig:"WIDTH_INCHES" validate:"gt=0"`
	HeightInches float64 `yaml:"height_inches" envconfig:"HEIGHT_INCHES" validate:"gt=0"`
	DPI          int     `yaml:"dpi" envconfig:"DPI" validate:"gte=50,lte=600"`
	Title        string  `yaml:"title" envconfig:"TITLE" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required"`
}

// Load loads configuration from defaults, an optional YAML file and
// LIGHTCURVE_* environment variables. Later sources take precedence:
// defaults < file < environment. Command-line flags are applied on top by
// the caller. An empty configFile probes the usual locations; a named one
// must exist.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("LIGHTCURVE", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile merges a YAML file into cfg. Only keys present in the file
// are overwritten, so file values layer cleanly over defaults.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// findConfigFile returns the path to the config file
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path:      DefaultInputFile,
			Format:    "auto",
			Delimiter: DefaultDelimiter,
		},
		Output: OutputConfig{
			PlotPath: DefaultPlotFile,
		},
		Chart: ChartConfig{
			WidthInches:  DefaultChartWidthInches,
			HeightInches: DefaultChartHeightInches,
			DPI:          DefaultChartDPI,
			Title:        DefaultChartTitle,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "file",
			FilePath: DefaultLogFile,
		},
	}
}
