package config

// Application constants for the light curve analysis tool
const (
	// Application Info
	AppName    = "Variable Star Light Curve Analysis"
	AppVersion = "1.0.0"

	// Default file locations
	DefaultInputFile = "data/mmRR2_lc.csv"
	DefaultPlotFile  = "light_curve.png"
	DefaultLogFile   = "logs/lightcurve.log"
	DefaultDataDir   = "data"
	DefaultLogsDir   = "logs"

	// Input schema
	DefaultDelimiter = ","

	// Chart rendering defaults
	DefaultChartWidthInches  = 14.0
	DefaultChartHeightInches = 6.0
	DefaultChartDPI          = 150
	DefaultChartTitle        = "Variable Star Light Curve"
)
