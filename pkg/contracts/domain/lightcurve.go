package domain

// DaysPerYear converts a time span in days to Julian years.
const DaysPerYear = 365.25

// LightCurveStats holds the descriptive statistics of a cleaned light
// curve. Values are immutable once computed; formatting (decimal places,
// banners) belongs to the report writers, not to this type.
type LightCurveStats struct {
	// Observations is the number of cleaned measurements the statistics
	// were computed from. Always >= 1.
	Observations int `json:"observations"`

	// TimeStart and TimeEnd are the first and last timestamps in BJD.
	// The time span derives from these, not from row order: inputs are
	// not required to be sorted.
	TimeStart float64 `json:"time_start"`
	TimeEnd   float64 `json:"time_end"`

	// SpanDays is TimeEnd - TimeStart; SpanYears is SpanDays / 365.25.
	SpanDays  float64 `json:"span_days"`
	SpanYears float64 `json:"span_years"`

	// Brightness moments over the relative flux series. Std is the
	// sample standard deviation (n-1 denominator) and is NaN when only
	// one observation exists.
	BrightnessMean float64 `json:"brightness_mean"`
	BrightnessStd  float64 `json:"brightness_std"`
	BrightnessMin  float64 `json:"brightness_min"`
	BrightnessMax  float64 `json:"brightness_max"`

	// Amplitude is BrightnessMax - BrightnessMin.
	Amplitude float64 `json:"amplitude"`

	// MeanError is the arithmetic mean of the measurement uncertainties.
	MeanError float64 `json:"mean_error"`
}
