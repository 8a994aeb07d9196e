package calibration

// ReferenceSample is a beer with a known colour and the absorbance the meter
// measured for it.
type ReferenceSample struct {
	Name               string  `json:"name"`
	KnownUnits         float64 `json:"known_units"`
	MeasuredAbsorbance float64 `json:"measured_absorbance"`
}

// CalibrationData defines the expected JSON schema for calibration input.
// Zero values are replaced by the defaults in Calibrate.
type CalibrationData struct {
	Divisor float64           `json:"divisor"`
	Degree  int               `json:"degree"`
	Ridge   float64           `json:"ridge"`
	Samples []ReferenceSample `json:"samples"`
}

// CalibrationResult is the JSON schema written when -json-out is used.
type CalibrationResult struct {
	Coefficients []float64 `json:"coefficients"`
	Expression   string    `json:"expression"`
	Divisor      float64   `json:"divisor"`
	RSS          float64   `json:"rss"`
	ResidualVar  float64   `json:"residual_variance"`
	DetNormal    float64   `json:"det_normal"`
}

const (
	DefaultDivisor   = 25.0
	DefaultDegree    = 2
	DefaultInputName = "abs"
)

// DefaultSamples returns the reference beers used to calibrate the BCM-3000.
func DefaultSamples() []ReferenceSample {
	return []ReferenceSample{
		{Name: "Budweiser Budvar Original", KnownUnits: 10.0, MeasuredAbsorbance: 0.20942},
		{Name: "Kasteel Rouge", KnownUnits: 43.0, MeasuredAbsorbance: 1.29425},
		{Name: "Kasteel Donker", KnownUnits: 77.0, MeasuredAbsorbance: 1.61586},
	}
}

// DefaultData is the built-in calibration input.
func DefaultData() CalibrationData {
	return CalibrationData{
		Divisor: DefaultDivisor,
		Degree:  DefaultDegree,
		Samples: DefaultSamples(),
	}
}
