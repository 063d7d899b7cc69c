package insight

import "os"

// MissingKey is used when no API key is configured. Calls made with it fail and
// are answered with the fallback payload.
const MissingKey = "MISSING_KEY"

const (
	DefaultModel                = "gemini-3-flash-preview"
	DefaultEnergyTemperature    = 0.2
	DefaultDiagnosisTemperature = 0.1
)

// DefaultContextHour is the record analysed when no hour is requested. Mid-day
// carries solar, charging and export together.
const DefaultContextHour = 12

// Config defines the insight service settings.
type Config struct {
	APIKey               string  `json:"api_key"`
	Model                string  `json:"model"`
	EnergyTemperature    float32 `json:"energy_temperature"`
	DiagnosisTemperature float32 `json:"diagnosis_temperature"`
}

// SetDefaults applies fallback values. The API key falls back to the API_KEY
// environment variable and then to MissingKey.
func (c *Config) SetDefaults() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("API_KEY")
	}
	if c.APIKey == "" {
		c.APIKey = MissingKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.EnergyTemperature == 0 {
		c.EnergyTemperature = DefaultEnergyTemperature
	}
	if c.DiagnosisTemperature == 0 {
		c.DiagnosisTemperature = DefaultDiagnosisTemperature
	}
}

// HasKey reports whether a real API key is configured.
func (c Config) HasKey() bool { return c.APIKey != "" && c.APIKey != MissingKey }
