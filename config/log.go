package config

import "fmt"

// LogConfig sets the minimum log level.
type LogConfig struct {
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LogConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level name.
func (c LogConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown log level %s", c.Level)
	}
}
