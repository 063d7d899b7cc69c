package config

import (
	"fmt"
	"time"
)

// HTTPConfig configures the dashboard API.
type HTTPConfig struct {
	Addr             string   `json:"addr"`
	AllowedOrigins   []string `json:"allowed_origins"`
	StreamIntervalMS int      `json:"stream_interval_ms"`
}

// SetDefaults applies fallback values.
func (c *HTTPConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.StreamIntervalMS <= 0 {
		c.StreamIntervalMS = 1000
	}
}

// Validate checks mandatory fields.
func (c HTTPConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	return nil
}

// StreamInterval is the pause between two replayed records.
func (c HTTPConfig) StreamInterval() time.Duration {
	return time.Duration(c.StreamIntervalMS) * time.Millisecond
}
