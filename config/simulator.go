package config

import "github.com/kilianp07/hybridpark/core/simulator"

// SimulatorConfig selects the noise seed and optional rule overrides.
type SimulatorConfig struct {
	// Seed makes runs reproducible. Zero seeds from the clock.
	Seed   int64            `json:"seed"`
	Params simulator.Params `json:"params"`
}

// SetDefaults fills every rule constant left at zero.
func (c *SimulatorConfig) SetDefaults() {
	c.Params = c.Params.WithDefaults()
}

// Validate checks the rule constants.
func (c SimulatorConfig) Validate() error {
	return c.Params.Validate()
}
