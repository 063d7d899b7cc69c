package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/hybridpark/core/insight"
	"github.com/kilianp07/hybridpark/core/metrics"
	"github.com/kilianp07/hybridpark/infra/mqtt"
)

type Config struct {
	Simulator SimulatorConfig `json:"simulator"`
	Insight   insight.Config  `json:"insight"`
	HTTP      HTTPConfig      `json:"http"`
	Metrics   metrics.Config  `json:"metrics"`
	MQTT      mqtt.Config     `json:"mqtt"`
	Log       LogConfig       `json:"log"`
}

// Load reads the configuration file at path and applies environment
// overrides. Variables use the K_ prefix and "__" as section separator, for
// example K_HTTP__ADDR or K_INSIGHT__API_KEY. An empty path loads defaults
// and environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// SetDefaults applies the defaults of every section.
func (c *Config) SetDefaults() {
	c.Simulator.SetDefaults()
	c.Insight.SetDefaults()
	c.HTTP.SetDefaults()
	c.MQTT.SetDefaults()
	c.Log.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Simulator.Validate(); err != nil {
		return fmt.Errorf("simulator: %w", err)
	}
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	for i, s := range c.Metrics.Sinks {
		if s.Type == "" {
			return fmt.Errorf("metrics: sink %d has no type", i)
		}
	}
	if err := c.MQTT.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}
