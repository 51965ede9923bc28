package config

import (
	"fmt"
	"os"

	"hampter-link/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// DiscoveryConfig represents peer discovery settings
type DiscoveryConfig struct {
	Port            int    `yaml:"port"`             // UDP beacon port
	IntervalSeconds int    `yaml:"interval_seconds"` // Seconds between beacons
	Hostname        string `yaml:"hostname"`         // Override the advertised hostname
}

// Config represents the main configuration structure
type Config struct {
	Logging   logging.LogConfig `yaml:"logging"`
	Discovery DiscoveryConfig   `yaml:"discovery"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "simple",
		},
		Discovery: DiscoveryConfig{
			Port:            5566,
			IntervalSeconds: 2,
		},
	}
}

// Load loads configuration from a YAML file, filling unset fields with
// defaults. An empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if config.Discovery.Port == 0 {
		config.Discovery.Port = 5566
	}
	if config.Discovery.IntervalSeconds == 0 {
		config.Discovery.IntervalSeconds = 2
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Discovery.Port < 1 || c.Discovery.Port > 65535 {
		return fmt.Errorf("discovery port %d out of range", c.Discovery.Port)
	}
	if c.Discovery.IntervalSeconds < 1 {
		return fmt.Errorf("discovery interval must be at least 1 second")
	}
	return nil
}
