package api

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds server settings. Zero values fall back to defaults via
// ApplyDefaults, so a partial YAML file is fine.
type Config struct {
	Port     int    `yaml:"port" validate:"min=0,max=65535"`
	LogLevel string `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
	// MaxBodyBytes caps request body size
	MaxBodyBytes int64 `yaml:"maxBodyBytes" validate:"min=0"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() Config {
	return Config{
		Port:         8080,
		LogLevel:     "info",
		MaxBodyBytes: 4 << 20,
	}
}

// ApplyDefaults fills unset fields from DefaultConfig
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.Port == 0 {
		c.Port = defaults.Port
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = defaults.MaxBodyBytes
	}
}

// LoadConfig reads and validates a YAML config file
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config: %w", err)
	}
	config.ApplyDefaults()

	if err := validator.New().Struct(&config); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
