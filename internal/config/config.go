// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"mechkit/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Units contains unit preferences
	Units UnitsConfig `json:"units"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Materials contains material data configuration
	Materials MaterialsConfig `json:"materials"`

	// Costing contains BOM costing configuration
	Costing CostingConfig `json:"costing"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// UnitsConfig contains unit-system preferences
type UnitsConfig struct {
	// System is the preferred display system (si, imperial)
	System string `json:"system"`

	// PressureUnit is the preferred pressure/stress display unit
	PressureUnit string `json:"pressure_unit"`

	// LengthUnit is the preferred length display unit
	LengthUnit string `json:"length_unit"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDerived shows derived attributes in entity reports
	ShowDerived bool `json:"show_derived"`

	// Precision is the number of significant digits in reports
	Precision int `json:"precision"`
}

// MaterialsConfig contains material data settings
type MaterialsConfig struct {
	// CustomFile is an optional assembly file of custom material definitions
	CustomFile string `json:"custom_file,omitempty"`
}

// CostingConfig contains BOM costing settings
type CostingConfig struct {
	// Currency is the currency code for BOM totals
	Currency string `json:"currency"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Units: UnitsConfig{
			System:       "si",
			PressureUnit: "MPa",
			LengthUnit:   "mm",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDerived:   true,
			Precision:     4,
		},
		Costing: CostingConfig{
			Currency: "USD",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".mechkit.json")
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
