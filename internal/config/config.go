package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the user-facing knobs of a crop run. Margin stays a textual
// length expression here; it is resolved to points during validation of the
// command line, before any page is touched.
type Config struct {
	DPI       int    `json:"dpi"`
	Threshold int    `json:"threshold"`
	Margin    string `json:"margin"`
	Quiet     bool   `json:"quiet"`
	DebugDir  string `json:"debug_dir,omitempty"`
}

// Default returns the configuration matching the CLI defaults.
func Default() *Config {
	return &Config{
		DPI:       200,
		Threshold: 245,
		Margin:    "4mm",
		Quiet:     false,
	}
}

// LoadFromFile loads configuration from a JSON file.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON file.
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DPI < 1 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}

	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("threshold must be between 0 and 255, got %d", c.Threshold)
	}

	if c.Margin == "" {
		return fmt.Errorf("margin cannot be empty")
	}

	return nil
}
