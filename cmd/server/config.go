package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the server settings. Command-line flags override values
// loaded from the file.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`
	// LexiconDir points at data files layered over the built-in lexicon
	// (empty = built-in only).
	LexiconDir string `yaml:"lexicon_dir"`
	// Watch reloads the lexicon when files under LexiconDir change.
	Watch bool `yaml:"watch"`
	// BatchLimit bounds the number of statements accepted in one batch
	// request.
	BatchLimit int `yaml:"batch_limit"`
	// BatchConcurrency bounds how many statements of a batch parse in
	// parallel.
	BatchConcurrency int `yaml:"batch_concurrency"`
	// AllowedOrigins lists the CORS origins (empty = any).
	AllowedOrigins []string `yaml:"allowed_origins"`
	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:             ":8080",
		BatchLimit:       500,
		BatchConcurrency: 8,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.BatchLimit < 1 {
		return fmt.Errorf("batch_limit must be positive")
	}
	if c.BatchConcurrency < 1 {
		return fmt.Errorf("batch_concurrency must be positive")
	}
	return nil
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}
