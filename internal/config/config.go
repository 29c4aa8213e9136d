// Package config provides configuration for the cmdlit gen tool.
// Settings come from defaults, an optional .cmdlit.yaml file, and
// environment variables, in that precedence order (flags override all
// three in the CLI).
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds all settings for the gen tool
type Config struct {
	Output   string `yaml:"output"`   // Generated file path
	Package  string `yaml:"package"`  // Package name for generated code; empty = infer from scanned files
	Validate bool   `yaml:"validate"` // Check expanded commands against the known command table
	Verbose  bool   `yaml:"verbose"`
}

// Default values
const (
	DefaultOutput     = "cmdlit_gen.go"
	DefaultConfigFile = ".cmdlit.yaml"
)

var (
	globalConfig *Config
	configOnce   sync.Once
)

// Get returns the global configuration, loading it if not already loaded
func Get() *Config {
	configOnce.Do(func() {
		globalConfig = load()
	})
	return globalConfig
}

// Reset clears the global configuration, forcing reload on next Get()
// This is primarily useful for testing
func Reset() {
	configOnce = sync.Once{}
	globalConfig = nil
}

// NewConfig creates a configuration with default values
func NewConfig() *Config {
	return &Config{
		Output: DefaultOutput,
	}
}

func load() *Config {
	cfg := NewConfig()

	// Optional config file in the working directory
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		if fileCfg, err := LoadFile(DefaultConfigFile); err == nil {
			cfg = fileCfg
		}
	}

	// Environment overrides the file
	cfg.Output = getEnv("CMDLIT_OUTPUT", cfg.Output)
	cfg.Package = getEnv("CMDLIT_PACKAGE", cfg.Package)
	cfg.Validate = getEnvBool("CMDLIT_VALIDATE", cfg.Validate)
	cfg.Verbose = getEnvBool("CMDLIT_VERBOSE", cfg.Verbose)

	return cfg
}

// LoadFile reads a yaml config file on top of the defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return cfg, nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
