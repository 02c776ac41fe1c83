// =============================================================================
// Compute Sales - Configuration Module
// =============================================================================
//
// This module loads tool configuration from an optional YAML file with
// environment variable overrides. Sources are applied in order:
//
//   1. Built-in defaults
//   2. config.yaml (or the file named with --config)
//   3. COMPUTESALES_* environment variables (optionally fed by a .env file)
//
// Later sources win. A missing default config file is fine; a file named
// explicitly with --config must exist.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is probed when --config is not given.
const DefaultConfigFile = "config.yaml"

// Environment variables recognized as overrides.
const (
	EnvOutputFile     = "COMPUTESALES_OUTPUT_FILE"
	EnvCurrencyPrefix = "COMPUTESALES_CURRENCY_PREFIX"
	EnvLogLevel       = "COMPUTESALES_LOG_LEVEL"
	EnvArchiveDir     = "COMPUTESALES_ARCHIVE_DIR"
	EnvArchiveMaxAge  = "COMPUTESALES_ARCHIVE_MAX_AGE"
)

// Config holds the tool configuration.
type Config struct {
	// OutputFile is the path the report artifact is written to.
	OutputFile string `yaml:"output_file"`

	// CurrencyPrefix is printed in front of every money amount.
	CurrencyPrefix string `yaml:"currency_prefix"`

	// LogLevel sets the diagnostic log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// ArchiveDir, when set, receives a timestamped copy of every report.
	// Empty disables archiving.
	ArchiveDir string `yaml:"archive_dir"`

	// ArchiveMaxAge is a Go duration string ("720h"). Archived reports
	// older than this are removed after each archival pass. Empty keeps
	// archives forever.
	ArchiveMaxAge string `yaml:"archive_max_age"`
}

// MaxArchiveAge parses ArchiveMaxAge. A zero duration means archives are
// kept forever.
func (c *Config) MaxArchiveAge() (time.Duration, error) {
	if c.ArchiveMaxAge == "" {
		return 0, nil
	}

	age, err := time.ParseDuration(c.ArchiveMaxAge)
	if err != nil {
		return 0, fmt.Errorf("invalid archive_max_age %q: %w", c.ArchiveMaxAge, err)
	}
	if age <= 0 {
		return 0, fmt.Errorf("archive_max_age must be positive, got %q", c.ArchiveMaxAge)
	}
	return age, nil
}

// Load reads the configuration from path and applies environment overrides
// and defaults.
//
// PARAMETERS:
//   - path: The config file to read.
//   - explicit: Whether the operator named the file on the command line.
//     An explicit file must exist; the default file may be absent.
//
// RETURNS the effective configuration, or an error when the file cannot be
// read or parsed.
func Load(path string, explicit bool) (*Config, error) {
	// A .env file in the working directory feeds the environment overrides.
	// A missing .env is not an error.
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file, run on defaults and environment alone.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	return cfg, nil
}

// applyEnvOverrides replaces values with COMPUTESALES_* environment
// variables where set.
func applyEnvOverrides(cfg *Config) {
	cfg.OutputFile = getEnv(EnvOutputFile, cfg.OutputFile)
	cfg.CurrencyPrefix = getEnv(EnvCurrencyPrefix, cfg.CurrencyPrefix)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.ArchiveDir = getEnv(EnvArchiveDir, cfg.ArchiveDir)
	cfg.ArchiveMaxAge = getEnv(EnvArchiveMaxAge, cfg.ArchiveMaxAge)
}

// applyDefaults fills every value no source provided.
func applyDefaults(cfg *Config) {
	if cfg.OutputFile == "" {
		cfg.OutputFile = "SalesResults.txt"
	}
	if cfg.CurrencyPrefix == "" {
		cfg.CurrencyPrefix = "$"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// getEnv returns the environment value for key, or fallback when the
// variable is unset or empty.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
