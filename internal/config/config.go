// --- syntour/internal/config/config.go ---

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. Its absence is fine.
const DefaultPath = "syntour.yaml"

// Config holds all syntour configuration.
type Config struct {
	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Tour output
	Tour TourConfig `yaml:"tour"`

	// Inspector settings
	Inspect InspectConfig `yaml:"inspect"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// TourConfig configures the tour transcript.
type TourConfig struct {
	Format string `yaml:"format"` // debug ([2, 4, 6]) or go ([2 4 6])
}

// InspectConfig configures the coverage inspector.
type InspectConfig struct {
	Workers      int  `yaml:"workers"`       // 0 = GOMAXPROCS
	IncludeTests bool `yaml:"include_tests"` // inspect _test.go files too
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Tour: TourConfig{
			Format: "debug",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path means DefaultPath, which may be missing.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no config file; defaults it is
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SYNTOUR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SYNTOUR_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("SYNTOUR_TOUR_FORMAT"); v != "" {
		c.Tour.Format = v
	}
	if v := os.Getenv("SYNTOUR_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SYNTOUR_WORKERS %q: %w", v, err)
		}
		c.Inspect.Workers = n
	}
	return nil
}

// Validate rejects values the rest of the program cannot use.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	switch c.Tour.Format {
	case "debug", "go":
	default:
		return fmt.Errorf("invalid tour.format %q", c.Tour.Format)
	}
	if c.Inspect.Workers < 0 {
		return fmt.Errorf("invalid inspect.workers %d", c.Inspect.Workers)
	}
	return nil
}
