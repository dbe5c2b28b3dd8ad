// Package config loads the platemeta configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/fai-plates/platemeta/internal/assemble"
	"github.com/fai-plates/platemeta/internal/tables"
)

// Output formats for annotated card sets.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Environment variables that override the file.
const (
	EnvLogbook     = "PLATEMETA_LOGBOOK"
	EnvConcurrency = "PLATEMETA_CONCURRENCY"
	EnvFormat      = "PLATEMETA_FORMAT"
)

// Config is the complete platemeta configuration.
type Config struct {
	Logbook       string         `yaml:"logbook"`
	Concurrency   int            `yaml:"concurrency"`
	Format        string         `yaml:"format"`
	FailFast      bool           `yaml:"fail_fast"`
	EndTimeFromLT bool           `yaml:"end_time_from_lt"`
	Site          assemble.Site  `yaml:"site"`
	Tables        *tables.Tables `yaml:"tables,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Concurrency: 4,
		Format:      FormatYAML,
		Site:        assemble.DefaultSite(),
	}
}

// Load reads and validates a configuration file. An empty path yields the
// defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Concurrency < 1 {
		return fmt.Errorf("concurrency: must be at least 1, got %d", cfg.Concurrency)
	}

	switch cfg.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("format: invalid format %q (must be yaml or json)", cfg.Format)
	}

	if cfg.Site.Observatory == "" {
		return errors.New("site.observatory: is required")
	}

	if cfg.Tables != nil {
		for id, tel := range cfg.Tables.Telescopes {
			if tel.Name == "" {
				return fmt.Errorf("tables.telescopes[%s]: name is required", id)
			}
		}
	}

	return nil
}

// AssemblerTables returns the built-in lookup tables extended by the
// configured entries.
func (c *Config) AssemblerTables() *tables.Tables {
	return tables.New(c.Tables)
}

func (c *Config) applyEnvironmentOverrides() error {
	if v := os.Getenv(EnvLogbook); v != "" {
		c.Logbook = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvConcurrency, err)
		}
		c.Concurrency = n
	}
	return nil
}
