package config

import (
	"fmt"

	"tonearm/internal/services"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return services.Wrap(services.ErrValidation, "config", "validate", "", err)
	}
	if err := c.validateOrganize(); err != nil {
		return services.Wrap(services.ErrValidation, "config", "validate", "", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q", "console", "json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if c.Organize.Copy && c.Paths.OutputDir == "" {
		return fmt.Errorf("organize.copy requires paths.output_dir to be set")
	}
	return nil
}
