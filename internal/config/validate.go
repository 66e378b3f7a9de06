package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateData() error {
	if strings.TrimSpace(c.Data.Root) == "" {
		return errors.New("data.root must be set")
	}
	if c.Data.Season < 2000 {
		return fmt.Errorf("data.season must be a four-digit year, got %d", c.Data.Season)
	}
	return nil
}

func (c *Config) validateRender() error {
	switch c.Render.Format {
	case "html", "json":
	default:
		return fmt.Errorf("render.format must be html or json, got %q", c.Render.Format)
	}
	if c.Render.FrameDurationMS <= 0 {
		return errors.New("render.frame_duration_ms must be positive")
	}
	if c.Render.Scale <= 0 {
		return errors.New("render.scale must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
