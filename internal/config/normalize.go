package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeData(); err != nil {
		return err
	}
	if err := c.normalizeRender(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeData() error {
	var err error
	if strings.TrimSpace(c.Data.Root) == "" {
		c.Data.Root = defaultDataRoot
	}
	if c.Data.Root, err = expandPath(c.Data.Root); err != nil {
		return fmt.Errorf("data.root: %w", err)
	}
	return nil
}

func (c *Config) normalizeRender() error {
	var err error
	if strings.TrimSpace(c.Render.OutputDir) == "" {
		c.Render.OutputDir = defaultRenderDir
	}
	if c.Render.OutputDir, err = expandPath(c.Render.OutputDir); err != nil {
		return fmt.Errorf("render.output_dir: %w", err)
	}
	c.Render.Format = strings.ToLower(strings.TrimSpace(c.Render.Format))
	if c.Render.Format == "" {
		c.Render.Format = defaultRenderFormat
	}
	c.Render.PlotlyURL = strings.TrimSpace(c.Render.PlotlyURL)
	if c.Render.PlotlyURL == "" {
		c.Render.PlotlyURL = defaultPlotlyURL
	}
	return nil
}

func (c *Config) normalizeCatalog() error {
	var err error
	if strings.TrimSpace(c.Catalog.Path) == "" {
		c.Catalog.Path = defaultCatalogPath
	}
	if c.Catalog.Path, err = expandPath(c.Catalog.Path); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		var err error
		if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
	}
	return nil
}
