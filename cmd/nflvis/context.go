package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"nflvis/internal/config"
	"nflvis/internal/dataset"
	"nflvis/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
	closeLog   func() error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		var override string
		if c.logLevelFlag != nil {
			override = *c.logLevelFlag
		}
		c.logger, c.closeLog, c.loggerErr = logging.NewFromConfig(cfg, override)
	})
	return c.logger, c.loggerErr
}

// close releases the log file opened by ensureLogger, if any.
func (c *commandContext) close() error {
	if c.closeLog == nil {
		return nil
	}
	return c.closeLog()
}

// loader returns a dataset loader bound to the configured season directory.
func (c *commandContext) loader() (*dataset.Loader, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return dataset.NewLoader(cfg.SeasonDir(), logger), logger, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

var teamCaser = cases.Upper(language.Und)

// normalizeTeam maps user-entered club codes ("kc", " Buf ") to the
// dataset's upper-case form.
func normalizeTeam(team string) string {
	return teamCaser.String(strings.TrimSpace(team))
}

// parseWeeks accepts a single week ("3") or an inclusive range ("1-4").
func parseWeeks(raw string) (int, int, error) {
	raw = strings.TrimSpace(raw)
	startRaw, endRaw, isRange := strings.Cut(raw, "-")
	if !isRange {
		endRaw = startRaw
	}
	start, err := strconv.Atoi(strings.TrimSpace(startRaw))
	if err != nil {
		return 0, 0, fmt.Errorf("parse weeks %q: want N or A-B", raw)
	}
	end, err := strconv.Atoi(strings.TrimSpace(endRaw))
	if err != nil {
		return 0, 0, fmt.Errorf("parse weeks %q: want N or A-B", raw)
	}
	if start < 1 || end < start {
		return 0, 0, fmt.Errorf("parse weeks %q: range must be ascending and start at 1 or later", raw)
	}
	return start, end, nil
}
