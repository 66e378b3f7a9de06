package testsupport

import (
	"path/filepath"
	"testing"

	"nflvis/internal/config"
)

// FixtureSeason is the season written by WriteSeason.
const FixtureSeason = 2022

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Data.Root = base
	cfgVal.Data.Season = FixtureSeason
	cfgVal.Render.OutputDir = filepath.Join(base, "renders")
	cfgVal.Catalog.Path = filepath.Join(base, "state", "catalog.db")
	cfgVal.Logging.Dir = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSeasonFixture writes the fixture CSVs into the config's season directory.
func WithSeasonFixture() ConfigOption {
	return func(b *configBuilder) {
		WriteSeason(b.t, b.cfg.SeasonDir())
	}
}

// WithRenderFormat overrides the default output format.
func WithRenderFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Render.Format = format
	}
}

// WithLogDir enables the log file sink under the test's temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = filepath.Join(b.baseDir, "logs")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return cfg.Data.Root
}
