package config

const (
	defaultConfigPath      = "~/.config/nflvis/config.toml"
	defaultDataRoot        = "~/nfl"
	defaultSeason          = 2025
	defaultRenderDir       = "~/.local/share/nflvis/renders"
	defaultRenderFormat    = "html"
	defaultFrameDurationMS = 100
	defaultRenderScale     = 10
	defaultPlotlyURL       = "https://cdn.plot.ly/plotly-2.35.2.min.js"
	defaultCatalogPath     = "~/.local/share/nflvis/catalog.db"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Data: Data{
			Root:   defaultDataRoot,
			Season: defaultSeason,
		},
		Render: Render{
			OutputDir:       defaultRenderDir,
			Format:          defaultRenderFormat,
			FrameDurationMS: defaultFrameDurationMS,
			Scale:           defaultRenderScale,
			PlotlyURL:       defaultPlotlyURL,
		},
		Catalog: Catalog{
			Path: defaultCatalogPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
