package config

import (
	xdg "github.com/bnema/docklayout/internal/config"
	"github.com/invopop/jsonschema"
)

// Config represents the complete configuration for docklayout.
type Config struct {
	// Layout controls where the layout lives and how new panels are sized.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout" json:"layout"`
	// Validation holds the advisory thresholds used by `docklayout validate`.
	Validation ValidationConfig `mapstructure:"validation" toml:"validation" json:"validation"`
	// Performance controls slow-operation logging.
	Performance PerformanceConfig `mapstructure:"performance" toml:"performance" json:"performance"`
	Database    DatabaseConfig    `mapstructure:"database" toml:"database" json:"database"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
	// Appearance styles the CLI output and the interactive shell.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// LayoutConfig holds layout file settings.
type LayoutConfig struct {
	// Path is the layout file. Empty means $XDG_DATA_HOME/docklayout/layout.json.
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=Layout file path (empty uses the XDG data directory)"`
	// MinPanelSize is applied to new panels and persisted with the layout.
	MinPanelSize float64 `mapstructure:"min_panel_size" toml:"min_panel_size" json:"min_panel_size" jsonschema:"minimum=50,maximum=1000,default=150"`
	// Autosave writes the layout back after every mutating command.
	Autosave bool `mapstructure:"autosave" toml:"autosave" json:"autosave" jsonschema:"default=true"`
}

// ValidationConfig holds the advisory layout thresholds.
type ValidationConfig struct {
	MaxDepth int `mapstructure:"max_depth" toml:"max_depth" json:"max_depth" jsonschema:"minimum=1,default=10"`
	MaxNodes int `mapstructure:"max_nodes" toml:"max_nodes" json:"max_nodes" jsonschema:"minimum=1,default=50"`
}

// PerformanceConfig sets when a layout operation is logged as slow.
type PerformanceConfig struct {
	SlowWarnMs  int `mapstructure:"slow_warn_ms" toml:"slow_warn_ms" json:"slow_warn_ms" jsonschema:"minimum=1,default=100"`
	SlowDebugMs int `mapstructure:"slow_debug_ms" toml:"slow_debug_ms" json:"slow_debug_ms" jsonschema:"minimum=1,default=50"`
}

// DatabaseConfig holds the snapshot database location.
type DatabaseConfig struct {
	// Path is the SQLite file. Empty means $XDG_DATA_HOME/docklayout/docklayout.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string        `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string        `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	File   LogFileConfig `mapstructure:"file" toml:"file" json:"file"`
}

// LogFileConfig controls the rotating log file.
type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Dir        string `mapstructure:"dir" toml:"dir" json:"dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// ColorScheme selects the palette used by the CLI.
type ColorScheme string

const (
	ColorSchemeAuto  ColorScheme = "auto"
	ColorSchemeDark  ColorScheme = "dark"
	ColorSchemeLight ColorScheme = "light"
)

// AppearanceConfig styles the CLI.
type AppearanceConfig struct {
	ColorScheme  ColorScheme   `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=auto,enum=dark,enum=light"`
	DarkPalette  PaletteConfig `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
	LightPalette PaletteConfig `mapstructure:"light_palette" toml:"light_palette" json:"light_palette"`
}

// PaletteConfig holds #RRGGBB colors for one scheme.
type PaletteConfig struct {
	Accent    string `mapstructure:"accent" toml:"accent" json:"accent"`
	Text      string `mapstructure:"text" toml:"text" json:"text"`
	Muted     string `mapstructure:"muted" toml:"muted" json:"muted"`
	Border    string `mapstructure:"border" toml:"border" json:"border"`
	Container string `mapstructure:"container" toml:"container" json:"container"`
	Error     string `mapstructure:"error" toml:"error" json:"error"`
}

// Schema reflects the JSON schema written next to config.toml.
func Schema() *jsonschema.Schema {
	return xdg.SchemaFor(&Config{}, "config.schema.json",
		"docklayout configuration",
		"Settings for the docklayout CLI (config.toml)")
}
