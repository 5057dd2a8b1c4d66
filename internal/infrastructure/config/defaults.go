package config

import (
	"time"

	"github.com/bnema/docklayout/internal/domain/entity"
)

// Default configuration constants
const (
	defaultMaxDepth     = 10
	defaultMaxNodes     = 50
	defaultSlowWarnMs   = 100
	defaultSlowDebugMs  = 50
	defaultLogMaxSizeMB = 10
	defaultLogBackups   = 3
	defaultLogMaxAge    = 7 // days
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			MinPanelSize: entity.DefaultMinPanelSize,
			Autosave:     true,
		},
		Validation: ValidationConfig{
			MaxDepth: defaultMaxDepth,
			MaxNodes: defaultMaxNodes,
		},
		Performance: PerformanceConfig{
			SlowWarnMs:  defaultSlowWarnMs,
			SlowDebugMs: defaultSlowDebugMs,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File: LogFileConfig{
				MaxSizeMB:  defaultLogMaxSizeMB,
				MaxBackups: defaultLogBackups,
				MaxAgeDays: defaultLogMaxAge,
				Compress:   true,
			},
		},
		Appearance: AppearanceConfig{
			ColorScheme: ColorSchemeAuto,
			DarkPalette: PaletteConfig{
				Accent:    "#7aa2f7",
				Text:      "#c0caf5",
				Muted:     "#565f89",
				Border:    "#3b4261",
				Container: "#bb9af7",
				Error:     "#f7768e",
			},
			LightPalette: PaletteConfig{
				Accent:    "#2e7de9",
				Text:      "#3760bf",
				Muted:     "#8990b3",
				Border:    "#a8aecb",
				Container: "#9854f1",
				Error:     "#f52a65",
			},
		},
	}
}

// ValidationLimits converts the thresholds for the layout validator.
func (c *Config) ValidationLimits() entity.ValidationLimits {
	return entity.ValidationLimits{
		MaxDepth: c.Validation.MaxDepth,
		MaxNodes: c.Validation.MaxNodes,
	}
}

// SlowThresholds returns the warn and debug thresholds as durations.
func (c *Config) SlowThresholds() (warn, debug time.Duration) {
	return time.Duration(c.Performance.SlowWarnMs) * time.Millisecond,
		time.Duration(c.Performance.SlowDebugMs) * time.Millisecond
}
