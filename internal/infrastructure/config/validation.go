package config

import (
	"fmt"
	"strings"

	"github.com/bnema/docklayout/internal/domain/entity"
	domainvalidation "github.com/bnema/docklayout/internal/domain/validation"
)

// validateConfig collects every problem in config into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateThresholds(config)...)
	validationErrors = append(validationErrors, validatePerformance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLayout(config *Config) []string {
	size := config.Layout.MinPanelSize
	if size < entity.MinNodeSize || size > entity.MaxNodeSize {
		return []string{fmt.Sprintf(
			"layout.min_panel_size must be between %g and %g (got %g)",
			entity.MinNodeSize, entity.MaxNodeSize, size,
		)}
	}
	return nil
}

func validateThresholds(config *Config) []string {
	var validationErrors []string
	if config.Validation.MaxDepth < 1 {
		validationErrors = append(validationErrors, "validation.max_depth must be at least 1")
	}
	if config.Validation.MaxNodes < 1 {
		validationErrors = append(validationErrors, "validation.max_nodes must be at least 1")
	}
	return validationErrors
}

func validatePerformance(config *Config) []string {
	var validationErrors []string
	if config.Performance.SlowWarnMs < 1 {
		validationErrors = append(validationErrors, "performance.slow_warn_ms must be positive")
	}
	if config.Performance.SlowDebugMs < 1 {
		validationErrors = append(validationErrors, "performance.slow_debug_ms must be positive")
	}
	if config.Performance.SlowDebugMs > config.Performance.SlowWarnMs {
		validationErrors = append(validationErrors, "performance.slow_debug_ms must not exceed performance.slow_warn_ms")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}

	file := config.Logging.File
	if file.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.file.max_size_mb must be non-negative")
	}
	if file.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.file.max_backups must be non-negative")
	}
	if file.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.file.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string

	switch config.Appearance.ColorScheme {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
	default:
		validationErrors = append(validationErrors, "appearance.color_scheme must be auto, dark, or light")
	}

	validationErrors = append(validationErrors,
		domainvalidation.ValidatePaletteHex("appearance.dark_palette", paletteFields(config.Appearance.DarkPalette)...)...)
	validationErrors = append(validationErrors,
		domainvalidation.ValidatePaletteHex("appearance.light_palette", paletteFields(config.Appearance.LightPalette)...)...)
	return validationErrors
}

func paletteFields(p PaletteConfig) []domainvalidation.ColorField {
	return []domainvalidation.ColorField{
		{Name: "accent", Value: p.Accent},
		{Name: "text", Value: p.Text},
		{Name: "muted", Value: p.Muted},
		{Name: "border", Value: p.Border},
		{Name: "container", Value: p.Container},
		{Name: "error", Value: p.Error},
	}
}
