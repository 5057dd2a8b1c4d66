// Package styles provides lipgloss styling for docklayout output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/docklayout/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	Border    lipgloss.Color
	Container lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Success   lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	PanelStyle     lipgloss.Style
	ContainerStyle lipgloss.Style

	Prompt   lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	Box      lipgloss.Style
}

// NewTheme picks the palette for the configured color scheme. Auto asks the
// terminal whether its background is dark.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	dark := true
	switch cfg.Appearance.ColorScheme {
	case config.ColorSchemeLight:
		dark = false
	case config.ColorSchemeAuto:
		dark = lipgloss.HasDarkBackground()
	}

	if dark {
		return NewThemeFromPalette(cfg.Appearance.DarkPalette)
	}
	return NewThemeFromPalette(cfg.Appearance.LightPalette)
}

// NewThemeFromPalette creates a Theme from a palette.
func NewThemeFromPalette(p config.PaletteConfig) *Theme {
	t := &Theme{
		Text:      lipgloss.Color(p.Text),
		Muted:     lipgloss.Color(p.Muted),
		Accent:    lipgloss.Color(p.Accent),
		Border:    lipgloss.Color(p.Border),
		Container: lipgloss.Color(p.Container),
		Error:     lipgloss.Color(p.Error),
		Warning:   lipgloss.Color("#e0af68"),
		Success:   lipgloss.Color(p.Accent),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.PanelStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.ContainerStyle = lipgloss.NewStyle().
		Foreground(t.Container).
		Bold(true)

	t.Prompt = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}
