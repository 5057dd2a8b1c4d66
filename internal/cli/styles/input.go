package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewCommandInput creates the shell prompt.
func NewCommandInput(theme *Theme) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "add editor Editor · insert term editor bottom · help"
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = theme.Prompt
	ti.Prompt = "layout> "
	ti.CharLimit = 512
	return ti
}
