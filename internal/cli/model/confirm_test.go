package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/docklayout/internal/cli/styles"
	"github.com/bnema/docklayout/internal/infrastructure/config"
)

func TestConfirmProgram_QuitsWhenDone(t *testing.T) {
	theme := styles.NewThemeFromPalette(config.DefaultConfig().Appearance.DarkPalette)
	m := confirmProgram{dialog: styles.NewConfirm(theme, "Clear?")}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	assert.Nil(t, cmd)

	next, cmd = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, next.(confirmProgram).dialog.Result())
	assert.Empty(t, next.View())
}
