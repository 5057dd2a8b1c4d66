package model

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/docklayout/internal/cli/styles"
)

// confirmProgram runs a ConfirmModel as a standalone program.
type confirmProgram struct {
	dialog styles.ConfirmModel
}

func (m confirmProgram) Init() tea.Cmd { return nil }

func (m confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	if m.dialog.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m confirmProgram) View() string {
	if m.dialog.Done() {
		return ""
	}
	return m.dialog.View() + "\n"
}

// Confirm asks a yes/no question on the terminal and reports the answer.
func Confirm(theme *styles.Theme, message string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(
		confirmProgram{dialog: styles.NewConfirm(theme, message)},
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	return final.(confirmProgram).dialog.Result(), nil
}
