package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/cli/styles"
)

// EventLog counts layout events for the shell status line. It is shared by
// pointer because tea models are copied on every update.
type EventLog struct {
	Structure int
	Count     int
	Last      string
}

func (l *EventLog) OnStructureChanged()  { l.Structure++ }
func (l *EventLog) OnPanelCountChanged() { l.Count++ }
func (l *EventLog) OnPanelAdded(id string) {
	l.Last = "added " + id
}
func (l *EventLog) OnPanelRemoved(id string) {
	l.Last = "removed " + id
}

var _ port.LayoutEventSink = (*EventLog)(nil)

// ConfigReloadedMsg carries settings from a config file edited while the
// shell is open.
type ConfigReloadedMsg struct {
	Theme        *styles.Theme
	MinPanelSize float64
}

// ShellModel is an interactive prompt over the layout engine.
type ShellModel struct {
	input    textinput.Model
	help     help.Model
	keys     styles.ShellKeyMap
	showHelp bool

	history []string
	histPos int

	output  string
	err     error
	dirty   bool
	width   int
	height  int

	ctx    context.Context
	interp *Interpreter
	layout *usecase.ManageLayoutUseCase
	events *EventLog
	theme  *styles.Theme
}

// NewShellModel creates the shell. events must already be subscribed to the
// layout's sink so the status line reflects engine notifications.
func NewShellModel(
	ctx context.Context,
	theme *styles.Theme,
	layout *usecase.ManageLayoutUseCase,
	interp *Interpreter,
	events *EventLog,
) ShellModel {
	input := styles.NewCommandInput(theme)
	input.Focus()

	if events == nil {
		events = &EventLog{}
	}

	return ShellModel{
		input:  input,
		help:   styles.NewStyledHelp(theme),
		keys:   styles.DefaultShellKeyMap(),
		ctx:    ctx,
		interp: interp,
		layout: layout,
		events: events,
		theme:  theme,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-2, 10)
		return m, nil

	case ConfigReloadedMsg:
		if msg.Theme != nil {
			m.theme = msg.Theme
			m.help = styles.NewStyledHelp(msg.Theme)
			m.help.ShowAll = m.showHelp
		}
		if msg.MinPanelSize > 0 {
			m.layout.SetMinPanelSize(msg.MinPanelSize)
		}
		m.err = nil
		m.output = "config reloaded"
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Previous):
			m.recall(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.recall(1)
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ShellModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}
	m.history = append(m.history, line)
	m.histPos = len(m.history)

	res, err := m.interp.Execute(m.ctx, line)
	m.err = err
	m.output = res.Output
	if res.Mutated {
		m.dirty = true
	}
	if strings.EqualFold(strings.Fields(line)[0], "save") && err == nil {
		m.dirty = false
	}
	if res.Quit {
		return m, tea.Quit
	}
	return m, nil
}

// recall moves through the command history by delta.
func (m *ShellModel) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.histPos = min(max(m.histPos+delta, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
}

// Dirty reports whether the layout changed since the last save.
func (m ShellModel) Dirty() bool {
	return m.dirty
}

// View implements tea.Model.
func (m ShellModel) View() string {
	var b strings.Builder

	title := m.theme.Title.Render("docklayout shell")
	status := m.theme.Subtle.Render(fmt.Sprintf("  %d panels · %d structure events", m.layout.PanelCount(), m.events.Structure))
	if m.dirty {
		status += m.theme.WarningStyle.Render(" · unsaved")
	}
	b.WriteString(title + status + "\n\n")

	tree := m.theme.RenderTree(m.layout.DumpAsText())
	b.WriteString(m.theme.Box.Width(max(m.width-2, 20)).Render(tree))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.theme.RenderError(m.err) + "\n")
	case m.output != "":
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Text).Render(m.output) + "\n")
	}
	if m.events.Last != "" {
		b.WriteString(m.theme.Subtle.Render("last event: "+m.events.Last) + "\n")
	}

	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
