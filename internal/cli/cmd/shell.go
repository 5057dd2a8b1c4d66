package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/docklayout/internal/cli/model"
	"github.com/bnema/docklayout/internal/cli/styles"
	"github.com/bnema/docklayout/internal/infrastructure/config"
	"github.com/bnema/docklayout/internal/logging"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit the layout interactively",
	Long: `Open an interactive prompt showing the live layout tree.

Changes are kept in memory until "save"; leaving with unsaved changes writes
them when autosave is on. Edits to the config file apply while the shell runs.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := loadedApp()
		if err != nil {
			return err
		}

		events := &model.EventLog{}
		a.AddEventSink(events)

		interp := model.NewInterpreter(a.Layout, func(ctx context.Context) error {
			return a.Layout.SaveLayoutToFile(ctx, a.LayoutPath)
		})
		m := model.NewShellModel(a.Ctx(), a.Theme, a.Layout, interp, events)

		p := tea.NewProgram(m, tea.WithAltScreen())
		if err := a.WatchConfig(func(cfg *config.Config) {
			p.Send(model.ConfigReloadedMsg{
				Theme:        styles.NewTheme(cfg),
				MinPanelSize: cfg.Layout.MinPanelSize,
			})
		}); err != nil {
			logging.FromContext(a.Ctx()).Warn().Err(err).Msg("config watch unavailable")
		}

		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("run shell: %w", err)
		}

		if sm, ok := final.(model.ShellModel); ok && sm.Dirty() {
			return a.Persist()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
