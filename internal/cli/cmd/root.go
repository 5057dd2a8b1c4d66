// Package cmd provides the Cobra commands for docklayout.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/docklayout/internal/cli"
	"github.com/bnema/docklayout/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options

	rootCmd = &cobra.Command{
		Use:   "docklayout",
		Short: "Edit binary-split panel layouts from the command line",
		Long: `docklayout keeps a dock layout as a binary tree of splits and panels.

Every mutating command loads the layout file, applies one operation and
writes the file back (unless autosave is off).

Examples:
  docklayout add editor "Editor"
  docklayout insert terminal editor bottom "Terminal"
  docklayout ratio node_1 0.7
  docklayout dump`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// skipsApp reports whether cmd runs without configuration or a layout.
func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "version", "schema":
		return true
	}
	return cmd.Annotations["skipApp"] == "true"
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&appOpts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/docklayout/config.toml)")
	flags.StringVarP(&appOpts.LayoutPath, "layout", "l", "", "layout file (default from config)")
	flags.StringVar(&appOpts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&appOpts.NoAutosave, "no-autosave", false, "do not write the layout file after a change")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// loadedApp returns the app with its layout file loaded.
func loadedApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	if err := a.LoadLayout(); err != nil {
		return nil, err
	}
	return a, nil
}
