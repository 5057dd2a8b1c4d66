package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/docklayout/internal/cli/styles"
	"github.com/bnema/docklayout/internal/infrastructure/scripting"
)

var (
	scriptStats   bool
	scriptTimeout time.Duration
	scriptFresh   bool
)

const defaultScriptTimeout = 30 * time.Second

var scriptCmd = &cobra.Command{
	Use:   "script <file.js>",
	Short: "Run a JavaScript layout script",
	Long: `Run a script against the layout. The script sees a "layout" object:

  layout.add(id?, title?, content?)
  layout.insert(id, target, direction, title?, content?)
  layout.remove(id)
  layout.ratio(containerId, ratio)
  layout.minPanelSize(size?)
  layout.clear()
  layout.dump() / layout.panels() / layout.count() / layout.find(id)

The layout is saved once the script finishes without error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := loadedApp()
		if err != nil {
			return err
		}
		if scriptFresh {
			a.Layout.Clear(a.Ctx())
		}

		ctx, cancel := a.WithTimeout(scriptTimeout)
		defer cancel()

		engine := scripting.New(a.Layout, os.Stdout)
		if err := engine.RunFile(ctx, args[0]); err != nil {
			return err
		}
		if err := a.Persist(); err != nil {
			return err
		}

		if scriptStats {
			styles.RenderStatsTable(os.Stdout, a.Layout.Stats())
		}
		fmt.Println(a.Theme.RenderSuccess(fmt.Sprintf("script done, %d panels", a.Layout.PanelCount())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.Flags().BoolVar(&scriptStats, "stats", false, "print operation timings after the run")
	scriptCmd.Flags().DurationVar(&scriptTimeout, "timeout", defaultScriptTimeout, "abort the script after this long")
	scriptCmd.Flags().BoolVar(&scriptFresh, "fresh", false, "start from an empty layout")
}
