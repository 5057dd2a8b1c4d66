package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/cli/styles"
	"github.com/bnema/docklayout/internal/domain/entity"
)

var (
	dumpJSON      bool
	panelsJSON    bool
	addContent    string
	insertTitle   string
	insertContent string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the layout tree",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := loadedApp()
		if err != nil {
			return err
		}
		if dumpJSON {
			data, err := usecase.MarshalLayout(a.Layout.SaveLayout(a.Ctx()))
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		}
		fmt.Println(a.Theme.RenderTree(a.Layout.DumpAsText()))
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add [id] [title]",
	Short: "Add a panel to the right of the rightmost panel",
	Long: `Add a panel. An empty layout gets it as its root; otherwise it is
placed to the right of the rightmost panel. Without an id one is generated.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := loadedApp()
		if err != nil {
			return err
		}

		var id, title string
		if len(args) > 0 {
			id = args[0]
		}
		if len(args) > 1 {
			title = args[1]
		}
		if id == "" {
			p, err := a.Layout.CreatePanel(title, addContent)
			if err != nil {
				return err
			}
			id = p.ID()
		}

		p, err := a.Layout.AddPanel(a.Ctx(), id, title, addContent)
		if err != nil {
			return err
		}
		if err := a.Persist(); err != nil {
			return err
		}
		fmt.Println(a.Theme.RenderSuccess("added panel " + p.ID()))
		return nil
	},
}

var insertCmd = &cobra.Command{
	Use:   "insert <id> <target> <left|right|top|bottom>",
	Short: "Split a node and place a new panel beside it",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		direction, ok := entity.ParseDirection(args[2])
		if !ok {
			return fmt.Errorf("%w: %q", entity.ErrInvalidDirection, args[2])
		}

		a, err := loadedApp()
		if err != nil {
			return err
		}

		out, err := a.Layout.InsertPanelAt(a.Ctx(), usecase.InsertPanelInput{
			ID:        args[0],
			TargetID:  args[1],
			Direction: direction,
			Title:     insertTitle,
			Content:   insertContent,
		})
		if err != nil {
			return err
		}
		if err := a.Persist(); err != nil {
			return err
		}
		fmt.Println(a.Theme.RenderSuccess(fmt.Sprintf("inserted panel %s in container %s", out.Panel.ID(), out.Container.ID())))
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a panel and collapse its split",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := loadedApp()
		if err != nil {
			return err
		}
		if err := a.Layout.RemovePanel(a.Ctx(), args[0]); err != nil {
			return err
		}
		if err := a.Persist(); err != nil {
			return err
		}
		fmt.Println(a.Theme.RenderSuccess("removed panel " + args[0]))
		return nil
	},
}

var ratioCmd = &cobra.Command{
	Use:   "ratio <container> <ratio>",
	Short: "Set a container's split ratio (clamped to 0.1..0.9)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		ratio, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid ratio %q: %w", args[1], err)
		}

		a, err := loadedApp()
		if err != nil {
			return err
		}
		changed, err := a.Layout.UpdateSplitRatio(a.Ctx(), args[0], ratio)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Println(a.Theme.Subtle.Render("ratio unchanged"))
			return nil
		}
		if err := a.Persist(); err != nil {
			return err
		}
		stored := a.Layout.Tree().FindContainer(args[0]).SplitRatio()
		fmt.Println(a.Theme.RenderSuccess(fmt.Sprintf("%s ratio set to %s", args[0], strconv.FormatFloat(stored, 'g', -1, 64))))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every panel",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := loadedApp()
		if err != nil {
			return err
		}
		if a.Layout.PanelCount() > 0 {
			ok, err := confirmDestructive(a, fmt.Sprintf("Remove all %d panels?", a.Layout.PanelCount()))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(a.Theme.Subtle.Render("aborted"))
				return nil
			}
		}
		a.Layout.Clear(a.Ctx())
		if err := a.Persist(); err != nil {
			return err
		}
		fmt.Println(a.Theme.RenderSuccess("layout cleared"))
		return nil
	},
}

type panelJSON struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	MinSize float64 `json:"minSize"`
}

var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "List panels from left to right",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := loadedApp()
		if err != nil {
			return err
		}
		panels := a.Layout.FlatPanelList()
		if !panelsJSON {
			styles.RenderPanelsTable(os.Stdout, panels)
			return nil
		}

		out := make([]panelJSON, len(panels))
		for i, p := range panels {
			out[i] = panelJSON{ID: p.ID(), Title: p.Title(), Content: p.Content(), MinSize: p.MinSize()}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

var minSizeCmd = &cobra.Command{
	Use:   "min-size [size]",
	Short: "Show or set the minimum size given to new panels",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := loadedApp()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			fmt.Println(strconv.FormatFloat(a.Layout.MinPanelSize(), 'g', -1, 64))
			return nil
		}

		size, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", args[0], err)
		}
		stored := a.Layout.SetMinPanelSize(size)
		if err := a.Persist(); err != nil {
			return err
		}
		fmt.Println(a.Theme.RenderSuccess("min panel size set to " + strconv.FormatFloat(stored, 'g', -1, 64)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd, addCmd, insertCmd, removeCmd, ratioCmd, clearCmd, panelsCmd, minSizeCmd)

	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "print the layout record as JSON")
	clearCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
	panelsCmd.Flags().BoolVar(&panelsJSON, "json", false, "output as JSON")
	addCmd.Flags().StringVar(&addContent, "content", "", "panel content reference")
	insertCmd.Flags().StringVarP(&insertTitle, "title", "t", "", "panel title")
	insertCmd.Flags().StringVar(&insertContent, "content", "", "panel content reference")
}
