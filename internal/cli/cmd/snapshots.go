package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/docklayout/internal/cli/styles"
	"github.com/bnema/docklayout/internal/domain/entity"
)

var snapshotsCmd = &cobra.Command{
	Use:     "snapshots",
	Aliases: []string{"snap"},
	Short:   "Save and restore named copies of the layout",
}

var snapshotsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Store the current layout under name",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := loadedApp()
		if err != nil {
			return err
		}
		snap, err := a.Snapshots.Save(a.Ctx(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(a.Theme.RenderSuccess(fmt.Sprintf("saved snapshot %q (%d panels)", snap.Name, snap.PanelCount)))
		return nil
	},
}

var snapshotsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List snapshots, most recently updated first",
	Args:    cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}
		list, err := a.Snapshots.List(a.Ctx())
		if err != nil {
			return err
		}
		styles.RenderSnapshotsTable(os.Stdout, list)
		return nil
	},
}

var snapshotsRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Replace the current layout with a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}
		if _, err := a.Snapshots.Restore(a.Ctx(), args[0]); err != nil {
			if errors.Is(err, entity.ErrSnapshotNotFound) {
				return fmt.Errorf("no snapshot named %q", args[0])
			}
			return err
		}
		if err := a.Persist(); err != nil {
			return err
		}
		fmt.Println(a.Theme.RenderSuccess(fmt.Sprintf("restored snapshot %q (%d panels)", args[0], a.Layout.PanelCount())))
		return nil
	},
}

var snapshotsDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a snapshot",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}
		ok, err := confirmDestructive(a, fmt.Sprintf("Delete snapshot %q?", args[0]))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(a.Theme.Subtle.Render("aborted"))
			return nil
		}
		if err := a.Snapshots.Delete(a.Ctx(), args[0]); err != nil {
			if errors.Is(err, entity.ErrSnapshotNotFound) {
				return fmt.Errorf("no snapshot named %q", args[0])
			}
			return err
		}
		fmt.Println(a.Theme.RenderSuccess(fmt.Sprintf("deleted snapshot %q", args[0])))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotsCmd)
	snapshotsCmd.AddCommand(snapshotsSaveCmd, snapshotsListCmd, snapshotsRestoreCmd, snapshotsDeleteCmd)
	snapshotsDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
}
