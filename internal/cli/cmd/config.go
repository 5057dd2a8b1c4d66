package cmd

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/infrastructure/config"
)

var (
	configForce  bool
	configDryRun bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or reset the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config, layout and database locations",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}
		fmt.Printf("%s %s\n", a.Theme.Subtle.Render("config:  "), a.ConfigFile)
		fmt.Printf("%s %s\n", a.Theme.Subtle.Render("layout:  "), a.LayoutPath)
		fmt.Printf("%s %s\n", a.Theme.Subtle.Render("database:"), a.Config.Database.Path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}
		enc := toml.NewEncoder(os.Stdout)
		enc.SetIndentTables(true)
		return enc.Encode(a.Config)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default configuration file. Docklayout creates it on first
run; use --force to reset an existing file to the defaults.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}
		if !configForce {
			fmt.Println(a.Theme.RenderSuccess("config file present at " + a.ConfigFile))
			return nil
		}
		if err := config.WriteConfigOrdered(config.DefaultConfig(), a.ConfigFile); err != nil {
			return err
		}
		fmt.Println(a.Theme.RenderSuccess("config reset to defaults at " + a.ConfigFile))
		return nil
	},
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add new default keys to the config file and drop unknown ones",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}
		uc := usecase.NewMigrateConfigUseCase(config.NewMigrator(a.ConfigFile), config.NewDiffFormatter())

		detected, err := uc.DetectChanges(a.Ctx())
		if err != nil {
			return err
		}
		fmt.Print(detected.DiffText)
		if !detected.HasChanges {
			fmt.Println()
			return nil
		}
		if configDryRun {
			return nil
		}

		out, err := uc.Execute(a.Ctx())
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(a.Theme.RenderSuccess(fmt.Sprintf("migrated %d keys in %s", len(out.AppliedKeys), out.ConfigFile)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd, configMigrateCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configMigrateCmd.Flags().BoolVar(&configDryRun, "dry-run", false, "show the changes without writing")
}
