package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/docklayout/internal/cli"
	"github.com/bnema/docklayout/internal/cli/styles"
	"github.com/bnema/docklayout/internal/infrastructure/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the config, layout file and snapshot database",
	Long: `Doctor checks that docklayout can run against the current environment:

- the config file loads and carries every current key
- the layout file parses and passes structural validation
- the snapshot database opens and is migrated

Examples:
  docklayout doctor
  docklayout --layout ./team.json doctor`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	report := styles.DoctorReport{Sections: []styles.DoctorSection{
		doctorConfig(a),
		doctorLayout(a),
		doctorDatabase(a),
	}}
	fmt.Println(styles.NewDoctorRenderer(a.Theme).Render(report))

	if !report.OK() {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}

func doctorConfig(a *cli.App) styles.DoctorSection {
	section := styles.DoctorSection{Icon: styles.IconConfig, Title: "Config"}
	section.Checks = append(section.Checks, styles.DoctorCheck{Name: "config loaded", Detail: a.ConfigFile})

	changes, err := config.NewMigrator(a.ConfigFile).DetectChanges(a.Ctx())
	switch {
	case err != nil:
		section.Checks = append(section.Checks, styles.DoctorCheck{
			Name: "key check", Status: styles.CheckFail, Detail: err.Error(),
		})
	case len(changes) > 0:
		section.Checks = append(section.Checks, styles.DoctorCheck{
			Name:   "key check",
			Status: styles.CheckWarn,
			Detail: fmt.Sprintf("%d keys differ from defaults, run 'docklayout config migrate'", len(changes)),
		})
	default:
		section.Checks = append(section.Checks, styles.DoctorCheck{Name: "key check", Detail: "up to date"})
	}
	return section
}

func doctorLayout(a *cli.App) styles.DoctorSection {
	section := styles.DoctorSection{Icon: styles.IconLayout, Title: "Layout"}

	if _, err := os.Stat(a.LayoutPath); err != nil {
		section.Checks = append(section.Checks, styles.DoctorCheck{
			Name: "layout file", Status: styles.CheckWarn, Detail: "not created yet: " + a.LayoutPath,
		})
		return section
	}

	if err := a.LoadLayout(); err != nil {
		section.Checks = append(section.Checks, styles.DoctorCheck{
			Name: "layout file", Status: styles.CheckFail, Detail: err.Error(),
		})
		return section
	}
	section.Checks = append(section.Checks, styles.DoctorCheck{
		Name:   "layout file",
		Detail: fmt.Sprintf("%s (%d panels)", a.LayoutPath, a.Layout.PanelCount()),
	})

	res := a.Layout.Validate()
	check := styles.DoctorCheck{Name: "structure"}
	switch {
	case !res.Valid:
		check.Status = styles.CheckFail
		check.Detail = strings.Join(res.Errors, "; ")
	case len(res.Warnings) > 0:
		check.Status = styles.CheckWarn
		check.Detail = strings.Join(res.Warnings, "; ")
	}
	section.Checks = append(section.Checks, check)
	return section
}

func doctorDatabase(a *cli.App) styles.DoctorSection {
	section := styles.DoctorSection{Icon: styles.IconDatabase, Title: "Snapshots"}

	version, err := a.DatabaseVersion(a.Ctx())
	if err != nil {
		section.Checks = append(section.Checks, styles.DoctorCheck{
			Name: "database", Status: styles.CheckFail, Detail: err.Error(),
		})
		return section
	}
	section.Checks = append(section.Checks, styles.DoctorCheck{
		Name:   "database",
		Detail: fmt.Sprintf("%s (schema version %d)", a.Config.Database.Path, version),
	})
	return section
}
