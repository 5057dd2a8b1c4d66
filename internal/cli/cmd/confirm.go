package cmd

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/bnema/docklayout/internal/cli"
	"github.com/bnema/docklayout/internal/cli/model"
)

var assumeYes bool

// confirmDestructive prompts on an interactive terminal. Piped or scripted
// runs, and --yes, proceed without asking.
func confirmDestructive(a *cli.App, message string) (bool, error) {
	if assumeYes || !isatty.IsTerminal(os.Stdin.Fd()) {
		return true, nil
	}
	return model.Confirm(a.Theme, message, os.Stdin, os.Stdout)
}
