package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	xdg "github.com/bnema/docklayout/internal/config"
	"github.com/bnema/docklayout/internal/infrastructure/config"
)

var schemaCmd = &cobra.Command{
	Use:       "schema <layout|config>",
	Short:     "Print the JSON schema of the layout file or config file",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"layout", "config"},
	RunE: func(_ *cobra.Command, args []string) error {
		var data []byte
		var err error
		switch args[0] {
		case "layout":
			data, err = xdg.MarshalSchema(xdg.LayoutSchema())
		case "config":
			data, err = xdg.MarshalSchema(config.Schema())
		default:
			return fmt.Errorf("unknown schema %q (want layout or config)", args[0])
		}
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
