package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	xdg "github.com/bnema/docklayout/internal/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown from the command tree",
	Long: `Generate documentation from the command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files

Man pages go to $XDG_DATA_HOME/man/man1 by default, so 'man docklayout'
works after 'mandb'.

Examples:
  docklayout gen-docs
  docklayout gen-docs --format markdown --output ./docs`,
	Annotations: map[string]string{"skipApp": "true"},
	Args:        cobra.NoArgs,
	RunE:        runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			dataDir, err := xdg.GetDataDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = filepath.Join(filepath.Dir(dataDir), "man", "man1")
		case "markdown":
			outputDir = "./docs"
		}
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output: no generation timestamp in the footer.
	rootCmd.DisableAutoGenTag = true

	switch genDocsFormat {
	case "man":
		now := time.Now()
		header := &doc.GenManHeader{
			Title:   "DOCKLAYOUT",
			Section: "1",
			Source:  "docklayout " + buildInfo.Version,
			Manual:  "Docklayout Manual",
			Date:    &now,
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
		return listGenerated(outputDir, ".1")
	case "markdown":
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
		return listGenerated(outputDir, ".md")
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}
}

func listGenerated(dir, ext string) error {
	fmt.Printf("Generated docs in %s\n", dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Printf("  - %s\n", e.Name())
		}
	}
	return nil
}
