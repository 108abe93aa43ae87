package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const docsHeader = `<!-- generated by "cardioai system gendocs"; do not edit -->

`

func NewGenDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Write Markdown reference pages for the cardioai commands",
		Long: `Write one Markdown page per cardioai command: "http start" for the
prediction API, "dashboard start" for the patient registry, and the
"system" tooling. Pages land in ./docs/commands unless --outdir is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, err := cmd.Flags().GetString("outdir")
			if err != nil {
				return err
			}

			n, err := writeCommandDocs(cmd.Root(), outDir)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d command pages written to %s\n", n, outDir)
			return nil
		},
	}

	cmd.Flags().String("outdir", "docs/commands", "Output directory for the command pages")

	return cmd
}

// writeCommandDocs renders the tree under root and returns the page count.
func writeCommandDocs(root *cobra.Command, outDir string) (int, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", outDir, err)
	}

	// The timestamp footer would make every run a diff.
	root.DisableAutoGenTag = true

	prepend := func(string) string { return docsHeader }
	link := func(name string) string { return strings.TrimSuffix(name, filepath.Ext(name)) }
	if err := doc.GenMarkdownTreeCustom(root, outDir, prepend, link); err != nil {
		return 0, fmt.Errorf("generate command docs: %w", err)
	}

	pages, err := filepath.Glob(filepath.Join(outDir, "*.md"))
	if err != nil {
		return 0, err
	}
	return len(pages), nil
}
