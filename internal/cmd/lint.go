package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/maniparse/internal/manifest"
	"github.com/cameronsjo/maniparse/internal/render"
	"github.com/cameronsjo/maniparse/internal/ui"
)

// lintCmd represents the lint command.
var lintCmd = &cobra.Command{
	Use:   "lint <manifest>...",
	Short: "Parse manifests and report errors",
	Long: `Validate manifests without printing their contents.

Each file is parsed and its flavors are expanded, so schema errors and
broken matrix templates are both caught. Exits non-zero if any manifest
fails.

Examples:
  maniparse lint package.yml
  maniparse lint manifests/*.yml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		if err := lintManifest(path); err != nil {
			ui.Error("%s: %v", path, err)
			failed++
			continue
		}
		ui.Success("%s", path)
	}

	if failed > 0 {
		ui.Red.Printf("\n%d of %d manifest(s) failed\n", failed, len(args))
		os.Exit(1)
	}
}

// lintManifest parses one manifest and expands its flavors, returning the
// first error found.
func lintManifest(path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	_, err = m.Flavors(render.New())
	return err
}
