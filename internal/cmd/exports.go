package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/maniparse/internal/manifest"
	"github.com/cameronsjo/maniparse/internal/ui"
)

var exportsCategory string

// exportsCmd represents the exports command.
var exportsCmd = &cobra.Command{
	Use:   "exports <manifest>",
	Short: "Print the exports registry",
	Long: `Print the artifacts a manifest exports, grouped by category.

With --category, prints only that category's artifacts one per line. The
command fails when the requested category is not declared; a category that
exports nothing prints nothing and succeeds.

Examples:
  maniparse exports package.yml
  maniparse exports -c tools package.yml`,
	Args: cobra.ExactArgs(1),
	Run:  runExports,
}

func init() {
	exportsCmd.Flags().StringVarP(&exportsCategory, "category", "c", "", "Print a single export category")

	rootCmd.AddCommand(exportsCmd)
}

func runExports(cmd *cobra.Command, args []string) {
	m, err := manifest.Load(args[0])
	if err != nil {
		ui.Fatal("%v", err)
	}

	if exportsCategory != "" {
		artifacts, ok := m.ExportsFor(exportsCategory)
		if !ok {
			ui.Fatal("no export category %q in %s", exportsCategory, args[0])
		}
		for _, a := range artifacts {
			fmt.Println(a)
		}
		return
	}

	for _, key := range m.ExportKeys() {
		ui.Item(0, "%s", key)
		artifacts, _ := m.ExportsFor(key)
		for _, a := range artifacts {
			ui.Item(1, "%s", a)
		}
	}
}
