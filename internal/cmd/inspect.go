package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cameronsjo/maniparse/internal/manifest"
	"github.com/cameronsjo/maniparse/internal/render"
	"github.com/cameronsjo/maniparse/internal/ui"
)

// inspectCmd represents the inspect command.
var inspectCmd = &cobra.Command{
	Use:   "inspect <manifest>",
	Short: "Show a manifest's name, version, flavors, and exports",
	Long: `Parse a manifest and print everything it declares.

Matrix flavours are expanded into their concrete variants, so the flavor
list shows exactly what a build driver would be asked to build.

Examples:
  maniparse inspect package.yml`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) {
	m, err := manifest.Load(args[0])
	if err != nil {
		ui.Fatal("%v", err)
	}

	ui.Field("Name", m.Name)
	ui.Field("Version", m.Version)

	flavors, err := m.Flavors(render.New())
	if err != nil {
		ui.Fatal("%v", err)
	}

	ui.Header("Flavors:")
	for _, f := range flavors {
		ui.Item(1, "%s", f)
	}

	keys := m.ExportKeys()
	if keys == nil {
		return
	}
	ui.Header("Exports:")
	for _, key := range keys {
		ui.Item(1, "%s", key)
		artifacts, _ := m.ExportsFor(key)
		for _, a := range artifacts {
			ui.Item(2, "%s", a)
		}
	}
}
