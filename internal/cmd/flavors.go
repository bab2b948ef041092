package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/maniparse/internal/manifest"
	"github.com/cameronsjo/maniparse/internal/render"
	"github.com/cameronsjo/maniparse/internal/ui"
)

// flavorsCmd represents the flavors command.
var flavorsCmd = &cobra.Command{
	Use:   "flavors <manifest>",
	Short: "Print the expanded flavor list, one per line",
	Long: `Print the concrete flavor identifiers a manifest declares.

The sentinel "^" marks the manifest's own implicit default flavour, emitted
when the manifest has top-level requires or recipes. Output is plain, one
identifier per line, for piping into build drivers.

Examples:
  maniparse flavors package.yml
  maniparse flavors package.yml | xargs -n1 builder run`,
	Args: cobra.ExactArgs(1),
	Run:  runFlavors,
}

func init() {
	rootCmd.AddCommand(flavorsCmd)
}

func runFlavors(cmd *cobra.Command, args []string) {
	m, err := manifest.Load(args[0])
	if err != nil {
		ui.Fatal("%v", err)
	}

	flavors, err := m.Flavors(render.New())
	if err != nil {
		ui.Fatal("%v", err)
	}

	for _, f := range flavors {
		fmt.Println(f)
	}
}
