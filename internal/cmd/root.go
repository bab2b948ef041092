// Package cmd provides the CLI commands for maniparse.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "maniparse",
	Short: "Inspect build manifests and expand their flavors",
	Long: `maniparse - build manifest inspector

Parses declarative build-manifest YAML and derives the concrete list of
build flavors, expanding matrix flavours into their full cartesian product
of variants.

COMMANDS
  inspect <manifest>     Show name, version, flavors, and exports
  flavors <manifest>     Print the expanded flavor list, one per line
  exports <manifest>     Print the exports registry
  lint <manifest>...     Parse manifests and report errors`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("maniparse version {{.Version}}\n")
}
