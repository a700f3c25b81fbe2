// crownctl inspects the content type catalog, validates content payloads,
// exports JSON Schemas and publishes the catalog bundle.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "crownctl <command>",
	Short: "CLI for the crown pages content type catalog",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/crownctl/config.toml)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(iconCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(publishCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
