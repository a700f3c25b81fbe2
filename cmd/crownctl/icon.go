package main

import (
	"fmt"

	"github.com/spf13/cobra"

	crownpages "github.com/phn-team/crown-pages-types"
)

var iconCmd = &cobra.Command{
	Use:   "icon [value]",
	Short: "Resolve icon identifiers",
	Long: `Resolve an abstract icon identifier to its platform-specific name,
or list all resolvable identifiers when no value is given.

Examples:
  crownctl icon
  crownctl icon star --platform web`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if jsonOutput {
				return printJSON(crownpages.IconValues())
			}
			for _, v := range crownpages.IconValues() {
				fmt.Println(v)
			}
			return nil
		}

		platform, _ := cmd.Flags().GetString("platform")
		resolved := crownpages.ResolveIcon(args[0], crownpages.Platform(platform))
		if jsonOutput {
			return printJSON(map[string]string{
				"value":    args[0],
				"platform": platform,
				"icon":     resolved,
			})
		}
		fmt.Println(resolved)
		return nil
	},
}

func init() {
	iconCmd.Flags().String("platform", "web", "target platform (mobile or web)")
}
