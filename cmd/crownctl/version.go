package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	crownpages "github.com/phn-team/crown-pages-types"
)

var versionCmd = &cobra.Command{
	Use:   "version [client-version]",
	Short: "Print the schema version, or check a client version against it",
	Long: `Print the catalog schema version. With an argument, check whether
that client version is compatible; exits nonzero when it is not.

Examples:
  crownctl version
  crownctl version 2.4.0`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if jsonOutput {
				return printJSON(map[string]string{"schemaVersion": crownpages.SchemaVersion})
			}
			fmt.Println(crownpages.SchemaVersion)
			return nil
		}

		compatible := crownpages.IsCompatible(args[0])
		if jsonOutput {
			if err := printJSON(map[string]any{
				"schemaVersion": crownpages.SchemaVersion,
				"client":        args[0],
				"compatible":    compatible,
			}); err != nil {
				return err
			}
		} else if compatible {
			fmt.Println("compatible")
		} else {
			fmt.Printf("incompatible: catalog is %s, client is %s\n", crownpages.SchemaVersion, args[0])
		}

		if !compatible {
			os.Exit(1)
		}
		return nil
	},
}
