package main

import (
	"fmt"

	"github.com/spf13/cobra"

	crownpages "github.com/phn-team/crown-pages-types"
	"github.com/phn-team/crown-pages-types/internal/bundle"
)

var exportCmd = &cobra.Command{
	Use:   "export [type]",
	Short: "Export JSON Schemas or the full catalog bundle",
	Long: `Export one content type as a JSON Schema, or the whole catalog as a
bundle document when no type is given.

Examples:
  crownctl export
  crownctl export hero
  crownctl export business-landing --page`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return printJSON(bundle.Build())
		}

		typeName := args[0]
		page, _ := cmd.Flags().GetBool("page")

		if page {
			def := crownpages.GetFullPage(typeName)
			if def == nil {
				return fmt.Errorf("unknown full page type: %s", typeName)
			}
			schema, err := bundle.FullPageSchema(def)
			if err != nil {
				return err
			}
			return printJSON(schema)
		}

		def := crownpages.GetSection(typeName)
		if def == nil {
			return fmt.Errorf("unknown section type: %s", typeName)
		}
		schema, err := bundle.SectionSchema(def)
		if err != nil {
			return err
		}
		return printJSON(schema)
	},
}

func init() {
	exportCmd.Flags().Bool("page", false, "export a full page type")
}
