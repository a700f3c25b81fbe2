package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	crownpages "github.com/phn-team/crown-pages-types"
)

var showCmd = &cobra.Command{
	Use:   "show <type>",
	Short: "Show one content type definition",
	Long: `Show the full definition of a section or full page type.

Examples:
  crownctl show hero
  crownctl show business-landing --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeName := args[0]

		if def := crownpages.GetSection(typeName); def != nil {
			if jsonOutput {
				return printJSON(def)
			}
			printSection(def)
			return nil
		}
		if def := crownpages.GetFullPage(typeName); def != nil {
			if jsonOutput {
				return printJSON(def)
			}
			printPage(def)
			return nil
		}
		return fmt.Errorf("unknown content type: %s", typeName)
	},
}

func printSection(def *crownpages.SectionDefinition) {
	fmt.Printf("%s (%s)\n", def.Name, def.Type)
	if def.Description != "" {
		fmt.Println(def.Description)
	}
	fmt.Printf("category: %s  version: %s\n\n", def.Category, def.Version)
	printFieldTable(def.Fields)
}

func printPage(def *crownpages.FullPageDefinition) {
	fmt.Printf("%s (%s)\n", def.Name, def.Type)
	if def.Description != "" {
		fmt.Println(def.Description)
	}
	fmt.Printf("category: %s  version: %s\n", def.Category, def.Version)
	for _, section := range def.Sections {
		optional := ""
		if section.Optional {
			optional = " (optional)"
		}
		fmt.Printf("\n[%s] %s%s\n", section.ID, section.Name, optional)
		printFieldTable(section.Fields)
	}
}

func printFieldTable(fields crownpages.FieldList) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tKIND\tLABEL\tREQUIRED")
	for _, f := range fields {
		meta := f.Meta()
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", meta.Name, f.Kind(), meta.Label, meta.Required)
	}
	w.Flush()
}
