package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	crownpages "github.com/phn-team/crown-pages-types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List content types in the catalog",
	Long: `List section types, or full page types with --pages.

Examples:
  crownctl list
  crownctl list --category media
  crownctl list --pages --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, _ := cmd.Flags().GetBool("pages")
		category, _ := cmd.Flags().GetString("category")

		if pages {
			defs := crownpages.AllFullPages()
			if category != "" {
				defs = crownpages.FullPagesByCategory(crownpages.Category(category))
			}
			if jsonOutput {
				return printJSON(defs)
			}
			printPageList(defs)
			return nil
		}

		defs := crownpages.AllSections()
		if category != "" {
			defs = crownpages.SectionsByCategory(crownpages.Category(category))
		}
		if jsonOutput {
			return printJSON(defs)
		}
		printSectionList(defs)
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("pages", false, "list full page types instead of sections")
	listCmd.Flags().String("category", "", "filter by category")
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printSectionList(defs []*crownpages.SectionDefinition) {
	if len(defs) == 0 {
		fmt.Println("No section types found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tNAME\tCATEGORY\tFIELDS\tVERSION")
	for _, def := range defs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			def.Type, def.Name, def.Category, len(def.Fields), def.Version)
	}
	w.Flush()
}

func printPageList(defs []*crownpages.FullPageDefinition) {
	if len(defs) == 0 {
		fmt.Println("No full page types found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tNAME\tCATEGORY\tSECTIONS\tVERSION")
	for _, def := range defs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			def.Type, def.Name, def.Category, len(def.Sections), def.Version)
	}
	w.Flush()
}
