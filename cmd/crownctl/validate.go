package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	crownpages "github.com/phn-team/crown-pages-types"
)

var validateCmd = &cobra.Command{
	Use:   "validate <type> [file.json]",
	Short: "Validate a content payload against a content type",
	Long: `Validate a JSON content payload against a section or full page type.
The payload is read from the file argument, or stdin when omitted.

With --defaults, the type's own default data is checked instead and no
payload is read.

Exits nonzero when validation fails.

Examples:
  crownctl validate hero content.json
  cat content.json | crownctl validate business-landing --page
  crownctl validate hero --defaults`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeName := args[0]
		page, _ := cmd.Flags().GetBool("page")
		defaults, _ := cmd.Flags().GetBool("defaults")

		if defaults {
			return checkTypeDefaults(typeName, page)
		}

		var payload []byte
		var err error
		if len(args) == 2 {
			payload, err = os.ReadFile(args[1])
		} else {
			payload, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("reading payload: %w", err)
		}

		var data map[string]any
		if err := json.Unmarshal(payload, &data); err != nil {
			return fmt.Errorf("parsing payload: %w", err)
		}

		var result crownpages.Result
		if page {
			result = crownpages.ValidateFullPage(typeName, data)
		} else {
			result = crownpages.ValidateSection(typeName, data)
		}

		if jsonOutput {
			if err := printJSON(result); err != nil {
				return err
			}
		} else if result.Valid {
			fmt.Println("valid")
		} else {
			for _, msg := range result.Errors {
				fmt.Println(msg)
			}
		}

		if !result.Valid {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("page", false, "validate against a full page type")
	validateCmd.Flags().Bool("defaults", false, "check the type's default data consistency")
}

func checkTypeDefaults(typeName string, page bool) error {
	var problems []string
	if page {
		def := crownpages.GetFullPage(typeName)
		if def == nil {
			return fmt.Errorf("unknown full page type: %s", typeName)
		}
		problems = crownpages.CheckFullPageDefaults(def)
	} else {
		def := crownpages.GetSection(typeName)
		if def == nil {
			return fmt.Errorf("unknown section type: %s", typeName)
		}
		problems = crownpages.CheckDefaults(def)
	}

	if len(problems) == 0 {
		fmt.Println("defaults consistent")
		return nil
	}
	for _, p := range problems {
		fmt.Println(p)
	}
	os.Exit(1)
	return nil
}
