// Package source loads section definitions from places other than the
// compiled-in catalog: a directory of JSON files, or a Postgres table.
// Loaded definitions are returned as plain slices; callers fold them into
// their own registry instance. The package-level registries stay immutable.
package source

import (
	"encoding/json"
	"fmt"
	"regexp"

	crownpages "github.com/phn-team/crown-pages-types"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// sanitizeIdentifier rejects table names that cannot be interpolated into a
// query safely.
func sanitizeIdentifier(name string) (string, error) {
	if !identifierPattern.MatchString(name) {
		return "", fmt.Errorf("invalid identifier: %q", name)
	}
	return name, nil
}

// parseDefinition decodes one section definition payload and checks the
// minimum a usable definition needs: a type key and at least one field.
func parseDefinition(data []byte, origin string) (*crownpages.SectionDefinition, error) {
	var def crownpages.SectionDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, crownpages.NewError(crownpages.ErrorTypeParse, crownpages.ErrCodeDefinitionParse,
			fmt.Sprintf("cannot parse definition from %s", origin)).WithCause(err)
	}

	if def.Type == "" {
		return nil, crownpages.NewError(crownpages.ErrorTypeParse, crownpages.ErrCodeDefinitionInvalid,
			fmt.Sprintf("definition from %s has no type key", origin))
	}
	if len(def.Fields) == 0 {
		return nil, crownpages.NewError(crownpages.ErrorTypeParse, crownpages.ErrCodeDefinitionInvalid,
			fmt.Sprintf("definition %q from %s declares no fields", def.Type, origin)).WithField("fields")
	}

	if problems := crownpages.CheckDefaults(&def); len(problems) > 0 {
		return nil, crownpages.NewError(crownpages.ErrorTypeParse, crownpages.ErrCodeDefinitionInvalid,
			fmt.Sprintf("definition %q from %s has inconsistent defaults", def.Type, origin)).
			WithDetail("problems", problems)
	}

	return &def, nil
}
