package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	crownpages "github.com/phn-team/crown-pages-types"
)

// LoadDirectory reads every *.json file in dir as a section definition.
// Files are visited in name order so the resulting slice, and any registry
// built from it, lists types deterministically. The file name does not have
// to match the type key inside; the payload's type key wins.
func LoadDirectory(dir string) ([]*crownpages.SectionDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, crownpages.NewError(crownpages.ErrorTypeSource, crownpages.ErrCodeSourceUnavailable,
			fmt.Sprintf("cannot read definition directory %s", dir)).WithCause(err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, crownpages.NewError(crownpages.ErrorTypeSource, crownpages.ErrCodeSourceUnavailable,
			fmt.Sprintf("no definition files found in %s", dir))
	}

	defs := make([]*crownpages.SectionDefinition, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, crownpages.NewError(crownpages.ErrorTypeSource, crownpages.ErrCodeSourceUnavailable,
				fmt.Sprintf("cannot read definition file %s", path)).WithCause(err)
		}

		def, err := parseDefinition(data, path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, nil
}
