// Package bundle assembles the full content type catalog into a single
// publishable document and exports per-type JSON Schemas for consumers that
// validate with standard tooling instead of linking this module.
package bundle

import (
	"encoding/json"
	"time"

	crownpages "github.com/phn-team/crown-pages-types"
)

// Bundle is the published shape of the catalog. Both front ends fetch it as
// one document; Sections and FullPages keep registry declaration order so
// editor palettes render identically everywhere.
type Bundle struct {
	SchemaVersion string                           `json:"schemaVersion"`
	GeneratedAt   time.Time                        `json:"generatedAt"`
	Sections      []*crownpages.SectionDefinition  `json:"sections"`
	FullPages     []*crownpages.FullPageDefinition `json:"fullPages"`
}

// Build snapshots the compiled-in catalog.
func Build() *Bundle {
	return &Bundle{
		SchemaVersion: crownpages.SchemaVersion,
		GeneratedAt:   time.Now().UTC(),
		Sections:      crownpages.AllSections(),
		FullPages:     crownpages.AllFullPages(),
	}
}

// Marshal renders the bundle as indented JSON, the format published to S3.
func (b *Bundle) Marshal() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}
