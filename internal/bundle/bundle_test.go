package bundle

import (
	"encoding/json"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crownpages "github.com/phn-team/crown-pages-types"
)

func TestBuild(t *testing.T) {
	b := Build()

	assert.Equal(t, crownpages.SchemaVersion, b.SchemaVersion)
	assert.False(t, b.GeneratedAt.IsZero())
	assert.Len(t, b.Sections, len(crownpages.ListSectionTypes()))
	assert.Len(t, b.FullPages, len(crownpages.ListFullPageTypes()))

	// Declaration order survives into the bundle.
	assert.Equal(t, "hero", b.Sections[0].Type)
}

func TestBundle_Marshal(t *testing.T) {
	data, err := Build().Marshal()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, crownpages.SchemaVersion, decoded["schemaVersion"])
	assert.Contains(t, decoded, "sections")
	assert.Contains(t, decoded, "fullPages")
}

func TestSectionSchema_Hero(t *testing.T) {
	schema, err := SectionSchema(crownpages.GetSection("hero"))
	require.NoError(t, err)

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"title"}, schema.Required)

	title := schema.Properties["title"]
	require.NotNil(t, title)
	assert.Equal(t, "string", title.Type)
	require.NotNil(t, title.MinLength)
	assert.Equal(t, 2, *title.MinLength)
	require.NotNil(t, title.MaxLength)
	assert.Equal(t, 100, *title.MaxLength)

	alignment := schema.Properties["alignment"]
	require.NotNil(t, alignment)
	assert.Equal(t, []any{"left", "center", "right"}, alignment.Enum)

	cta := schema.Properties["ctaButton"]
	require.NotNil(t, cta)
	assert.Equal(t, "object", cta.Type)
	assert.Equal(t, []any{"url", "internal"}, cta.Properties["linkType"].Enum)
}

func TestSectionSchema_ValidatesContent(t *testing.T) {
	schema, err := SectionSchema(crownpages.GetSection("hero"))
	require.NoError(t, err)

	resolved, err := schema.Resolve(&jsonschema.ResolveOptions{})
	require.NoError(t, err)

	valid := map[string]any{
		"title":     "Summer opening",
		"subtitle":  "Come see us",
		"alignment": "center",
	}
	assert.NoError(t, resolved.Validate(valid))

	missingTitle := map[string]any{"subtitle": "Come see us"}
	assert.Error(t, resolved.Validate(missingTitle))

	badAlignment := map[string]any{"title": "Summer opening", "alignment": "diagonal"}
	assert.Error(t, resolved.Validate(badAlignment))

	// The exported schema enforces minLength even though the runtime
	// validator does not.
	shortTitle := map[string]any{"title": "x"}
	assert.Error(t, resolved.Validate(shortTitle))
}

func TestSectionSchema_ArrayField(t *testing.T) {
	schema, err := SectionSchema(crownpages.GetSection("faq"))
	require.NoError(t, err)

	items := schema.Properties["items"]
	require.NotNil(t, items)
	assert.Equal(t, "array", items.Type)
	require.NotNil(t, items.Items)
	assert.Equal(t, "object", items.Items.Type)
	assert.Contains(t, items.Items.Properties, "question")
	assert.Contains(t, items.Items.Properties, "answer")
}

func TestSectionSchema_Nil(t *testing.T) {
	_, err := SectionSchema(nil)
	assert.Error(t, err)

	_, err = SectionSchema(crownpages.GetSection("not-a-real-type"))
	assert.Error(t, err)
}

func TestFullPageSchema(t *testing.T) {
	schema, err := FullPageSchema(crownpages.GetFullPage("business-landing"))
	require.NoError(t, err)

	assert.Equal(t, "object", schema.Type)
	assert.Contains(t, schema.Properties, "intro")
	assert.Contains(t, schema.Properties, "testimonials")

	// Optional page sections stay out of the required list.
	assert.Contains(t, schema.Required, "intro")
	assert.NotContains(t, schema.Required, "testimonials")
}

func TestSchemas_WholeCatalogExports(t *testing.T) {
	for _, def := range crownpages.AllSections() {
		schema, err := SectionSchema(def)
		require.NoError(t, err, def.Type)

		_, err = schema.Resolve(&jsonschema.ResolveOptions{})
		require.NoError(t, err, def.Type)
	}
	for _, def := range crownpages.AllFullPages() {
		schema, err := FullPageSchema(def)
		require.NoError(t, err, def.Type)

		_, err = schema.Resolve(&jsonschema.ResolveOptions{})
		require.NoError(t, err, def.Type)
	}
}
