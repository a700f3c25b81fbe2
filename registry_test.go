package crownpages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSection_RoundTrip(t *testing.T) {
	types := ListSectionTypes()
	require.NotEmpty(t, types)

	for _, typeName := range types {
		def := GetSection(typeName)
		require.NotNil(t, def, "type %s", typeName)
		assert.Equal(t, typeName, def.Type)
	}
}

func TestGetSection_Unknown(t *testing.T) {
	assert.Nil(t, GetSection("nonexistent-type"))
}

func TestGetFullPage_RoundTrip(t *testing.T) {
	types := ListFullPageTypes()
	require.NotEmpty(t, types)

	for _, typeName := range types {
		def := GetFullPage(typeName)
		require.NotNil(t, def, "type %s", typeName)
		assert.Equal(t, typeName, def.Type)
	}
}

func TestGetFullPage_Unknown(t *testing.T) {
	assert.Nil(t, GetFullPage("nonexistent-type"))
}

func TestSectionsByCategory_Partition(t *testing.T) {
	// The union over all section categories must be the full registered set,
	// each definition exactly once.
	seen := map[string]int{}
	for _, category := range SectionCategories() {
		for _, def := range SectionsByCategory(category) {
			assert.Equal(t, category, def.Category)
			seen[def.Type]++
		}
	}

	types := ListSectionTypes()
	assert.Len(t, seen, len(types))
	for _, typeName := range types {
		assert.Equal(t, 1, seen[typeName], "type %s", typeName)
	}
}

func TestFullPagesByCategory_Partition(t *testing.T) {
	seen := map[string]int{}
	for _, category := range FullPageCategories() {
		for _, def := range FullPagesByCategory(category) {
			assert.Equal(t, category, def.Category)
			seen[def.Type]++
		}
	}

	types := ListFullPageTypes()
	assert.Len(t, seen, len(types))
	for _, typeName := range types {
		assert.Equal(t, 1, seen[typeName], "type %s", typeName)
	}
}

func TestByCategory_UnknownCategoryEmpty(t *testing.T) {
	assert.Empty(t, SectionsByCategory("no-such-category"))
	assert.Empty(t, FullPagesByCategory("no-such-category"))
}

func TestListSectionTypes_DeclarationOrder(t *testing.T) {
	types := ListSectionTypes()
	require.NotEmpty(t, types)
	assert.Equal(t, "hero", types[0], "hero leads the editor palette")

	// Accessor returns a copy: mutating it must not affect the registry.
	types[0] = "mutated"
	assert.Equal(t, "hero", ListSectionTypes()[0])
}

func TestNewRegistry_DuplicateTypeLastWins(t *testing.T) {
	first := &SectionDefinition{Type: "dup", Name: "First", Category: CategoryContent}
	second := &SectionDefinition{Type: "dup", Name: "Second", Category: CategoryContent}

	r := NewRegistry(first, second)
	assert.Equal(t, 1, r.Len())

	got, ok := r.Get("dup")
	require.True(t, ok)
	assert.Equal(t, "Second", got.Name)
	assert.Equal(t, []string{"dup"}, r.Types())
}

func TestRegistry_AllPreservesOrder(t *testing.T) {
	a := &SectionDefinition{Type: "a", Category: CategoryContent}
	b := &SectionDefinition{Type: "b", Category: CategoryMedia}
	c := &SectionDefinition{Type: "c", Category: CategoryContent}

	r := NewRegistry(a, b, c)

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, r.Types())

	content := r.ByCategory(CategoryContent)
	require.Len(t, content, 2)
	assert.Equal(t, "a", content[0].Type)
	assert.Equal(t, "c", content[1].Type)
}
