package crownpages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSection_UnknownType(t *testing.T) {
	result := ValidateSection("not-a-real-type", map[string]any{})
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Unknown section type: not-a-real-type"}, result.Errors)
}

func TestValidateSection_HeroRequiredTitle(t *testing.T) {
	result := ValidateSection("hero", map[string]any{
		"title":    "",
		"subtitle": "ok",
	})
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Main Title is required")
}

func TestValidateSection_HeroValid(t *testing.T) {
	result := ValidateSection("hero", map[string]any{
		"title":    "Welcome",
		"subtitle": "ok",
	})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateSection_RequiredVariants(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want bool
	}{
		{"absent", map[string]any{}, false},
		{"nil", map[string]any{"title": nil}, false},
		{"empty string", map[string]any{"title": ""}, false},
		{"whitespace passes", map[string]any{"title": " "}, true},
		{"non-empty", map[string]any{"title": "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSection("hero", tt.data)
			if got := result.Valid; got != tt.want {
				t.Fatalf("Valid = %v, want %v (errors: %v)", got, tt.want, result.Errors)
			}
		})
	}
}

func TestValidateSection_MaxLengthBoundary(t *testing.T) {
	// hero.title declares maxLength 100.
	atLimit := strings.Repeat("a", 100)
	overLimit := strings.Repeat("a", 101)

	result := ValidateSection("hero", map[string]any{"title": atLimit})
	assert.True(t, result.Valid, "a value of exactly maxLength characters must pass")

	result = ValidateSection("hero", map[string]any{"title": overLimit})
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Main Title must be 100 characters or less")
}

func TestValidateSection_MaxLengthCountsRunes(t *testing.T) {
	// 100 multi-byte characters are exactly at the limit even though the
	// byte length is far larger.
	atLimit := strings.Repeat("ü", 100)
	result := ValidateSection("hero", map[string]any{"title": atLimit})
	assert.True(t, result.Valid, "errors: %v", result.Errors)

	result = ValidateSection("hero", map[string]any{"title": atLimit + "ü"})
	assert.False(t, result.Valid)
}

func TestValidateSection_CollectsAllErrors(t *testing.T) {
	// about requires both heading and story; both failures must be reported
	// together, in field declaration order.
	result := ValidateSection("about", map[string]any{})
	require.False(t, result.Valid)
	require.Equal(t, []string{
		"Heading is required",
		"Story is required",
	}, result.Errors)
}

func TestValidateSection_NonTextKindsOnlyRequiredCheck(t *testing.T) {
	// gallery.images is a required array; an empty slice counts as present.
	result := ValidateSection("gallery", map[string]any{"images": []any{}})
	assert.True(t, result.Valid, "errors: %v", result.Errors)

	// A missing required array still fails.
	result = ValidateSection("gallery", map[string]any{})
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Images is required")

	// Array bounds, select membership and image constraints are not
	// enforced: one item in a MinItems:1 array with bogus select value
	// still validates.
	result = ValidateSection("gallery", map[string]any{
		"displayMode": "not-a-real-mode",
		"images":      []any{},
	})
	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestValidateSection_NonStringValueForTextField(t *testing.T) {
	// A non-string value satisfies required-ness and skips the length check.
	result := ValidateSection("hero", map[string]any{"title": 42})
	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestValidateSection_Idempotent(t *testing.T) {
	data := map[string]any{"title": "", "subtitle": strings.Repeat("x", 200)}
	first := ValidateSection("hero", data)
	second := ValidateSection("hero", data)
	assert.Equal(t, first, second)
}

func TestValidateFullPage_UnknownType(t *testing.T) {
	result := ValidateFullPage("not-a-real-page", map[string]any{})
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Unknown full page type: not-a-real-page"}, result.Errors)
}

func TestValidateFullPage_MissingSectionKey(t *testing.T) {
	// business-landing declares intro, services, testimonials, contact.
	// Supplying only a valid intro must produce errors solely for the
	// required fields of the other sections, each prefixed with the
	// section's display name. The missing keys themselves are not errors.
	result := ValidateFullPage("business-landing", map[string]any{
		"intro": map[string]any{"companyName": "Acme"},
	})
	require.False(t, result.Valid)
	assert.Equal(t, []string{
		"Services: Heading is required",
		"Services: Services is required",
		"Contact: Contact Email is required",
	}, result.Errors)
}

func TestValidateFullPage_Valid(t *testing.T) {
	result := ValidateFullPage("business-landing", map[string]any{
		"intro": map[string]any{"companyName": "Acme"},
		"services": map[string]any{
			"heading": "What we do",
			"items":   []any{map[string]any{"title": "Consulting"}},
		},
		"contact": map[string]any{"email": "a@b.c"},
	})
	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestValidateFullPage_MaxLengthInsideSection(t *testing.T) {
	result := ValidateFullPage("business-landing", map[string]any{
		"intro": map[string]any{"companyName": strings.Repeat("a", 81)},
		"services": map[string]any{
			"heading": "x",
			"items":   []any{},
		},
		"contact": map[string]any{"email": "a@b.c"},
	})
	require.False(t, result.Valid)
	assert.Equal(t, []string{"Intro: Company Name must be 80 characters or less"}, result.Errors)
}

func TestCheckDefaults_Catalog(t *testing.T) {
	// Every shipped definition's default data must be consistent with its
	// fields: required fields carry defaults, no default names an unknown
	// field.
	for _, def := range AllSections() {
		if problems := CheckDefaults(def); len(problems) != 0 {
			t.Errorf("section %s: %v", def.Type, problems)
		}
	}
	for _, def := range AllFullPages() {
		if problems := CheckFullPageDefaults(def); len(problems) != 0 {
			t.Errorf("full page %s: %v", def.Type, problems)
		}
	}
}

func TestCheckDefaults_ReportsProblems(t *testing.T) {
	def := &SectionDefinition{
		Type: "broken",
		Fields: FieldList{
			TextField{FieldMeta: FieldMeta{Name: "title", Label: "Title", Required: true}},
		},
		DefaultData: map[string]any{"stray": "value"},
	}

	problems := CheckDefaults(def)
	require.Len(t, problems, 2)
	assert.Contains(t, problems[0], `required field "title" has no default`)
	assert.Contains(t, problems[1], `unknown field "stray"`)
}

func TestValidateSection_DefaultDataValidates(t *testing.T) {
	// A freshly initialized block (defaults only) must pass validation for
	// every shipped section type.
	for _, def := range AllSections() {
		data := def.DefaultData
		if data == nil {
			data = map[string]any{}
		}
		result := ValidateSection(def.Type, data)
		assert.True(t, result.Valid, "section %s: %v", def.Type, result.Errors)
	}
}
