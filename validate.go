package crownpages

import (
	"fmt"
	"unicode/utf8"
)

// Result is the outcome of validating one content payload. Errors preserve
// field declaration order; a payload is valid exactly when Errors is empty.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateSection checks data against the section type's field definitions.
//
// An unknown type short-circuits with a single error; otherwise every field
// is inspected and all failures are collected, never just the first. Two
// checks run: required-ness (absent, nil, or empty string fails) and, for
// text fields with a declared maxLength, the character count. Constraints
// declared on other kinds (select membership, array bounds, image size)
// stay in the model for editors and exporters but are deliberately not
// enforced here.
func ValidateSection(typeName string, data map[string]any) Result {
	def := GetSection(typeName)
	if def == nil {
		return Result{Valid: false, Errors: []string{"Unknown section type: " + typeName}}
	}

	return def.Validate(data)
}

// Validate checks data against this definition's fields. See ValidateSection
// for the checking rules.
func (d *SectionDefinition) Validate(data map[string]any) Result {
	errs := validateFields(d.Fields, data, "")
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateFullPage runs the section algorithm once per declared page
// section, against the sub-object of data keyed by that section's id. A
// missing sub-object is treated as empty, not as an error in itself; only
// its required fields will then fail. Error messages carry the section's
// display name as a prefix.
func ValidateFullPage(typeName string, data map[string]any) Result {
	def := GetFullPage(typeName)
	if def == nil {
		return Result{Valid: false, Errors: []string{"Unknown full page type: " + typeName}}
	}

	return def.Validate(data)
}

// Validate checks data against every declared page section. See
// ValidateFullPage for the checking rules.
func (d *FullPageDefinition) Validate(data map[string]any) Result {
	var errs []string
	for _, section := range d.Sections {
		sub, _ := data[section.ID].(map[string]any)
		if sub == nil {
			sub = map[string]any{}
		}
		errs = append(errs, validateFields(section.Fields, sub, section.Name+": ")...)
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// validateFields walks fields in declaration order so error output is
// deterministic. The switch is exhaustive over the field kinds: adding a
// kind forces a decision about what, if anything, to check for it.
func validateFields(fields FieldList, data map[string]any, prefix string) []string {
	var errs []string
	for _, field := range fields {
		meta := field.Meta()
		value, present := data[meta.Name]

		if meta.Required && isMissing(value, present) {
			errs = append(errs, fmt.Sprintf("%s%s is required", prefix, meta.Label))
		}

		switch f := field.(type) {
		case TextField:
			if f.MaxLength > 0 && present {
				if s, ok := value.(string); ok && utf8.RuneCountInString(s) > f.MaxLength {
					errs = append(errs, fmt.Sprintf("%s%s must be %d characters or less",
						prefix, meta.Label, f.MaxLength))
				}
			}
		case TextareaField, ImageField, SelectField, ButtonField, ArrayField:
			// Only the required check applies to these kinds.
		}
	}
	return errs
}

// isMissing reports whether a value fails the required check: absent from
// the payload, nil, or an empty string. Empty arrays and objects count as
// present.
func isMissing(value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

// CheckDefaults verifies that a section definition's default data is
// structurally consistent with its fields: every required field must carry a
// non-empty default, and no default may name a field the definition lacks.
// Returned strings are authoring errors, not end-user validation messages.
func CheckDefaults(def *SectionDefinition) []string {
	return checkDefaults(def.Fields, def.DefaultData, def.Type)
}

// CheckFullPageDefaults runs the default-data consistency check over every
// section of a full page definition.
func CheckFullPageDefaults(def *FullPageDefinition) []string {
	var problems []string
	for _, section := range def.Sections {
		problems = append(problems, checkDefaults(section.Fields, section.DefaultData,
			def.Type+"."+section.ID)...)
	}
	return problems
}

func checkDefaults(fields FieldList, defaults map[string]any, owner string) []string {
	var problems []string
	for _, field := range fields {
		meta := field.Meta()
		value, present := defaults[meta.Name]
		if meta.Required && isMissing(value, present) {
			problems = append(problems,
				fmt.Sprintf("%s: required field %q has no default", owner, meta.Name))
		}
	}
	for name := range defaults {
		if _, ok := fields.Get(name); !ok {
			problems = append(problems,
				fmt.Sprintf("%s: default data names unknown field %q", owner, name))
		}
	}
	return problems
}
