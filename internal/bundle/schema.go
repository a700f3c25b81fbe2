package bundle

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	crownpages "github.com/phn-team/crown-pages-types"
)

// SectionSchema exports a section definition as a JSON Schema describing one
// content instance of that type. The exported schema is deliberately stricter
// than the runtime validator: it carries the select enums, array bounds and
// text minimums the validator leaves advisory, so external tooling can lint
// content more aggressively than the editors do.
func SectionSchema(def *crownpages.SectionDefinition) (*jsonschema.Schema, error) {
	if def == nil {
		return nil, fmt.Errorf("nil section definition")
	}

	schema, err := fieldsSchema(def.Fields)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", def.Type, err)
	}
	schema.Title = def.Name
	schema.Description = def.Description
	return schema, nil
}

// FullPageSchema exports a full page definition as a JSON Schema: one object
// property per page section, keyed by section id, in sequence order for the
// required list. Optional sections are present in properties but absent from
// required.
func FullPageSchema(def *crownpages.FullPageDefinition) (*jsonschema.Schema, error) {
	if def == nil {
		return nil, fmt.Errorf("nil full page definition")
	}

	schema := &jsonschema.Schema{
		Type:        "object",
		Title:       def.Name,
		Description: def.Description,
		Properties:  make(map[string]*jsonschema.Schema, len(def.Sections)),
	}
	for _, section := range def.Sections {
		sub, err := fieldsSchema(section.Fields)
		if err != nil {
			return nil, fmt.Errorf("page %s section %s: %w", def.Type, section.ID, err)
		}
		sub.Title = section.Name
		schema.Properties[section.ID] = sub
		if !section.Optional {
			schema.Required = append(schema.Required, section.ID)
		}
	}
	return schema, nil
}

func fieldsSchema(fields crownpages.FieldList) (*jsonschema.Schema, error) {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(fields)),
	}
	for _, field := range fields {
		prop, err := fieldSchema(field)
		if err != nil {
			return nil, err
		}
		meta := field.Meta()
		prop.Description = meta.Description
		schema.Properties[meta.Name] = prop
		if meta.Required {
			schema.Required = append(schema.Required, meta.Name)
		}
	}
	return schema, nil
}

func fieldSchema(field crownpages.Field) (*jsonschema.Schema, error) {
	switch f := field.(type) {
	case crownpages.TextField:
		prop := &jsonschema.Schema{Type: "string"}
		if f.MinLength > 0 {
			prop.MinLength = intPtr(f.MinLength)
		}
		if f.MaxLength > 0 {
			prop.MaxLength = intPtr(f.MaxLength)
		}
		return prop, nil
	case crownpages.TextareaField:
		prop := &jsonschema.Schema{Type: "string"}
		if f.MaxLength > 0 {
			prop.MaxLength = intPtr(f.MaxLength)
		}
		return prop, nil
	case crownpages.ImageField:
		// Image values travel as asset URLs.
		return &jsonschema.Schema{Type: "string"}, nil
	case crownpages.SelectField:
		enum := make([]any, len(f.Options))
		for i, opt := range f.Options {
			enum[i] = opt.Value
		}
		return &jsonschema.Schema{Type: "string", Enum: enum}, nil
	case crownpages.ButtonField:
		linkTypes := make([]any, len(f.LinkTypes))
		for i, lt := range f.LinkTypes {
			linkTypes[i] = string(lt)
		}
		props := map[string]*jsonschema.Schema{
			"label": {Type: "string"},
			"link":  {Type: "string"},
		}
		if len(linkTypes) > 0 {
			props["linkType"] = &jsonschema.Schema{Type: "string", Enum: linkTypes}
		} else {
			props["linkType"] = &jsonschema.Schema{Type: "string"}
		}
		return &jsonschema.Schema{Type: "object", Properties: props}, nil
	case crownpages.ArrayField:
		items, err := fieldsSchema(f.ItemSchema)
		if err != nil {
			return nil, err
		}
		prop := &jsonschema.Schema{Type: "array", Items: items}
		if f.MinItems > 0 {
			prop.MinItems = intPtr(f.MinItems)
		}
		if f.MaxItems > 0 {
			prop.MaxItems = intPtr(f.MaxItems)
		}
		return prop, nil
	default:
		return nil, fmt.Errorf("field %s: unhandled kind %s", field.Meta().Name, field.Kind())
	}
}

func intPtr(v int) *int { return &v }
