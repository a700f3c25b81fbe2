package crownpages

// FieldKind identifies one of the supported editable field kinds.
type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindTextarea FieldKind = "textarea"
	FieldKindImage    FieldKind = "image"
	FieldKindSelect   FieldKind = "select"
	FieldKindButton   FieldKind = "button"
	FieldKindArray    FieldKind = "array"
)

// FieldMeta carries the attributes shared by every field kind. Placeholder
// and Description are display-only and have no runtime effect.
type FieldMeta struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder,omitempty"`
	Description string `json:"description,omitempty"`
}

// Field is the closed set of field kinds a content type may declare. Each
// kind carries only its own constraints, so a text field can never hold an
// item schema and an array field can never hold a character limit. The set
// is sealed: new kinds are added here, and the validator's exhaustive switch
// forces a decision for each one.
type Field interface {
	Kind() FieldKind
	Meta() FieldMeta

	isField()
}

// TextField is a single-line string input with optional length bounds.
// MinLength and MaxLength count Unicode code points; zero means unbounded.
type TextField struct {
	FieldMeta
	MinLength int `json:"minLength,omitempty"`
	MaxLength int `json:"maxLength,omitempty"`
}

func (f TextField) Kind() FieldKind { return FieldKindText }
func (f TextField) Meta() FieldMeta { return f.FieldMeta }
func (TextField) isField()          {}

// TextareaField is a multi-line string input. Rows is a display hint only.
type TextareaField struct {
	FieldMeta
	MaxLength int `json:"maxLength,omitempty"`
	Rows      int `json:"rows,omitempty"`
}

func (f TextareaField) Kind() FieldKind { return FieldKindTextarea }
func (f TextareaField) Meta() FieldMeta { return f.FieldMeta }
func (TextareaField) isField()          {}

// ImageField references an uploaded image. Accept lists permitted file
// extensions and MaxSizeMB bounds the upload in megabytes. Both are
// advisory: no file bytes pass through this package, so upload handling
// enforces them.
type ImageField struct {
	FieldMeta
	Accept    []string `json:"accept,omitempty"`
	MaxSizeMB int      `json:"maxSize,omitempty"`
}

func (f ImageField) Kind() FieldKind { return FieldKindImage }
func (f ImageField) Meta() FieldMeta { return f.FieldMeta }
func (ImageField) isField()          {}

// SelectOption is one choice in a select field. Icon holds an abstract icon
// identifier resolvable through ResolveIcon; Preview is an optional sample
// value an editor may render next to the label.
type SelectOption struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Icon    string `json:"icon,omitempty"`
	Preview string `json:"preview,omitempty"`
}

// SelectField is a fixed-choice input. The value space is the union of the
// option values.
type SelectField struct {
	FieldMeta
	Options []SelectOption `json:"options"`
}

func (f SelectField) Kind() FieldKind { return FieldKindSelect }
func (f SelectField) Meta() FieldMeta { return f.FieldMeta }
func (SelectField) isField()          {}

// LinkType enumerates the destinations a button may point at.
type LinkType string

const (
	LinkTypeURL      LinkType = "url"
	LinkTypeEmail    LinkType = "email"
	LinkTypePhone    LinkType = "phone"
	LinkTypeInternal LinkType = "internal"
)

// ButtonField is a call-to-action button whose permitted destinations are
// limited to LinkTypes.
type ButtonField struct {
	FieldMeta
	LinkTypes []LinkType `json:"linkTypes,omitempty"`
}

func (f ButtonField) Kind() FieldKind { return FieldKindButton }
func (f ButtonField) Meta() FieldMeta { return f.FieldMeta }
func (ButtonField) isField()          {}

// ArrayField is a repeatable group of sub-fields. ItemSchema describes the
// shape of each element; MinItems/MaxItems are inclusive bounds on the
// element count. In the shipped catalog nesting stays one level deep, but
// the model itself does not cap the depth.
type ArrayField struct {
	FieldMeta
	MinItems   int       `json:"minItems,omitempty"`
	MaxItems   int       `json:"maxItems,omitempty"`
	ItemSchema FieldList `json:"itemSchema"`
}

func (f ArrayField) Kind() FieldKind { return FieldKindArray }
func (f ArrayField) Meta() FieldMeta { return f.FieldMeta }
func (ArrayField) isField()          {}

// FieldList is an ordered collection of field definitions. Declaration order
// is meaningful: the validator walks it front to back so error output is
// deterministic, and editors render inputs in the same order.
type FieldList []Field

// Get returns the field named name, or false when the list has none.
func (l FieldList) Get(name string) (Field, bool) {
	for _, f := range l {
		if f.Meta().Name == name {
			return f, true
		}
	}
	return nil, false
}

// Names returns the field names in declaration order.
func (l FieldList) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Meta().Name
	}
	return names
}
