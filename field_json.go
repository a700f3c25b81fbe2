package crownpages

import (
	"encoding/json"
	"fmt"
)

// Fields cross a few boundaries as JSON: definition files loaded from disk,
// definition rows loaded from Postgres, the published bundle, and the HTTP
// API. The wire shape tags every field with its kind so the decoder can pick
// the matching concrete type.

func (f TextField) MarshalJSON() ([]byte, error) {
	type alias TextField
	return json.Marshal(struct {
		Kind FieldKind `json:"kind"`
		alias
	}{f.Kind(), alias(f)})
}

func (f TextareaField) MarshalJSON() ([]byte, error) {
	type alias TextareaField
	return json.Marshal(struct {
		Kind FieldKind `json:"kind"`
		alias
	}{f.Kind(), alias(f)})
}

func (f ImageField) MarshalJSON() ([]byte, error) {
	type alias ImageField
	return json.Marshal(struct {
		Kind FieldKind `json:"kind"`
		alias
	}{f.Kind(), alias(f)})
}

func (f SelectField) MarshalJSON() ([]byte, error) {
	type alias SelectField
	return json.Marshal(struct {
		Kind FieldKind `json:"kind"`
		alias
	}{f.Kind(), alias(f)})
}

func (f ButtonField) MarshalJSON() ([]byte, error) {
	type alias ButtonField
	return json.Marshal(struct {
		Kind FieldKind `json:"kind"`
		alias
	}{f.Kind(), alias(f)})
}

func (f ArrayField) MarshalJSON() ([]byte, error) {
	type alias ArrayField
	return json.Marshal(struct {
		Kind FieldKind `json:"kind"`
		alias
	}{f.Kind(), alias(f)})
}

// UnmarshalField inspects the "kind" discriminator and decodes the payload
// into the matching concrete field type.
func UnmarshalField(data []byte) (Field, error) {
	var discriminator struct {
		Kind FieldKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &discriminator); err != nil {
		return nil, err
	}

	switch discriminator.Kind {
	case FieldKindText:
		var f TextField
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case FieldKindTextarea:
		var f TextareaField
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case FieldKindImage:
		var f ImageField
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case FieldKindSelect:
		var f SelectField
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case FieldKindButton:
		var f ButtonField
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case FieldKindArray:
		var f ArrayField
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case "":
		return nil, fmt.Errorf("field payload missing kind")
	default:
		return nil, fmt.Errorf("unknown field kind: %s", discriminator.Kind)
	}
}

// UnmarshalJSON decodes an ordered array of kind-tagged field payloads.
func (l *FieldList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw) == 0 {
		*l = nil
		return nil
	}

	fields := make(FieldList, 0, len(raw))
	for _, r := range raw {
		f, err := UnmarshalField(r)
		if err != nil {
			return err
		}
		fields = append(fields, f)
	}

	*l = fields
	return nil
}
