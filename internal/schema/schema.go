// Package schema is the dynamic registration-form engine. An event's form is
// a runtime-defined ordered list of typed field definitions; submitted values
// are captured generically against it without hardcoding field names. The
// package also owns the JSON text encoding both travel in at the store
// boundary.
package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	apperrors "fest-proposal-service/pkg/app_errors"
)

// FieldType is the input type of one form field.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeEmail, FieldTypeTextarea, FieldTypeSelect:
		return true
	}
	return false
}

// FieldDefinition describes one capturable value of a form. Name is the
// machine key, always derived from Label, never edited independently.
type FieldDefinition struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// Schema is an event's ordered field list.
type Schema []FieldDefinition

var whitespaceRun = regexp.MustCompile(`\s+`)

// DeriveName turns a display label into the field's machine key: lowercase,
// each maximal run of whitespace replaced by a single underscore. Leading and
// trailing runs map too, so a padded label derives a different key than its
// trimmed form; existing stored form data depends on that. Derived names are
// not guaranteed unique; ValidateDefinitions checks that at submit time.
func DeriveName(label string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(label), "_")
}

// AddField appends a blank text field. Never fails.
func AddField(s Schema) Schema {
	return append(s, FieldDefinition{Type: FieldTypeText})
}

// Field attribute keys accepted by UpdateField.
const (
	AttrLabel    = "label"
	AttrType     = "type"
	AttrRequired = "required"
	AttrOptions  = "options"
)

// UpdateField replaces one attribute of the field at index and returns the
// updated schema. Setting the label re-derives the field name. An
// out-of-range index fails with ErrFieldIndex.
func UpdateField(s Schema, index int, attribute string, value any) (Schema, error) {
	if index < 0 || index >= len(s) {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrFieldIndex, index)
	}

	updated := make(Schema, len(s))
	copy(updated, s)
	field := &updated[index]

	switch attribute {
	case AttrLabel:
		label, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: label must be a string", apperrors.ErrInvalidInput)
		}
		field.Label = label
		field.Name = DeriveName(label)
	case AttrType:
		var fieldType FieldType
		switch v := value.(type) {
		case FieldType:
			fieldType = v
		case string:
			fieldType = FieldType(v)
		default:
			return nil, fmt.Errorf("%w: type must be a string", apperrors.ErrInvalidInput)
		}
		if !fieldType.IsValid() {
			return nil, fmt.Errorf("%w: unknown field type %q", apperrors.ErrInvalidInput, fieldType)
		}
		field.Type = fieldType
	case AttrRequired:
		required, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: required must be a bool", apperrors.ErrInvalidInput)
		}
		field.Required = required
	case AttrOptions:
		options, ok := value.([]string)
		if !ok {
			return nil, fmt.Errorf("%w: options must be a string list", apperrors.ErrInvalidInput)
		}
		field.Options = options
	default:
		return nil, fmt.Errorf("%w: unknown attribute %q", apperrors.ErrInvalidInput, attribute)
	}

	return updated, nil
}

// RemoveField deletes the field at index. Idempotent: an index that is
// already gone is a no-op, so a retried removal never fails.
func RemoveField(s Schema, index int) Schema {
	if index < 0 || index >= len(s) {
		return s
	}
	updated := make(Schema, 0, len(s)-1)
	updated = append(updated, s[:index]...)
	updated = append(updated, s[index+1:]...)
	return updated
}

// ValidateForSubmission checks that an internal-method form has at least one
// field. External-method events never require a schema.
func ValidateForSubmission(s Schema, method string) error {
	if method == "internal" && len(s) == 0 {
		return apperrors.ErrEmptyForm
	}
	return nil
}

// ValidateDefinitions checks the invariants deferred to submit time: every
// field has a non-empty name unique among its siblings, a valid type, and
// select fields carry options.
func ValidateDefinitions(s Schema) error {
	seen := make(map[string]struct{}, len(s))
	for i, field := range s {
		if field.Name == "" {
			return fmt.Errorf("%w: field %d has no label", apperrors.ErrInvalidInput, i)
		}
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateFieldName, field.Name)
		}
		seen[field.Name] = struct{}{}
		if !field.Type.IsValid() {
			return fmt.Errorf("%w: field %s has unknown type %q", apperrors.ErrInvalidInput, field.Name, field.Type)
		}
		if field.Type == FieldTypeSelect && len(field.Options) == 0 {
			return fmt.Errorf("%w: select field %s has no options", apperrors.ErrInvalidInput, field.Name)
		}
	}
	return nil
}

// BuildInitialValues seeds a capture form: every field name maps to an empty
// string regardless of type.
func BuildInitialValues(s Schema) Values {
	values := make(Values, len(s))
	for _, field := range s {
		values[field.Name] = StringValue("")
	}
	return values
}

// ValidateSubmission checks submitted values against the schema and returns
// the cleaned set to persist. Required fields must be present and non-empty
// (ErrMissingField wraps the field name). Keys not in the schema are dropped,
// tolerating drift between a registration form a user has open and a schema
// that changed under it.
func ValidateSubmission(s Schema, values Values) (Values, error) {
	cleaned := make(Values, len(s))
	for _, field := range s {
		value, ok := values[field.Name]
		if field.Required && (!ok || value.IsEmpty()) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingField, field.Name)
		}
		if ok {
			cleaned[field.Name] = value
		}
	}
	return cleaned, nil
}

// EncodeFields serializes a field list to the JSON text persisted in the
// event document.
func EncodeFields(s Schema) (string, error) {
	if s == nil {
		s = Schema{}
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeFields parses a persisted field list. Empty input decodes to an
// empty schema.
func DecodeFields(raw string) (Schema, error) {
	if raw == "" {
		return nil, nil
	}
	var s Schema
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode form fields: %w", err)
	}
	return s, nil
}
