package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValueKind tags the dynamic type of a submitted field value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
)

// FieldValue is one submitted value: a tagged string, number or bool rather
// than an untyped interface bag, so consumers never re-parse JSON themselves.
type FieldValue struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

func StringValue(s string) FieldValue {
	return FieldValue{Kind: KindString, Str: s}
}

func NumberValue(n float64) FieldValue {
	return FieldValue{Kind: KindNumber, Num: n}
}

func BoolValue(b bool) FieldValue {
	return FieldValue{Kind: KindBool, Bool: b}
}

// IsEmpty reports whether the value counts as unfilled for a required-field
// check. Only a blank string is empty; 0 and false are deliberate inputs.
func (v FieldValue) IsEmpty() bool {
	return v.Kind == KindString && v.Str == ""
}

// Display renders the value for tables and free-text search.
func (v FieldValue) Display() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	default:
		return json.Marshal(v.Str)
	}
}

func (v *FieldValue) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*v = StringValue(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	return fmt.Errorf("unsupported field value %s", string(raw))
}

// Values is a submitted form: field name to value.
type Values map[string]FieldValue

// Render flattens the mapping to a deterministic "name: value" line, the
// haystack the dashboard's free-text search matches against.
func (vs Values) Render() string {
	keys := make([]string, 0, len(vs))
	for key := range vs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vs[key].Display())
	}
	return b.String()
}

// EncodeValues serializes submitted values to the JSON text persisted in the
// registration document.
func EncodeValues(vs Values) (string, error) {
	if vs == nil {
		vs = Values{}
	}
	raw, err := json.Marshal(vs)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeValues parses persisted form data. Empty input decodes to an empty
// mapping.
func DecodeValues(raw string) (Values, error) {
	if raw == "" {
		return Values{}, nil
	}
	var vs Values
	if err := json.Unmarshal([]byte(raw), &vs); err != nil {
		return nil, fmt.Errorf("decode form data: %w", err)
	}
	if vs == nil {
		vs = Values{}
	}
	return vs, nil
}
