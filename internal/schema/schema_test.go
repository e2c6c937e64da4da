package schema_test

import (
	"testing"

	"fest-proposal-service/internal/schema"
	apperrors "fest-proposal-service/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveName(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"T-Shirt Size", "t-shirt_size"},
		{"Name", "name"},
		{"Phone\tNumber", "phone_number"},
		{"Roll   Number", "roll_number"},
		// leading and trailing runs map to underscores too; a padded label
		// is a different key than its trimmed form
		{"  Roll   Number  ", "_roll_number_"},
		{" Name", "_name"},
		{"", ""},
		{"   ", "_"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, schema.DeriveName(tc.label), "label %q", tc.label)
	}
}

func TestAddField(t *testing.T) {
	s := schema.AddField(nil)
	require.Len(t, s, 1)
	assert.Equal(t, "", s[0].Name)
	assert.Equal(t, "", s[0].Label)
	assert.Equal(t, schema.FieldTypeText, s[0].Type)
	assert.False(t, s[0].Required)
	assert.Empty(t, s[0].Options)

	s = schema.AddField(s)
	assert.Len(t, s, 2)
}

func TestUpdateField(t *testing.T) {
	base := schema.Schema{
		{Name: "name", Label: "Name", Type: schema.FieldTypeText},
	}

	t.Run("Success - label change re-derives name", func(t *testing.T) {
		updated, err := schema.UpdateField(base, 0, schema.AttrLabel, "T-Shirt Size")
		require.NoError(t, err)
		assert.Equal(t, "T-Shirt Size", updated[0].Label)
		assert.Equal(t, "t-shirt_size", updated[0].Name)
		// the input schema stays untouched
		assert.Equal(t, "name", base[0].Name)
	})

	t.Run("Success - type, required and options", func(t *testing.T) {
		updated, err := schema.UpdateField(base, 0, schema.AttrType, "select")
		require.NoError(t, err)
		assert.Equal(t, schema.FieldTypeSelect, updated[0].Type)

		updated, err = schema.UpdateField(updated, 0, schema.AttrRequired, true)
		require.NoError(t, err)
		assert.True(t, updated[0].Required)

		updated, err = schema.UpdateField(updated, 0, schema.AttrOptions, []string{"S", "M", "L"})
		require.NoError(t, err)
		assert.Equal(t, []string{"S", "M", "L"}, updated[0].Options)
	})

	t.Run("Failed - index out of range", func(t *testing.T) {
		_, err := schema.UpdateField(base, 1, schema.AttrLabel, "Email")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrFieldIndex)

		_, err = schema.UpdateField(base, -1, schema.AttrLabel, "Email")
		assert.ErrorIs(t, err, apperrors.ErrFieldIndex)
	})

	t.Run("Failed - unknown type", func(t *testing.T) {
		_, err := schema.UpdateField(base, 0, schema.AttrType, "checkbox")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - unknown attribute", func(t *testing.T) {
		_, err := schema.UpdateField(base, 0, "placeholder", "x")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestRemoveField(t *testing.T) {
	s := schema.Schema{
		{Name: "a", Label: "A", Type: schema.FieldTypeText},
		{Name: "b", Label: "B", Type: schema.FieldTypeText},
	}

	s = schema.RemoveField(s, 1)
	require.Len(t, s, 1)
	assert.Equal(t, "a", s[0].Name)

	// removing the same index again after the list shrank is a no-op
	s = schema.RemoveField(s, 1)
	assert.Len(t, s, 1)

	s = schema.RemoveField(s, 0)
	assert.Len(t, s, 0)
	s = schema.RemoveField(s, 0)
	assert.Len(t, s, 0)
}

func TestValidateForSubmission(t *testing.T) {
	t.Run("Failed - internal with zero fields", func(t *testing.T) {
		err := schema.ValidateForSubmission(nil, "internal")
		assert.ErrorIs(t, err, apperrors.ErrEmptyForm)
	})

	t.Run("Success - internal with fields", func(t *testing.T) {
		s := schema.Schema{{Name: "name", Label: "Name", Type: schema.FieldTypeText}}
		assert.NoError(t, schema.ValidateForSubmission(s, "internal"))
	})

	t.Run("Success - external never requires a schema", func(t *testing.T) {
		assert.NoError(t, schema.ValidateForSubmission(nil, "external"))
		assert.NoError(t, schema.ValidateForSubmission(schema.Schema{}, "external"))
	})
}

func TestValidateDefinitions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := schema.Schema{
			{Name: "name", Label: "Name", Type: schema.FieldTypeText},
			{Name: "size", Label: "Size", Type: schema.FieldTypeSelect, Options: []string{"S", "M"}},
		}
		assert.NoError(t, schema.ValidateDefinitions(s))
	})

	t.Run("Failed - empty name", func(t *testing.T) {
		s := schema.Schema{{Type: schema.FieldTypeText}}
		assert.ErrorIs(t, schema.ValidateDefinitions(s), apperrors.ErrInvalidInput)
	})

	t.Run("Failed - duplicate derived names", func(t *testing.T) {
		// "Full Name" and "full  name" collapse to the same machine key
		s := schema.Schema{
			{Name: "full_name", Label: "Full Name", Type: schema.FieldTypeText},
			{Name: "full_name", Label: "full  name", Type: schema.FieldTypeText},
		}
		assert.ErrorIs(t, schema.ValidateDefinitions(s), apperrors.ErrDuplicateFieldName)
	})

	t.Run("Failed - select without options", func(t *testing.T) {
		s := schema.Schema{{Name: "size", Label: "Size", Type: schema.FieldTypeSelect}}
		assert.ErrorIs(t, schema.ValidateDefinitions(s), apperrors.ErrInvalidInput)
	})
}

func TestBuildInitialValues(t *testing.T) {
	s := schema.Schema{
		{Name: "name", Label: "Name", Type: schema.FieldTypeText},
		{Name: "age", Label: "Age", Type: schema.FieldTypeNumber},
		{Name: "size", Label: "Size", Type: schema.FieldTypeSelect, Options: []string{"S"}},
	}
	values := schema.BuildInitialValues(s)
	require.Len(t, values, 3)
	for name, value := range values {
		assert.Equal(t, schema.StringValue(""), value, "field %s", name)
	}
}

func TestValidateSubmission(t *testing.T) {
	tshirt := schema.Schema{
		{Name: "t-shirt_size", Label: "T-Shirt Size", Type: schema.FieldTypeSelect, Required: true, Options: []string{"S", "M", "L"}},
	}

	t.Run("Failed - required field absent", func(t *testing.T) {
		_, err := schema.ValidateSubmission(tshirt, schema.Values{})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrMissingField)
		assert.Contains(t, err.Error(), "t-shirt_size")
	})

	t.Run("Failed - required field empty", func(t *testing.T) {
		_, err := schema.ValidateSubmission(tshirt, schema.Values{
			"t-shirt_size": schema.StringValue(""),
		})
		assert.ErrorIs(t, err, apperrors.ErrMissingField)
	})

	t.Run("Success - unknown keys dropped before persistence", func(t *testing.T) {
		cleaned, err := schema.ValidateSubmission(tshirt, schema.Values{
			"t-shirt_size": schema.StringValue("M"),
			"legacy_field": schema.StringValue("stale"),
		})
		require.NoError(t, err)
		assert.Equal(t, schema.Values{"t-shirt_size": schema.StringValue("M")}, cleaned)
	})

	t.Run("Success - optional field may be missing", func(t *testing.T) {
		s := schema.Schema{
			{Name: "name", Label: "Name", Type: schema.FieldTypeText, Required: true},
			{Name: "note", Label: "Note", Type: schema.FieldTypeTextarea},
		}
		cleaned, err := schema.ValidateSubmission(s, schema.Values{
			"name": schema.StringValue("Alice"),
		})
		require.NoError(t, err)
		assert.Equal(t, schema.Values{"name": schema.StringValue("Alice")}, cleaned)
	})

	t.Run("Success - zero and false count as filled", func(t *testing.T) {
		s := schema.Schema{
			{Name: "count", Label: "Count", Type: schema.FieldTypeNumber, Required: true},
		}
		cleaned, err := schema.ValidateSubmission(s, schema.Values{
			"count": schema.NumberValue(0),
		})
		require.NoError(t, err)
		assert.Equal(t, schema.NumberValue(0), cleaned["count"])
	})
}

func TestEncodeDecodeFields(t *testing.T) {
	s := schema.Schema{
		{Name: "t-shirt_size", Label: "T-Shirt Size", Type: schema.FieldTypeSelect, Required: true, Options: []string{"S", "M", "L"}},
		{Name: "roll_number", Label: "Roll Number", Type: schema.FieldTypeNumber},
	}

	encoded, err := schema.EncodeFields(s)
	require.NoError(t, err)

	decoded, err := schema.DecodeFields(encoded)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)

	t.Run("empty input decodes to empty schema", func(t *testing.T) {
		decoded, err := schema.DecodeFields("")
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})

	t.Run("malformed input fails", func(t *testing.T) {
		_, err := schema.DecodeFields("{not json")
		assert.Error(t, err)
	})
}
