package fieldtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hurou927/table-schema-gen/internal/diagnostic"
	"github.com/hurou927/table-schema-gen/internal/schema"
)

func result(typ string) *schema.FieldOptions {
	return &schema.FieldOptions{Result: &schema.FieldDescriptor{Type: typ}}
}

func TestMapper_Map(t *testing.T) {
	tests := []struct {
		name     string
		field    schema.Field
		expected string
	}{
		{"single select", schema.Field{Type: "singleSelect"}, "string?"},
		{"number", schema.Field{Type: "number"}, "number?"},
		{"rating", schema.Field{Type: "rating"}, "number?"},
		{"auto number", schema.Field{Type: "autoNumber"}, "number?"},
		{"checkbox", schema.Field{Type: "checkbox"}, "boolean?"},
		{"date time", schema.Field{Type: "dateTime"}, "string?"},
		{"collaborator", schema.Field{Type: "singleCollaborator"}, "object?"},
		{"barcode", schema.Field{Type: "barcode"}, "record?"},
		{"multi select", schema.Field{Type: "multipleSelects"}, "array<string>?"},
		{"links", schema.Field{Type: "multipleRecordLinks", Options: &schema.FieldOptions{LinkedTableID: "tblX"}}, "array<string>?"},
		{"attachments", schema.Field{Type: "multipleAttachments"}, "array<object>?"},
		{"formula number", schema.Field{Type: "formula", Options: result("number")}, "number?"},
		{"rollup currency", schema.Field{Type: "rollup", Options: result("currency")}, "number?"},
		{"lookup text", schema.Field{Type: "multipleLookupValues", Options: result("singleLineText")}, "array<string>?"},
		{"lookup of multi select", schema.Field{Type: "lookup", Options: result("multipleSelects")}, "array<string>?"},
		{
			"nested formula",
			schema.Field{Type: "formula", Options: &schema.FieldOptions{Result: &schema.FieldDescriptor{
				Type: "rollup", Options: result("checkbox"),
			}}},
			"boolean?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diags diagnostic.Diagnostics
			spec, err := NewMapper("T", &diags).Map(tt.field)
			require.NoError(t, err)
			require.NotNil(t, spec)
			assert.Equal(t, tt.expected, spec.String())
			assert.Empty(t, diags.Warnings)
		})
	}
}

func TestMapper_ComputedAlwaysOptional(t *testing.T) {
	spec, err := NewMapper("T", nil).Map(schema.Field{Type: "formula", Options: result("multipleAttachments")})
	require.NoError(t, err)

	assert.True(t, spec.Optional)
	require.NotNil(t, spec.Inner)
	assert.False(t, spec.Inner.Optional)
	assert.Equal(t, KindObject, spec.Inner.Kind)
}

func TestMapper_SpecsAreIndependent(t *testing.T) {
	m := NewMapper("T", nil)
	first, err := m.Map(schema.Field{Type: "multipleSelects"})
	require.NoError(t, err)
	first.Optional = false
	first.Inner.Kind = KindNumber

	second, err := m.Map(schema.Field{Type: "multipleSelects"})
	require.NoError(t, err)
	assert.Equal(t, "array<string>?", second.String())
}

func TestMapper_Unsupported(t *testing.T) {
	var diags diagnostic.Diagnostics
	m := NewMapper("Tasks", &diags)

	spec, err := m.Map(schema.Field{ID: "fld9", Name: "Sync", Type: "somethingNew"})
	require.NoError(t, err)
	assert.Nil(t, spec)

	spec, err = m.Map(schema.Field{ID: "fld10", Name: "Calc", Type: "formula", Options: result("somethingNew")})
	require.NoError(t, err)
	assert.Nil(t, spec)

	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, diagnostic.CodeUnsupportedType, diags.Warnings[0].Code)
	assert.Equal(t, "Sync", diags.Warnings[0].Field)
	assert.Equal(t, "Tasks", diags.Warnings[0].Table)
	assert.Contains(t, diags.Warnings[0].Message, "somethingNew")
}

func TestMapper_MissingResultIsFatal(t *testing.T) {
	tests := []struct {
		name  string
		field schema.Field
	}{
		{"no options", schema.Field{ID: "fld1", Name: "Calc", Type: "formula"}},
		{"no result", schema.Field{ID: "fld1", Name: "Calc", Type: "rollup", Options: &schema.FieldOptions{}}},
		{"empty result type", schema.Field{ID: "fld1", Name: "Calc", Type: "lookup", Options: result("")}},
		{
			"nested missing",
			schema.Field{ID: "fld1", Name: "Calc", Type: "formula", Options: &schema.FieldOptions{
				Result: &schema.FieldDescriptor{Type: "rollup"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMapper("T", nil).Map(tt.field)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingResult)
			assert.Contains(t, err.Error(), `"Calc"`)
			assert.Contains(t, err.Error(), "fld1")
		})
	}
}

func TestClassify(t *testing.T) {
	assert.IsType(t, Scalar{}, Classify(schema.FieldDescriptor{Type: "email"}))
	assert.IsType(t, Computed{}, Classify(schema.FieldDescriptor{Type: "rollup"}))
	assert.IsType(t, Unsupported{}, Classify(schema.FieldDescriptor{Type: "nope"}))

	c, ok := Classify(schema.FieldDescriptor{Type: "lookup", Options: result("number")}).(Computed)
	require.True(t, ok)
	assert.True(t, c.Multiple)
	assert.Equal(t, "number", c.Result.Type)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "record", KindRecord.String())
	assert.Equal(t, "unknown", Kind(99).String())
	var nilSpec *Spec
	assert.Equal(t, "<unsupported>", nilSpec.String())
}
