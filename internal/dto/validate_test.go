package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendira/commerce/internal/id"
)

func TestValidateUndefinedVersusNull(t *testing.T) {
	c := &Contract{Fields: []Field{
		{Name: "description", Exposed: true, Optional: true, Rules: []Rule{String()}},
	}}

	// Optional-but-not-nullable: omitted passes, explicit null fails.
	assert.Empty(t, Validate(c, Object{}))

	errs := Validate(c, Object{"description": nil})
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Path)
	assert.Equal(t, "must not be null", errs[0].Message)

	// Nullable short-circuits the remaining rules.
	nullable := &Contract{Fields: []Field{
		{Name: "description", Exposed: true, Optional: true, Nullable: true, Rules: []Rule{String()}},
	}}
	assert.Empty(t, Validate(nullable, Object{"description": nil}))
}

func TestValidateRequired(t *testing.T) {
	c := &Contract{Fields: []Field{
		{Name: "name", Exposed: true, Rules: []Rule{String()}},
	}}
	errs := Validate(c, Object{})
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Path)
	assert.Equal(t, "is required", errs[0].Message)
}

func TestValidateFirstFailureOnly(t *testing.T) {
	c := &Contract{Fields: []Field{
		{Name: "email", Exposed: true, Rules: []Rule{Length(5, 100), Email()}},
	}}
	errs := Validate(c, Object{"email": "x"})
	require.Len(t, errs, 1, "only the first failing rule per field is reported")
	assert.Contains(t, errs[0].Message, "between 5 and 100")
}

func TestValidateNestedPaths(t *testing.T) {
	c := &Contract{Fields: []Field{
		{Name: "address", Exposed: true, Nested: &Contract{Fields: []Field{
			{Name: "city", Exposed: true, Rules: []Rule{Length(1, 100)}},
		}}},
	}}
	errs := Validate(c, Object{"address": Object{}})
	require.Len(t, errs, 1)
	assert.Equal(t, "address.city", errs[0].Path)
}

func TestValidateArrayPaths(t *testing.T) {
	c := &Contract{Fields: []Field{
		{Name: "items", Exposed: true, Rules: []Rule{MinItems(1)}, Elem: &Contract{Fields: []Field{
			{Name: "quantity", Exposed: true, Rules: []Rule{Positive()}},
		}}},
	}}

	errs := Validate(c, Object{"items": []any{
		Object{"quantity": float64(2)},
		Object{"quantity": float64(-1)},
	}})
	require.Len(t, errs, 1)
	assert.Equal(t, "items.1.quantity", errs[0].Path)

	errs = Validate(c, Object{"items": []any{}})
	require.Len(t, errs, 1)
	assert.Equal(t, "items", errs[0].Path)
}

func TestRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		v    any
		ok   bool
	}{
		{"length ok", Length(1, 3), "ab", true},
		{"length under", Length(3, 5), "ab", false},
		{"length type", Length(1, 3), 7.0, false},
		{"email ok", Email(), "a@acme.com", true},
		{"email bad", Email(), "not-an-email", false},
		{"enum ok", Enum("CREATED", "PAID"), "PAID", true},
		{"enum bad", Enum("CREATED", "PAID"), "SHIPPED", false},
		{"int ok", Int(), float64(3), true},
		{"int fractional", Int(), 3.5, false},
		{"range ok", Range(0, 10), float64(10), true},
		{"range over", Range(0, 10), float64(11), false},
		{"positive ok", Positive(), float64(1), true},
		{"positive zero", Positive(), float64(0), false},
		{"bool ok", Bool(), true, true},
		{"bool bad", Bool(), "true", false},
		{"resource id ok", ResourceID(id.Company), "com_abcdefghijABCDEFGHIJ0", true},
		{"resource id bad prefix", ResourceID(id.Company), "cus_abcdefghijABCDEFGHIJ0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.rule(tt.v)
			if tt.ok {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestFieldErrorMap(t *testing.T) {
	m := FieldErrorMap([]FieldError{
		{Path: "a", Message: "first"},
		{Path: "a", Message: "second"},
		{Path: "b", Message: "third"},
	})
	assert.Equal(t, map[string]string{"a": "first", "b": "third"}, m)
}
