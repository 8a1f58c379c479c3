// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/validate"
)

var (
	minOne     = 1
	maxHundred = 100
)

var testSchema = validate.NewSchema(
	validate.Field{Name: "name", Type: validate.TypeString, Required: true, NonEmpty: true},
	validate.Field{Name: "link", Type: validate.TypeString, Required: true, Format: validate.FormatURL},
	validate.Field{Name: "count", Type: validate.TypeInteger, Required: true, Min: &minOne, Max: &maxHundred},
	validate.Field{Name: "note", Type: validate.TypeString},
)

func details(t *testing.T, err error) []apperr.FieldError {
	t.Helper()
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	return ae.Details
}

/*
TestSchema_Check_Valid accepts conforming input, with or without optional fields.
*/
func TestSchema_Check_Valid(t *testing.T) {
	input := map[string]any{
		"name":  "Eli",
		"link":  "https://amazon.com/taco",
		"count": json.Number("3"),
	}
	assert.NoError(t, testSchema.Check(input))

	input["note"] = "optional"
	assert.NoError(t, testSchema.Check(input))
}

/*
TestSchema_Check_Violations lists one violation per broken rule.
*/
func TestSchema_Check_Violations(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		field   string
		message string
	}{
		{"missing_required", map[string]any{"link": "https://a.io", "count": 1}, "name", validate.MsgRequired},
		{"blank_non_empty", map[string]any{"name": "  ", "link": "https://a.io", "count": 1}, "name", validate.MsgRequired},
		{"wrong_string_type", map[string]any{"name": 12, "link": "https://a.io", "count": 1}, "name", validate.MsgNotString},
		{"null_is_type_error", map[string]any{"name": nil, "link": "https://a.io", "count": 1}, "name", validate.MsgNotString},
		{"bad_url", map[string]any{"name": "x", "link": "taco", "count": 1}, "link", validate.MsgInvalidURL},
		{"string_integer", map[string]any{"name": "x", "link": "https://a.io", "count": "eoe"}, "count", validate.MsgNotInteger},
		{"numeric_string", map[string]any{"name": "x", "link": "https://a.io", "count": "100"}, "count", validate.MsgNotInteger},
		{"fraction", map[string]any{"name": "x", "link": "https://a.io", "count": json.Number("1.5")}, "count", validate.MsgNotInteger},
		{"below_min", map[string]any{"name": "x", "link": "https://a.io", "count": 0}, "count", "Must be at least 1"},
		{"above_max", map[string]any{"name": "x", "link": "https://a.io", "count": json.Number("101")}, "count", "Must be at most 100"},
		{"int64_overflow_bound", map[string]any{"name": "x", "link": "https://a.io", "count": json.Number("9223372036854775807")}, "count", "Must be at most 100"},
		{"nul_character", map[string]any{"name": "ta\x00co", "link": "https://a.io", "count": 1}, "name", validate.MsgNulCharacter},
		{"unknown_key", map[string]any{"name": "x", "link": "https://a.io", "count": 1, "badField": "DO NOT ADD ME!"}, "badField", validate.MsgUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := details(t, testSchema.Check(tt.input))
			require.Len(t, got, 1)
			assert.Equal(t, tt.field, got[0].Field)
			assert.Equal(t, tt.message, got[0].Message)
		})
	}
}

/*
TestSchema_Check_Order verifies declaration order then sorted unknown keys.
*/
func TestSchema_Check_Order(t *testing.T) {
	input := map[string]any{
		"zeta":  true,
		"count": "many",
		"alpha": 1,
	}

	got := details(t, testSchema.Check(input))

	fields := make([]string, 0, len(got))
	for _, violation := range got {
		fields = append(fields, violation.Field)
	}
	assert.Equal(t, []string{"name", "link", "count", "alpha", "zeta"}, fields)
}

/*
TestSchema_Allows reports membership of the closed field set.
*/
func TestSchema_Allows(t *testing.T) {
	assert.True(t, testSchema.Allows("name"))
	assert.False(t, testSchema.Allows("isbn"))
}

/*
TestInteger covers the accepted numeric representations.
*/
func TestInteger(t *testing.T) {
	tests := []struct {
		name  string
		raw   any
		want  int
		valid bool
	}{
		{"json_number", json.Number("2008"), 2008, true},
		{"json_number_integral_float", json.Number("100.0"), 100, true},
		{"json_number_fraction", json.Number("100.5"), 0, false},
		{"float64_integral", float64(200), 200, true},
		{"float64_fraction", 2.5, 0, false},
		{"int", 101, 101, true},
		{"int64", int64(-3), -3, true},
		{"string", "100", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := validate.Integer(tt.raw)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
