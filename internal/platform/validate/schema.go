// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
)

// Type is the JSON type a schema field accepts.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
)

// Format is an optional string format constraint.
type Format string

const (
	FormatNone Format = ""
	FormatURL  Format = "url"
)

// maxExactFloat is the largest magnitude at which float64 still holds every integer.
const maxExactFloat = 1 << 53

// Field describes one allowed key of a JSON object.
type Field struct {
	Name     string
	Type     Type
	Required bool

	// NonEmpty rejects strings that are empty after trimming.
	NonEmpty bool

	// Min and Max are inclusive integer bounds. Nil means unbounded.
	Min *int
	Max *int

	Format Format
}

// Schema is an ordered, closed set of fields. Keys outside the set are rejected.
type Schema struct {
	fields []Field
	known  map[string]struct{}
}

// NewSchema builds a [Schema]. Field order determines violation order.
func NewSchema(fields ...Field) Schema {
	known := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		known[field.Name] = struct{}{}
	}
	return Schema{fields: fields, known: known}
}

// Allows reports whether name is a field of the schema.
func (s Schema) Allows(name string) bool {
	_, ok := s.known[name]
	return ok
}

// Check validates input against the schema.
//
// Violations are reported in field declaration order, at most one per field
// (missing, then wrong type, then constraint), followed by unrecognized keys
// in lexical order. It returns nil when input conforms.
func (s Schema) Check(input map[string]any) error {
	validator := &Validator{}

	for _, field := range s.fields {
		raw, present := input[field.Name]
		if !present {
			validator.Custom(field.Name, field.Required, MsgRequired)
			continue
		}

		switch field.Type {
		case TypeString:
			checkString(validator, field, raw)
		case TypeInteger:
			checkInteger(validator, field, raw)
		}
	}

	for _, name := range s.unknownKeys(input) {
		validator.add(name, MsgUnrecognized)
	}

	return validator.Err()
}

func checkString(validator *Validator, field Field, raw any) {
	value, ok := raw.(string)
	switch {
	case !ok:
		validator.add(field.Name, MsgNotString)
	case strings.ContainsRune(value, 0):
		validator.add(field.Name, MsgNulCharacter)
	case field.NonEmpty && isBlank(value):
		validator.Required(field.Name, value)
	case field.Format == FormatURL:
		validator.URL(field.Name, value)
	}
}

func checkInteger(validator *Validator, field Field, raw any) {
	value, ok := Integer(raw)
	switch {
	case !ok:
		validator.add(field.Name, MsgNotInteger)
	case field.Min != nil && value < *field.Min:
		validator.Min(field.Name, value, *field.Min)
	case field.Max != nil:
		validator.Max(field.Name, value, *field.Max)
	}
}

func (s Schema) unknownKeys(input map[string]any) []string {
	var unknown []string
	for name := range input {
		if !s.Allows(name) {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// Integer converts a decoded JSON value to an int.
//
// It accepts [json.Number], float64 and Go integer kinds whose value has no
// fractional part. Strings, booleans and nil are rejected.
func Integer(raw any) (int, bool) {
	switch value := raw.(type) {
	case json.Number:
		if n, err := value.Int64(); err == nil {
			return int(n), true
		}
		f, err := value.Float64()
		if err != nil {
			return 0, false
		}
		return integralFloat(f)
	case float64:
		return integralFloat(value)
	case float32:
		return integralFloat(float64(value))
	case int:
		return value, true
	case int32:
		return int(value), true
	case int64:
		return int(value), true
	default:
		return 0, false
	}
}

func integralFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > maxExactFloat {
		return 0, false
	}
	return int(f), true
}
