// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError], and a declarative
// [Schema] for checking untyped JSON objects.
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. It ensures that business logic only operates on structurally valid data.
package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Violation messages shared by the Validator and Schema.
const (
	MsgRequired     = "This field is required"
	MsgNotString    = "Must be a string"
	MsgNotInteger   = "Must be an integer"
	MsgInvalidURL   = "Must be a valid http(s) URL"
	MsgNulCharacter = "Must not contain NUL characters"
	MsgUnrecognized = "Unrecognized field"
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if isBlank(value) {
		v.add(field, MsgRequired)
	}
	return v
}

// Min fails if the value is below min.
func (v *Validator) Min(field string, value, min int) *Validator {
	if value < min {
		v.add(field, minMessage(min))
	}
	return v
}

// Max fails if the value is above max.
func (v *Validator) Max(field string, value, max int) *Validator {
	if value > max {
		v.add(field, fmt.Sprintf("Must be at most %d", max))
	}
	return v
}

// URL fails if the value is not an absolute http or https URL.
func (v *Validator) URL(field, value string) *Validator {
	if !isHTTPURL(value) {
		v.add(field, MsgInvalidURL)
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("year", year > 9999, "Must be at most 9999")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method. Call it at the end of the chain.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func isHTTPURL(value string) bool {
	parsed, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func minMessage(min int) string {
	return fmt.Sprintf("Must be at least %d", min)
}
