// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookstore/internal/platform/constants"
	"github.com/taibuivan/bookstore/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - writer: http.ResponseWriter (used to cap the body size)
  - request: *http.Request
  - target: interface{} (Pointer to the destination value)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails or data follows the value, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target interface{}) error {
	body := http.MaxBytesReader(writer, request.Body, constants.MaxRequestBodyBytes)
	decoder := json.NewDecoder(body)

	// Keep numbers exact so integer fields can be told apart from fractions.
	decoder.UseNumber()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}

	// The body must hold exactly one JSON value.
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
DecodeObject decodes the request body as an untyped JSON object.

A literal `null` body yields an empty, non-nil map. Arrays, scalars and
malformed input yield validate.ErrInvalidJSON.
*/
func DecodeObject(writer http.ResponseWriter, request *http.Request) (map[string]any, error) {
	var object map[string]any
	if err := DecodeJSON(writer, request, &object); err != nil {
		return nil, err
	}
	if object == nil {
		object = map[string]any{}
	}
	return object, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}
