// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
)

/*
TestConstructors checks the status and code produced by each constructor.
*/
func TestConstructors(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not_found", apperr.NotFound("Book"), http.StatusNotFound, apperr.CodeNotFound},
		{"conflict", apperr.Conflict("Book already exists"), http.StatusConflict, apperr.CodeConflict},
		{"validation", apperr.ValidationError("Validation failed"), http.StatusBadRequest, apperr.CodeValidation},
		{"rate_limited", apperr.RateLimited(1), http.StatusTooManyRequests, apperr.CodeRateLimited},
		{"internal", apperr.Internal(cause), http.StatusInternalServerError, apperr.CodeInternal},
		{"unavailable", apperr.Unavailable(cause), http.StatusServiceUnavailable, apperr.CodeServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

/*
TestNotFound_Message verifies the resource name is part of the message.
*/
func TestNotFound_Message(t *testing.T) {
	assert.Equal(t, "Book not found", apperr.NotFound("Book").Error())
}

/*
TestInternal_HidesCause ensures the cause is reachable for logging but not in the message.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: relation \"books\" does not exist")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "relation")
	assert.ErrorIs(t, err, cause)
}

/*
TestAs_WrappedChain extracts an AppError through fmt.Errorf wrapping.
*/
func TestAs_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", apperr.Conflict("duplicate"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeConflict, ae.Code)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeConflict))

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.False(t, apperr.HasCode(errors.New("plain"), apperr.CodeConflict))
}
