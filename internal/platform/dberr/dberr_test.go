// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/dberr"
)

/*
TestWrap classifies driver errors into application error kinds.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"sql_no_rows", sql.ErrNoRows, apperr.CodeNotFound},
		{"pgx_no_rows", pgx.ErrNoRows, apperr.CodeNotFound},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", sql.ErrNoRows), apperr.CodeNotFound},
		{"unique_violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, apperr.CodeConflict},
		{"numeric_out_of_range", &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange}, apperr.CodeValidation},
		{"nul_in_text", &pgconn.PgError{Code: pgerrcode.CharacterNotInRepertoire}, apperr.CodeValidation},
		{"admin_shutdown", &pgconn.PgError{Code: pgerrcode.AdminShutdown}, apperr.CodeServiceUnavailable},
		{"connection_failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, apperr.CodeServiceUnavailable},
		{"undefined_table", &pgconn.PgError{Code: pgerrcode.UndefinedTable}, apperr.CodeInternal},
		{"deadline", context.DeadlineExceeded, apperr.CodeServiceUnavailable},
		{"conn_done", sql.ErrConnDone, apperr.CodeServiceUnavailable},
		{"unknown", errors.New("boom"), apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")
			assert.True(t, apperr.HasCode(wrapped, tt.code), "got %v", wrapped)
		})
	}
}

/*
TestWrap_Nil passes nil through untouched.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestWrap_KeepsCauseForLogs ensures the action and original error stay in the chain.
*/
func TestWrap_KeepsCauseForLogs(t *testing.T) {
	original := errors.New("relation does not exist")
	wrapped := dberr.Wrap(original, "list_books")

	ae := apperr.As(wrapped)
	assert.NotNil(t, ae)
	assert.ErrorIs(t, wrapped, original)
	assert.Contains(t, ae.Cause.Error(), "list_books")
	assert.NotContains(t, ae.Error(), "relation")
}
