// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrConflict is returned when a write violates a unique constraint.
	ErrConflict = apperr.Conflict("Resource already exists")

	// ErrInvalidValue is returned when the store rejects a value it cannot hold
	// (out-of-range numbers, invalid byte sequences).
	ErrInvalidValue = apperr.ValidationError("Invalid field value")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action names the failed statement (e.g. "get_book") and is kept in the
// cause chain for server-side logs.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping (pgx native and database/sql adapters)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	cause := fmt.Errorf("%s: %w", action, err)

	// 2. Statement rejected by PostgreSQL
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch {
		case pgError.Code == pgerrcode.UniqueViolation:
			return ErrConflict
		case pgerrcode.IsDataException(pgError.Code):
			return ErrInvalidValue
		case pgerrcode.IsConnectionException(pgError.Code),
			pgError.Code == pgerrcode.AdminShutdown,
			pgError.Code == pgerrcode.CannotConnectNow,
			pgError.Code == pgerrcode.QueryCanceled:
			return apperr.Unavailable(cause)
		}
		return apperr.Internal(cause)
	}

	// 3. The store could not be reached or did not answer in time
	if IsUnavailable(err) {
		return apperr.Unavailable(cause)
	}

	// 4. Unknown query errors become Internal Server Errors
	return apperr.Internal(cause)
}

// IsUnavailable reports whether err means the store was unreachable or too slow,
// as opposed to rejecting the statement.
func IsUnavailable(err error) bool {
	var connectError *pgconn.ConnectError
	return errors.As(err, &connectError) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone)
}
