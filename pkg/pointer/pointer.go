// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Key Functions:
  - To: Creates a pointer from a value literal (e.g. an optional schema bound).
  - Val: Dereferences a pointer, returning the zero value if nil (e.g. a NULL column).
*/
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p. A nil pointer yields the zero value of T.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
