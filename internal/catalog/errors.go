// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no game matches the requested title, rank or index.
	ErrNotFound = errors.New("game not found")

	// ErrAmbiguousMatch indicates a title resolves to more than one game.
	ErrAmbiguousMatch = errors.New("title matches more than one game")

	// ErrInsufficientData indicates the catalog is too small for the operation.
	ErrInsufficientData = errors.New("insufficient catalog data")

	// ErrMalformedRecord indicates a catalog row failed to parse or validate.
	ErrMalformedRecord = errors.New("malformed catalog record")
)

// RecordError describes a rejected catalog row.
// It wraps ErrMalformedRecord so callers can match it with errors.Is.
type RecordError struct {
	// Line is the 1-based line number in the source (0 when unknown).
	Line int

	// Field is the column that failed, if known.
	Field string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	switch {
	case e.Line > 0 && e.Field != "":
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns both the malformed-record sentinel and the cause.
func (e *RecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}
