// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// Error kinds returned by every store operation. Handlers translate these
// into HTTP statuses; nothing is swallowed.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

// Store is the quote lifecycle engine over a SQL database. All mutations are
// guarded single-statement transitions, so concurrent conflicting calls
// resolve to exactly one winner and one ErrInvalidState.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
