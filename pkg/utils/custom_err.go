package utils

import (
	"errors"
	"fmt"
)

// Error categories. Domain operations return one of these, or an error
// wrapping one, and the API layer maps the category to an HTTP status.
var (
	ErrValidation    = errors.New("invalid request")
	ErrAuthRequired  = errors.New("authentication required")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrDatabaseError = errors.New("database error")
)

// ErrInvalidDate keeps a bad calendar date distinguishable from a missing
// field while still matching errors.Is(err, ErrValidation).
var ErrInvalidDate = fmt.Errorf("%w: invalid date, want YYYY-MM-DD", ErrValidation)

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuthRequired)
	ErrEmailTaken         = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrCardLabelTaken     = fmt.Errorf("%w: card label already exists", ErrConflict)
	ErrCardNotAvailable   = fmt.Errorf("%w: sd card is not available", ErrConflict)
	ErrOpenLogNotFound    = fmt.Errorf("open checkout log %w", ErrNotFound)
)
