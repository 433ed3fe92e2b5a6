// Package common provides shared errors and logging helpers used across
// the application.
package common

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// Catalog errors. ErrStoreUnavailable is fatal for a batch: a
	// resolution against an unreachable catalog is meaningless and must
	// stay distinguishable from "no match found".
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("catalog store unavailable")

	// Ingestion errors.
	ErrMalformedRecord = errors.New("malformed record")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
