// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a malformed or out-of-range query field. It
// always names the offending field and the rejected value so the message
// is actionable on its own.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// NewValidationError creates a validation error for a field/value pair.
func NewValidationError(field, value string) error {
	return &ValidationError{Field: field, Value: value}
}

// AuthorizationError reports a missing or empty user identifier. The
// message never reveals whether data exists for any user, so the engine
// cannot be used to probe other tenants.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization failed: %s", e.Reason)
}

// StoreError wraps an underlying data-access failure (connectivity,
// malformed response, timeout). It is never converted into an empty
// result.
type StoreError struct {
	Err error
	Op  string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// AmbiguousQueryError is returned in strict mode when no category or
// period can be extracted from a question. Default mode falls back to a
// general summary instead.
type AmbiguousQueryError struct {
	Query string
}

func (e *AmbiguousQueryError) Error() string {
	return fmt.Sprintf("could not extract a category or period from %q", e.Query)
}
