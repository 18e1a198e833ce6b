package utils

import (
	"errors"
	"fmt"
)

// Error kinds shared across repositories and services. Repositories always
// return one of these (wrapped with a record-specific message) instead of
// panicking, so handlers can map them onto the response envelope.
var (
	ErrNotFound         = errors.New("NOT_FOUND")
	ErrValidation       = errors.New("VALIDATION_ERROR")
	ErrInvalidReference = errors.New("INVALID_REFERENCE")
	ErrConflict         = errors.New("CONFLICT")
	ErrHasDependents    = errors.New("HAS_DEPENDENTS")
	ErrUnauthorized     = errors.New("UNAUTHORIZED")
	ErrInvalidToken     = errors.New("INVALID_TOKEN")
)

// StoreError carries a human-readable message on top of an error kind.
// errors.Is matches the kind, Error() yields the message shown to callers.
type StoreError struct {
	Kind    error
	Message string
}

func (e *StoreError) Error() string { return e.Message }
func (e *StoreError) Unwrap() error { return e.Kind }

// NotFoundf builds a not-found error with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return &StoreError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Invalidf builds a validation error with a formatted message.
func Invalidf(format string, args ...interface{}) error {
	return &StoreError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// Referencef builds a referential-integrity error with a formatted message.
func Referencef(format string, args ...interface{}) error {
	return &StoreError{Kind: ErrInvalidReference, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a conflict error with a formatted message.
func Conflictf(format string, args ...interface{}) error {
	return &StoreError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// Unauthorizedf builds an authentication error with a formatted message.
func Unauthorizedf(format string, args ...interface{}) error {
	return &StoreError{Kind: ErrUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// Dependentsf builds a delete-refused error with a formatted message.
func Dependentsf(format string, args ...interface{}) error {
	return &StoreError{Kind: ErrHasDependents, Message: fmt.Sprintf(format, args...)}
}
