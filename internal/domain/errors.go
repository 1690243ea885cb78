package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error so the HTTP layer can map it to a
// status code with errors.As instead of matching on message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindConnectivity
	KindPersistence
)

// Error is the error type returned by services and repositories.
// Message is safe to show to API clients; Err carries the internal cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports malformed, missing or out-of-range input.
func NewValidationError(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewConflictError reports a duplicate of an existing record.
func NewConflictError(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewNotFoundError reports a missing record.
func NewNotFoundError(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewConnectivityError reports an unreachable database.
func NewConnectivityError(err error) error {
	return &Error{Kind: KindConnectivity, Message: "database unreachable", Err: err}
}

// NewPersistenceError reports a failed database operation. The op string
// names the operation for server-side logs; clients only ever see a
// generic message.
func NewPersistenceError(op string, err error) error {
	return &Error{Kind: KindPersistence, Message: op, Err: err}
}

// KindOf returns the ErrorKind of err, or KindUnknown if err is not a
// domain Error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
