package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match them with errors.Is and map each to a transport status.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)

// Error is a business failure whose message is safe to show to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func notFound(kind string, id int64) error {
	return newError(ErrNotFound, "%s with ID %d not found", kind, id)
}
