package core

import "errors"

// Kinds of domain failure. Every error returned by AccountStore for a domain
// reason is an *Error whose Kind is one of these.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCapacity           = errors.New("capacity exceeded")
	ErrPersistence        = errors.New("persistence failure")
)

// Error carries a client facing message together with its kind.
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

func newError(kind error, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}
