package utils

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrDatabaseError = errors.New("database error")

	ErrCustomerNotFound     = wrapSentinel("customer not found", ErrNotFound)
	ErrShootNotFound        = wrapSentinel("shoot not found", ErrNotFound)
	ErrPackageNotFound      = wrapSentinel("package not found", ErrNotFound)
	ErrAccountNotFound      = wrapSentinel("account not found", ErrNotFound)
	ErrNotificationNotFound = wrapSentinel("notification not found", ErrNotFound)
	ErrTemplateTypeNotFound = wrapSentinel("email template type not found", ErrNotFound)
	ErrNoRecipients         = wrapSentinel("no recipients matched", ErrNotFound)

	ErrEmailInUse    = wrapSentinel("email already in use", ErrConflict)
	ErrUsernameInUse = wrapSentinel("username already in use", ErrConflict)

	ErrInvalidCredentials = wrapSentinel("invalid credentials", ErrUnauthorized)

	ErrMailDelivery = errors.New("mail delivery failed")
)

type sentinel struct {
	msg    string
	parent error
}

func (e *sentinel) Error() string { return e.msg }
func (e *sentinel) Unwrap() error { return e.parent }

func wrapSentinel(msg string, parent error) error {
	return &sentinel{msg: msg, parent: parent}
}

// ValidationError reports rejected input. Fields maps a field name to a short
// message that is safe to return to clients.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns e as an error only when it carries field errors.
func (e *ValidationError) OrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err wraps a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
