package domain

import (
	"errors"
	"sort"
)

// ErrorKind classifies every recoverable failure a core operation can return.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindConflict   ErrorKind = "conflict"
	KindAuth       ErrorKind = "auth"
	KindNotFound   ErrorKind = "not_found"
)

// Error is the structured result surfaced to callers: a kind, a
// human-readable message and, for form validation, per-field messages.
type Error struct {
	Kind    ErrorKind         `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// fieldMessageOrder matches form field order, so the top-level message is
// always the first failing field as a user would read the form.
var fieldMessageOrder = []string{"name", "email", "password", "content"}

// NewFieldValidationError builds a validation error keyed by field name,
// with the message of the first failing field (in form order) doubling as
// the top-level message.
func NewFieldValidationError(fields map[string]string) *Error {
	message := "validation failed"
	if m, ok := firstFieldMessage(fields); ok {
		message = m
	}
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func firstFieldMessage(fields map[string]string) (string, bool) {
	for _, field := range fieldMessageOrder {
		if m, ok := fields[field]; ok {
			return m, true
		}
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		return fields[k], true
	}
	return "", false
}

func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NewAuthError(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// AsError unwraps err into a *Error, or nil when err is of another type.
func AsError(err error) *Error {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

func IsKind(err error, kind ErrorKind) bool {
	if domainErr := AsError(err); domainErr != nil {
		return domainErr.Kind == kind
	}
	return false
}
