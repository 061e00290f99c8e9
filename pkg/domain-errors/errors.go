// Package domainerrors defines the error taxonomy shared by services and the
// HTTP layer. Services return these; the transport layer translates them into
// status codes and the JSON error envelope without inspecting error strings.
package domainerrors

import "errors"

// Code classifies a domain error into one of the request-boundary categories.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal_error"
)

// Error carries a code, a human-readable message, and optional itemized
// details (used by validation failures).
type Error struct {
	Code    Code
	Message string
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithDetails builds a domain error carrying itemized detail strings. The
// details preserve their original order.
func WithDetails(code Code, message string, details []string) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

// Is reports whether err is a domain error with the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// unclassified errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
