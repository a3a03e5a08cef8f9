// Package errors defines the closed error taxonomy shared by every layer.
// Services raise these typed errors; the API layer owns the translation to
// HTTP responses, so nothing outside this package hardcodes status codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure. The set is closed: anything that does not fit
// one of the first three kinds is an internal error by definition.
type Kind string

const (
	KindInvalidRequest Kind = "INVALID_REQUEST"
	KindNotFound       Kind = "NOT_FOUND"
	KindDuplicate      Kind = "DUPLICATE"
	KindInternal       Kind = "INTERNAL"
)

// HTTPStatus returns the wire status for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error carrying a kind, a human-readable message and an
// optional field-path -> message map for validation and uniqueness failures.
type Error struct {
	Kind    Kind
	Message string
	Params  map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// InvalidRequest reports a malformed or semantically invalid request.
func InvalidRequest(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

// InvalidRequestFields reports per-field validation failures.
func InvalidRequestFields(params map[string]string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: "validation failed", Params: params}
}

// NotFound reports a missing resource.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Duplicate reports a uniqueness conflict.
func Duplicate(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf(format, args...)}
}

// DuplicateFields reports a uniqueness conflict naming the offending fields.
func DuplicateFields(message string, params map[string]string) *Error {
	return &Error{Kind: KindDuplicate, Message: message, Params: params}
}

// Internal reports a programmer or infrastructure error. Only the message is
// ever surfaced to a client.
func Internal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the taxonomy kind from err, defaulting to KindInternal for
// anything unrecognized.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err is a taxonomy error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
