// Package apperr carries the service error taxonomy. Every failure that
// crosses a handler boundary is one of these kinds; handlers map kinds to
// HTTP status codes 1:1 and never fold an error into a success envelope.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// KindUnexpected covers anything not classified below.
	KindUnexpected Kind = iota
	// KindValidation is malformed, missing, or out-of-range input.
	KindValidation
	// KindInvalidIdentifier is a composite complaint id failing codec rules.
	KindInvalidIdentifier
	// KindNotFound is a key resolving to zero rows.
	KindNotFound
	// KindIneligibleState is a business precondition unmet (workflow status).
	KindIneligibleState
	// KindMissingRemarks is the mandatory-remarks precondition unmet.
	KindMissingRemarks
	// KindBadContentType is a request body in an unrecognized media type.
	KindBadContentType
	// KindUpstream is a store, rendering-engine, or object-store failure.
	KindUpstream
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match two apperr values by kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf classifies any error; non-apperr errors are KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// PublicMessage is the message safe to return to a client. Upstream and
// unexpected failures are surfaced generically; their details stay in logs.
func PublicMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "Internal Server Error"
	}
	switch e.Kind {
	case KindUpstream, KindUnexpected:
		if e.Message != "" {
			return e.Message
		}
		return "Internal Server Error"
	default:
		return e.Message
	}
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInvalidIdentifier, KindMissingRemarks:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindIneligibleState:
		return http.StatusForbidden
	case KindBadContentType:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
