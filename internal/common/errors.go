package common

import "net/http"

// ErrorKind is the closed set of user-facing failure classes the API can
// return. Anything outside this set is shaped as a 500 at the HTTP layer.
type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalidInput
)

// Error carries a kind and a message that is surfaced verbatim to the client.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Status maps an error kind to its HTTP status code. All kind-to-status
// decisions live here.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInvalidInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func NewBadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

func NewUnauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func NewForbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func NewNotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewConflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func NewInvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}
