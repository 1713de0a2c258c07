// Package apperr carries the status-coded error taxonomy shared by every
// write path: 400 validation, 404 not found, 409 conflict, 500 store
// failure. The codes classify failures internally; they are not HTTP.
package apperr

import "errors"

type Error struct {
	Status  int
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

func Invalid(msg string) *Error {
	return &Error{Status: 400, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: 404, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: 409, Message: msg}
}

// Store wraps an unexpected record-store error. The underlying message is
// kept so callers see what the storage engine reported.
func Store(msg string, err error) *Error {
	return &Error{Status: 500, Message: msg, Err: err}
}

// StatusOf classifies any error; non-apperr errors count as store failures.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 500
}

// MessageOf returns the message carried by err, or a generic fallback when
// the error has no text at all.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "operation failed"
}
