// Package response defines the uniform result envelope every public
// operation returns to its caller. No store error escapes a handler raw;
// it is converted into a failed envelope instead.
package response

import "github.com/posuniversal/pos-admin-service/internal/apperr"

type Envelope[T any] struct {
	Status   int      `json:"status"`
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Data     T        `json:"data"`
	Warnings []string `json:"warnings,omitempty"`
}

func OK[T any](data T, message string) Envelope[T] {
	return Envelope[T]{Status: 200, Success: true, Message: message, Data: data}
}

func Created[T any](data T, message string) Envelope[T] {
	return Envelope[T]{Status: 201, Success: true, Message: message, Data: data}
}

// Fail converts any error into a failed envelope with a zero data value,
// using the apperr status when present and 500 otherwise.
func Fail[T any](err error) Envelope[T] {
	var zero T
	return Envelope[T]{
		Status:  apperr.StatusOf(err),
		Success: false,
		Message: apperr.MessageOf(err),
		Data:    zero,
	}
}
