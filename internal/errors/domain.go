// Package errors defines the domain error type shared by services and handlers.
package errors

import (
	"errors"
	"net/http"
)

// DomainError is an error a client can act on. Status is the HTTP status the
// handlers answer with.
type DomainError struct {
	Code    string
	Message string
	Status  int
}

func (e *DomainError) Error() string {
	return e.Message
}

// New creates a domain error.
func New(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, Status: status}
}

// HTTPStatus returns the status for err, 500 when it is not a domain error.
func HTTPStatus(err error) int {
	var de *DomainError
	if errors.As(err, &de) && de.Status != 0 {
		return de.Status
	}
	return http.StatusInternalServerError
}

// Code returns the domain code for err, or INTERNAL.
func Code(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return "INTERNAL"
}
