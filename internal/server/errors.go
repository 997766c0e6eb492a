// Package server provides the HTTP REST API for the interview evaluator.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-evaluator/internal/evaluation"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// Error categories surfaced in evaluation error bodies.
const (
	codeUnauthenticated  = "unauthenticated"
	codeNotFound         = "not-found"
	codePermissionDenied = "permission-denied"
	codeInternal         = "internal"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *evaluation.DocumentNotFoundError
	var denied *evaluation.PermissionDeniedError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &denied):
		return http.StatusForbidden
	default:
	}

	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// errorCode returns the error category for an evaluation failure.
// Anything that is not a missing document or an ownership violation is
// an internal failure, including an empty question list.
func errorCode(err error) string {
	var notFound *evaluation.DocumentNotFoundError
	var denied *evaluation.PermissionDeniedError

	switch {
	case errors.As(err, &notFound):
		return codeNotFound
	case errors.As(err, &denied):
		return codePermissionDenied
	default:
		return codeInternal
	}
}
