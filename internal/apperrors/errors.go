// Package apperrors defines the error taxonomy shared by stores, the access
// guard and the HTTP handlers.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies an error class.
type Code string

const (
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeForbidden         Code = "FORBIDDEN"
	CodeInvalidIdentifier Code = "INVALID_IDENTIFIER"
	CodeBadRequest        Code = "BAD_REQUEST"
	CodeInternal          Code = "INTERNAL"
)

// ServiceError carries a code, a client-facing message and the HTTP status it
// maps to. The wrapped Err is logged but never sent to the client.
type ServiceError struct {
	Code       Code
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Is matches any ServiceError with the same code, so callers can write
// errors.Is(err, apperrors.ErrUnauthorized).
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is comparisons.
var (
	ErrUnauthorized      = &ServiceError{Code: CodeUnauthorized}
	ErrForbidden         = &ServiceError{Code: CodeForbidden}
	ErrInvalidIdentifier = &ServiceError{Code: CodeInvalidIdentifier}
	ErrBadRequest        = &ServiceError{Code: CodeBadRequest}
)

func Unauthorized(err error) *ServiceError {
	return &ServiceError{
		Code:       CodeUnauthorized,
		Message:    "Unauthorized access",
		HTTPStatus: http.StatusUnauthorized,
		Err:        err,
	}
}

func Forbidden() *ServiceError {
	return &ServiceError{
		Code:       CodeForbidden,
		Message:    "Forbidden access",
		HTTPStatus: http.StatusForbidden,
	}
}

// InvalidIdentifier reports a store key that is not a well-formed id.
func InvalidIdentifier(id string, err error) *ServiceError {
	return &ServiceError{
		Code:       CodeInvalidIdentifier,
		Message:    fmt.Sprintf("invalid identifier %q", id),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func BadRequest(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       CodeBadRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func Internal(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// GetServiceError returns the first ServiceError in err's chain, or nil.
func GetServiceError(err error) *ServiceError {
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return nil
}
