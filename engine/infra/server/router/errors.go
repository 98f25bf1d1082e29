package router

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrInternalCode       = "INTERNAL_ERROR"
	ErrBadRequestCode     = "BAD_REQUEST"
	ErrUnauthorizedCode   = "UNAUTHORIZED"
	ErrForbiddenCode      = "FORBIDDEN"
	ErrUpstreamFailedCode = "UPSTREAM_FAILED"
)

// Common sentinel errors
var (
	ErrInternal       = errors.New("internal server error")
	ErrInvalidAddress = errors.New("invalid address")
)

// Error represents errors that can occur during server operations
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewServerError creates a new server Error
func NewServerError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// StatusForCode maps an error code to its HTTP status.
func StatusForCode(code string) int {
	switch code {
	case ErrBadRequestCode:
		return http.StatusBadRequest
	case ErrUnauthorizedCode:
		return http.StatusUnauthorized
	case ErrForbiddenCode:
		return http.StatusForbidden
	case ErrUpstreamFailedCode:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
