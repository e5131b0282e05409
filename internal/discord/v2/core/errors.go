package core

import (
	"errors"
	"fmt"

	boterr "github.com/KirkDiggler/outgunned-bot/internal/errors"
)

// User facing messages shared by handlers and middleware
const (
	MessageInternal       = "An internal error occurred. Please try again later."
	MessageNotProcessable = "Sorry, I could not process that interaction."
	MessageNoLongerValid  = "This action is no longer available."
)

// HandlerError represents an error that occurred during handler execution
type HandlerError struct {
	// The underlying error
	Err error

	// User-friendly message to display
	UserMessage string

	// Whether this error should be shown to the user
	ShowToUser bool

	// HTTP-like status code for categorization
	Code int
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrorCodeBadRequest    = 400
	ErrorCodeForbidden     = 403
	ErrorCodeNotFound      = 404
	ErrorCodeConflict      = 409
	ErrorCodeUnprocessable = 422
	ErrorCodeInternal      = 500
)

// NewHandlerError creates a new handler error
func NewHandlerError(err error, userMessage string, code int) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: userMessage,
		ShowToUser:  true,
		Code:        code,
	}
}

// NewInternalError hides err behind a generic message
func NewInternalError(err error) *HandlerError {
	return NewHandlerError(err, MessageInternal, ErrorCodeInternal)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *HandlerError {
	return NewHandlerError(nil, fmt.Sprintf("%s not found", resource), ErrorCodeNotFound)
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *HandlerError {
	return NewHandlerError(nil, message, ErrorCodeForbidden)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *HandlerError {
	return NewHandlerError(nil, message, ErrorCodeBadRequest)
}

// FromError maps an error to a HandlerError. Coded errors from
// internal/errors pick the status and message; anything else is internal.
func FromError(err error) *HandlerError {
	if err == nil {
		return nil
	}

	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr
	}

	var coded *boterr.Error
	if !errors.As(err, &coded) {
		return NewInternalError(err)
	}

	switch coded.Code {
	case boterr.CodeInvalidArgument:
		return NewHandlerError(err, coded.Message, ErrorCodeBadRequest)
	case boterr.CodePermissionDenied:
		return NewHandlerError(err, coded.Message, ErrorCodeForbidden)
	case boterr.CodeNotFound:
		return NewHandlerError(err, coded.Message, ErrorCodeNotFound)
	case boterr.CodeIllegalTransition:
		return NewHandlerError(err, MessageNoLongerValid, ErrorCodeConflict)
	case boterr.CodeParse:
		return NewHandlerError(err, MessageNotProcessable, ErrorCodeUnprocessable)
	default:
		return NewInternalError(err)
	}
}
