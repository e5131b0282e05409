// Package errors provides coded errors shared by the bot's services and handlers.
package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can react without string matching
type Code string

const (
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller supplied a bad value (dice count, dice set name)
	CodeInvalidArgument Code = "invalid_argument"

	CodeNotFound Code = "not_found"

	// CodePermissionDenied indicates the actor may not act on the target (someone else's roll)
	CodePermissionDenied Code = "permission_denied"

	CodeInternal Code = "internal"

	// CodeIllegalTransition indicates a roll action was attempted whose right is gone
	CodeIllegalTransition Code = "illegal_transition"

	// CodeParse indicates rendered content or an identifier did not match the expected format
	CodeParse Code = "parse"

	// CodeDelivery indicates Discord did not accept a rendered response
	CodeDelivery Code = "delivery"
)

// Error is an application error with a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a key/value pair for logging
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap adds context to err, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var coded *Error
	if errors.As(err, &coded) {
		return &Error{
			Code:    coded.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(coded.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and forces the code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func Internal(message string) *Error {
	return New(CodeInternal, message)
}

func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// PermissionDenied is returned when an actor presses a button on a roll they do not own
func PermissionDenied(message string) *Error {
	return New(CodePermissionDenied, message)
}

// IllegalTransitionf is returned by the roller when a guard rejects an action
func IllegalTransitionf(format string, args ...any) *Error {
	return Newf(CodeIllegalTransition, format, args...)
}

// Parsef is returned when rendered content or a custom ID does not match the roll format
func Parsef(format string, args ...any) *Error {
	return Newf(CodeParse, format, args...)
}

// Delivery wraps a failure to send or edit a Discord response
func Delivery(err error, message string) *Error {
	return WrapWithCode(err, CodeDelivery, message)
}

// Is reports whether the outermost *Error in err carries code
func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

func IsPermissionDenied(err error) bool {
	return Is(err, CodePermissionDenied)
}

func IsIllegalTransition(err error) bool {
	return Is(err, CodeIllegalTransition)
}

func IsParse(err error) bool {
	return Is(err, CodeParse)
}

func IsDelivery(err error) bool {
	return Is(err, CodeDelivery)
}

// GetCode returns the code of the outermost *Error, or CodeUnknown
func GetCode(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of the outermost *Error
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
