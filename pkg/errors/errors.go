// Package errors provides structured error handling for netloc with
// error codes, wrapping, and detail attachment.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies an error for programmatic handling.
type ErrorCode string

const (
	// ErrUnknown is the zero value, used when no code was assigned.
	ErrUnknown ErrorCode = "UNKNOWN"

	// ErrInternal marks a bug or broken invariant inside netloc itself.
	ErrInternal ErrorCode = "INTERNAL"

	// ErrInvalidInput marks input that is missing or unusable, such as an
	// empty UNC path or a blank label.
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrMalformedUNC marks a path that does not follow the
	// \\server\share naming convention.
	ErrMalformedUNC ErrorCode = "MALFORMED_UNC"

	// ErrNotFound marks an operation against a shortcut entry that does
	// not exist on disk.
	ErrNotFound ErrorCode = "NOT_FOUND"

	// ErrIOFailure marks a filesystem operation that failed.
	ErrIOFailure ErrorCode = "IO_FAILURE"

	// ErrLinkParse marks a shell link file that could not be decoded.
	ErrLinkParse ErrorCode = "LINK_PARSE"

	// ErrConfigLoad marks a configuration source that could not be read.
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// ErrConfigParse marks configuration content that could not be parsed.
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// ErrUnsupported marks an operation not available on this platform.
	ErrUnsupported ErrorCode = "UNSUPPORTED"
)

// Error is the structured error type used throughout netloc.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code. This lets
// callers match errors with errors.Is against a sentinel code:
//
//	errors.Is(err, &Error{Code: ErrNotFound})
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithDetail attaches a key/value pair to the error and returns it for
// chaining.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates an error with a code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a code and formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a code and message. A nil err
// returns nil so call sites can wrap unconditionally.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// Wrapf wraps an existing error with a code and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}

// IsCode reports whether err or any error in its chain carries the given
// code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}

// CodeOf extracts the error code from err, or ErrUnknown when err does
// not carry one.
func CodeOf(err error) ErrorCode {
	var e *Error
	if !errors.As(err, &e) {
		return ErrUnknown
	}
	return e.Code
}
