package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryFormat          = "format"
	categoryAccess          = "access"
	categorySchema          = "schema"
	categoryParse           = "parse"
	categoryIO              = "io"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

const (
	ExitCodeFailure = 1
	ExitCodeUsage   = 2
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
// It covers bad command line invocations and configuration.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeUsage,
	}
}

// NewFormatError creates a new ServiceError with category format.
func NewFormatError(code, message string, cause error) *ServiceError {
	return newFailure(categoryFormat, code, message, cause)
}

// NewAccessError creates a new ServiceError with category access.
func NewAccessError(code, message string, cause error) *ServiceError {
	return newFailure(categoryAccess, code, message, cause)
}

// NewSchemaError creates a new ServiceError with category schema.
func NewSchemaError(code, message string, cause error) *ServiceError {
	return newFailure(categorySchema, code, message, cause)
}

// NewParseError creates a new ServiceError with category parse.
func NewParseError(code, message string, cause error) *ServiceError {
	return newFailure(categoryParse, code, message, cause)
}

// NewIOError creates a new ServiceError with category io.
func NewIOError(code, message string, cause error) *ServiceError {
	return newFailure(categoryIO, code, message, cause)
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return newFailure(categoryInternal, code, "internal error", cause)
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func newFailure(category, code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: category,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeFailure,
	}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // invalid_argument, format, access, schema, parse, io or internal
	Code     string // service-owned stable code (e.g. ING_1000)
	Message  string // human-readable
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit code
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// Describe returns the message followed by the cause, if any.
func (e *ServiceError) Describe() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsInvalidArgument() bool {
	return e.Category == categoryInvalidArgument
}
