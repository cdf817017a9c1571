package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryUsage    = "usage"
	categoryFatalIO  = "fatal_io"
	categoryInternal = "internal"
)

// Exit codes for the CLI. Usage problems and runtime failures are kept
// distinct so wrapping scripts can tell them apart.
const (
	ExitOK    = 0
	ExitFatal = 1
	ExitUsage = 2
)

const (
	errorCodeInternalUndefined = "SYS_9001"
)

// NewUsageError creates a new ServiceError for a bad command-line
// argument. The message is shown to the user alongside the usage text.
func NewUsageError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryUsage,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitUsage,
	}
}

// NewFatalIOError creates a new ServiceError for an unrecoverable I/O
// failure that aborts the run before any report is produced.
func NewFatalIOError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryFatalIO,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitFatal,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: ExitFatal,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

// AsServiceError extracts a ServiceError from the error chain.
// It returns (*ServiceError, true) if err wraps a ServiceError, otherwise (nil, false).
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
	Category string // usage, fatal_io or internal
	Code     string // service-owned stable code (e.g. REG_9000)
	Message  string // user-visible, human-readable
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit code for this failure
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsUsageError() bool {
	return e.Category == categoryUsage
}
