// Package errors provides unified error handling across the kickstart
// engine.
//
// All validation-class findings are collected into ValidationResults
// and returned, never raised mid-pipeline; the AppError types here
// cover the conditions that do surface as Go errors: unknown catalog
// identities, archive failures, and internal faults. Interface layers
// (CLI, HTTP) format AppErrors through the handlers in handlers.go.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Selection errors
	ErrCodeUnknownTemplate ErrorCode = "UNKNOWN_TEMPLATE"
	ErrCodeInvalidInput    ErrorCode = "INVALID_INPUT"

	// Validation findings (carried in Issue messages; exposed here
	// for callers that promote a blocking finding to an error)
	ErrCodeFrontmatterMissing ErrorCode = "FRONTMATTER_MISSING"
	ErrCodeTypeMismatch       ErrorCode = "TYPE_MISMATCH"
	ErrCodeUnknownField       ErrorCode = "UNKNOWN_FIELD"

	// Resource errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Packaging errors
	ErrCodeArchiveFailure ErrorCode = "ARCHIVE_FAILURE"

	// Generation errors
	ErrCodeGeneratorUnavailable ErrorCode = "GENERATOR_UNAVAILABLE"
	ErrCodeGenerationFailed     ErrorCode = "GENERATION_FAILED"

	// System errors
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityInfo     ErrorSeverity = "info"
	SeverityWarning  ErrorSeverity = "warning"
	SeverityError    ErrorSeverity = "error"
	SeverityCritical ErrorSeverity = "critical"
)

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "validation"
	CategorySelection  ErrorCategory = "selection"
	CategoryPackaging  ErrorCategory = "packaging"
	CategoryGeneration ErrorCategory = "generation"
	CategorySystem     ErrorCategory = "system"
)

// AppError represents a standardized application error
type AppError struct {
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   string        `json:"details,omitempty"`
	Severity  ErrorSeverity `json:"severity"`
	Category  ErrorCategory `json:"category"`
	Cause     error         `json:"-"`
	Timestamp time.Time     `json:"timestamp"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string) *AppError {
	category, severity := categorizeError(code)
	return &AppError{
		Code:      code,
		Message:   message,
		Severity:  severity,
		Category:  category,
		Timestamp: time.Now(),
	}
}

// Wrap wraps an existing error with application error context
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := NewAppError(code, message)
	appErr.Cause = err
	return appErr
}

// categorizeError determines the category and severity based on error code
func categorizeError(code ErrorCode) (ErrorCategory, ErrorSeverity) {
	switch code {
	case ErrCodeUnknownTemplate, ErrCodeNotFound:
		return CategorySelection, SeverityInfo
	case ErrCodeInvalidInput:
		return CategorySelection, SeverityWarning

	case ErrCodeFrontmatterMissing, ErrCodeTypeMismatch:
		return CategoryValidation, SeverityWarning
	case ErrCodeUnknownField:
		return CategoryValidation, SeverityInfo

	case ErrCodeArchiveFailure:
		return CategoryPackaging, SeverityError

	case ErrCodeGeneratorUnavailable:
		return CategoryGeneration, SeverityInfo
	case ErrCodeGenerationFailed:
		return CategoryGeneration, SeverityError

	case ErrCodeInternalError:
		return CategorySystem, SeverityCritical

	default:
		return CategorySystem, SeverityError
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts an AppError from an error, or converts it to one
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, ErrCodeInternalError, "Internal error occurred")
}

// Common error constructors for frequently used errors

func UnknownTemplateError(path string) *AppError {
	return NewAppError(ErrCodeUnknownTemplate, fmt.Sprintf("unknown template: %s", path))
}

func NotFoundError(resource string) *AppError {
	return NewAppError(ErrCodeNotFound, fmt.Sprintf("%s not found", resource))
}

func ArchiveError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeArchiveFailure, fmt.Sprintf("archive operation failed: %s", operation))
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternalError, message)
}

func InvalidInputError(message string) *AppError {
	return NewAppError(ErrCodeInvalidInput, message)
}

func GeneratorUnavailableError(reason string) *AppError {
	return NewAppError(ErrCodeGeneratorUnavailable, fmt.Sprintf("generator unavailable: %s", reason))
}
