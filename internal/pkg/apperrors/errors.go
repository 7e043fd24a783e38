package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yigit/registrar/internal/pkg/validation"
)

// Common errors
var (
	// Resource errors
	ErrNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed  = errors.New("validation failed")
	ErrDuplicateOffering = errors.New("course offering already exists")

	// Delete guards
	ErrReferentialIntegrity = errors.New("resource is referenced by other resources")
)

// Entity errors. Each *NotFound matches ErrNotFound and each *InUse matches
// ErrReferentialIntegrity through errors.Is.
var (
	ErrCourseTypeNotFound   = NewCustomError(ErrNotFound, "course type not found")
	ErrCourseNotFound       = NewCustomError(ErrNotFound, "course not found")
	ErrOfferingNotFound     = NewCustomError(ErrNotFound, "course offering not found")
	ErrRegistrationNotFound = NewCustomError(ErrNotFound, "registration not found")

	ErrCourseTypeInUse = NewCustomError(ErrReferentialIntegrity, "Cannot delete course type that is used in course offerings")
	ErrCourseInUse     = NewCustomError(ErrReferentialIntegrity, "Cannot delete course that is used in course offerings")
)

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// ValidationError is returned when a form fails validation. Fields holds one
// entry per offending field.
type ValidationError struct {
	Fields validation.FieldErrors
}

// NewValidationError wraps a non-empty field error mapping
func NewValidationError(fields validation.FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements error interface
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k].Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

// Is matches ErrValidationFailed, and ErrDuplicateOffering when the duplicate
// check failed.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrValidationFailed:
		return true
	case ErrDuplicateOffering:
		return e.Fields.Has(validation.KindDuplicateOffering)
	}
	return false
}
