package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Resource errors
var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrFileNotFound        = errors.New("file not found")

	// A metadata row exists but the bytes on disk are gone. Kept distinct
	// from ErrFileNotFound so the two failure modes stay observable.
	ErrPhysicalFileMissing = errors.New("physical file missing from storage")
)

// Conflict errors
var (
	ErrAppointmentConflict   = errors.New("appointment time slot conflict")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every failing rule for a request, so callers see
// the full list rather than only the first violation.
type ValidationErrors struct {
	Violations []FieldError
}

// NewValidationErrors creates an empty violation list.
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{}
}

// Add records a failed rule.
func (v *ValidationErrors) Add(field, message string) *ValidationErrors {
	v.Violations = append(v.Violations, FieldError{Field: field, Message: message})
	return v
}

// HasErrors reports whether any rule failed.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Violations) > 0
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v.Violations))
	for _, fe := range v.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is(err, ErrValidationFailed) match.
func (v *ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}

// CustomError carries an underlying sentinel plus a caller-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError wraps a not-found sentinel with a message naming the
// missing resource, e.g. "doctor 42 does not exist".
func NewNotFoundError(sentinel error, format string, args ...interface{}) error {
	return &CustomError{
		Err:     sentinel,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewConflictError wraps ErrAppointmentConflict with a human-readable reason.
func NewConflictError(format string, args ...interface{}) error {
	return &CustomError{
		Err:     ErrAppointmentConflict,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewForbiddenError wraps ErrPermissionDenied with a message.
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}
