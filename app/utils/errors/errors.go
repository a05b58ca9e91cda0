package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Provisioning errors
	ErrCodeDuplicateAccount          ErrorCode = "DUPLICATE_ACCOUNT"
	ErrCodeIdentityCreationFailed    ErrorCode = "IDENTITY_CREATION_FAILED"
	ErrCodeInstitutionCreationFailed ErrorCode = "INSTITUTION_CREATION_FAILED"
	ErrCodeProfileCreationFailed     ErrorCode = "PROFILE_CREATION_FAILED"
	ErrCodeWeakCredential            ErrorCode = "WEAK_CREDENTIAL"

	// Subscription errors
	ErrCodeIllegalTransition ErrorCode = "ILLEGAL_TRANSITION"
	ErrCodeActivationFailed  ErrorCode = "ACTIVATION_FAILED"

	// Lookup errors
	ErrCodeInstitutionNotFound ErrorCode = "INSTITUTION_NOT_FOUND"
	ErrCodeProfileNotFound     ErrorCode = "PROFILE_NOT_FOUND"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"

	// System errors
	ErrCodeInternalError      ErrorCode = "INTERNAL_ERROR"
	ErrCodeDatabaseError      ErrorCode = "DATABASE_ERROR"
	ErrCodeIdentityStoreError ErrorCode = "IDENTITY_STORE_ERROR"
	ErrCodeConfigError        ErrorCode = "CONFIG_ERROR"

	// Rate limiting
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// Generic errors
	ErrCodeBadRequest         ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeConflict           ErrorCode = "CONFLICT"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// AppError represents an application error with additional context.
// Errors crossing the service boundary are always AppErrors with a stable
// code; raw store error strings never leak to callers.
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Cause      error                  `json:"-"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause to the error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// Wrapf wraps an existing error with AppError and formatted message
func Wrapf(code ErrorCode, cause error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternalError
}

// GetErrorMessage extracts the external-facing message from an error.
// Non-AppError causes are hidden behind a generic message so raw store
// errors never leak out.
func GetErrorMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Message
	}
	return "internal server error"
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeDuplicateAccount, ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeInstitutionNotFound, ErrCodeProfileNotFound, ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeValidationFailed, ErrCodeInvalidInput, ErrCodeWeakCredential, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeIllegalTransition:
		return http.StatusUnprocessableEntity
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeServiceUnavailable, ErrCodeIdentityStoreError, ErrCodeActivationFailed,
		ErrCodeIdentityCreationFailed, ErrCodeInstitutionCreationFailed, ErrCodeProfileCreationFailed:
		return http.StatusServiceUnavailable
	case ErrCodeInternalError, ErrCodeDatabaseError, ErrCodeConfigError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Predefined common errors

// Provisioning errors
var (
	ErrDuplicateAccount          = New(ErrCodeDuplicateAccount, "account already exists")
	ErrIdentityCreationFailed    = New(ErrCodeIdentityCreationFailed, "identity creation failed")
	ErrInstitutionCreationFailed = New(ErrCodeInstitutionCreationFailed, "institution creation failed")
	ErrProfileCreationFailed     = New(ErrCodeProfileCreationFailed, "profile creation failed")
	ErrWeakCredential            = New(ErrCodeWeakCredential, "credential does not meet strength requirements")
)

// Subscription errors
var (
	ErrIllegalTransition = New(ErrCodeIllegalTransition, "illegal subscription transition")
	ErrActivationFailed  = New(ErrCodeActivationFailed, "subscription activation failed")
)

// Lookup errors
var (
	ErrInstitutionNotFound = New(ErrCodeInstitutionNotFound, "institution not found")
	ErrProfileNotFound     = New(ErrCodeProfileNotFound, "profile not found")
)

// System errors
var (
	ErrInternalError      = New(ErrCodeInternalError, "internal server error")
	ErrDatabaseError      = New(ErrCodeDatabaseError, "database error")
	ErrIdentityStoreError = New(ErrCodeIdentityStoreError, "identity store error")
	ErrServiceUnavailable = New(ErrCodeServiceUnavailable, "service temporarily unavailable")
	ErrRateLimitExceeded  = New(ErrCodeRateLimitExceeded, "rate limit exceeded")
)

// Validation errors
var (
	ErrValidationFailed = New(ErrCodeValidationFailed, "validation failed")
	ErrInvalidInput     = New(ErrCodeInvalidInput, "invalid input")
)

// Helper functions for creating contextual errors

// NewValidationError creates a validation error with details
func NewValidationError(details string) *AppError {
	return New(ErrCodeValidationFailed, "validation failed").WithDetails(details)
}

// NewInternalError creates an internal error with cause
func NewInternalError(cause error) *AppError {
	return Wrap(ErrCodeInternalError, "internal server error", cause)
}

// NewDatabaseError creates a database error with cause
func NewDatabaseError(cause error) *AppError {
	return Wrap(ErrCodeDatabaseError, "database operation failed", cause)
}

// NewIdentityStoreError creates an identity store error with cause
func NewIdentityStoreError(cause error) *AppError {
	return Wrap(ErrCodeIdentityStoreError, "identity store error", cause)
}
