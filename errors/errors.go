package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// AsAppError extracts an *AppError from err's chain, or nil.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	if appErr := AsAppError(err); appErr != nil {
		return appErr.Code == code
	}
	return false
}

// --- Common Error Constructors ---

// ServiceNotFound creates a new AppError for an unregistered container service.
func ServiceNotFound(name string) *AppError {
	return &AppError{
		Code: ErrCodeServiceNotFound, Message: fmt.Sprintf("Service '%s' was not found in the dependency injection container.", name),
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"service": name},
	}
}

// IsServiceNotFound reports whether err is a service-not-found condition.
func IsServiceNotFound(err error) bool {
	return HasCode(err, ErrCodeServiceNotFound)
}

// ResolutionFailed creates a new AppError for a definition that failed to resolve.
func ResolutionFailed(name string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeResolutionFailed, Message: fmt.Sprintf("Service '%s' could not be resolved.", name),
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
		Details: map[string]any{"service": name},
	}
}

// InvalidArgument creates a new AppError for a malformed argument.
func InvalidArgument(argument, reason string) *AppError {
	details := make(map[string]any)
	if argument != "" {
		details["argument"] = argument
	}
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Invalid argument: %s", reason),
		HTTPStatus: http.StatusBadRequest, Details: details,
	}
}

// Validation creates a new AppError for validation failures.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingArgument creates a new AppError for a missing required argument.
func MissingArgument(argument string) *AppError {
	return &AppError{
		Code: ErrCodeMissingArgument, Message: fmt.Sprintf("Missing required argument: %s", argument),
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"argument": argument},
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound, Details: details,
	}
}

// AlreadyExists creates a new AppError for a resource that already exists.
func AlreadyExists(resource string) *AppError {
	return &AppError{
		Code: ErrCodeAlreadyExists, Message: fmt.Sprintf("A %s with these details already exists.", resource),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"resource": resource},
	}
}

// EncodeFailed creates a new AppError carrying the codec's encode failure.
func EncodeFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeEncodeFailed, Message: fmt.Sprintf("Failed to encode value: %v", cause),
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// DecodeFailed creates a new AppError carrying the codec's decode failure.
func DecodeFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("Failed to decode input: %v", cause),
		HTTPStatus: http.StatusBadRequest, Cause: cause,
	}
}

// ConfigError creates a new AppError for configuration loading failures.
func ConfigError(reason string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConfigError, Message: reason,
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}
