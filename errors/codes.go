package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Container errors
const (
	// ErrCodeServiceNotFound indicates a service name is not registered in the container.
	ErrCodeServiceNotFound ErrorCode = "SERVICE_NOT_FOUND"
	// ErrCodeResolutionFailed indicates a registered definition could not produce an instance.
	ErrCodeResolutionFailed ErrorCode = "RESOLUTION_FAILED"
)

// Argument errors
const (
	// ErrCodeInvalidArgument indicates an argument is malformed.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeMissingArgument indicates a required argument is missing.
	ErrCodeMissingArgument ErrorCode = "MISSING_ARGUMENT"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
)

// Serialization errors
const (
	// ErrCodeEncodeFailed indicates a value could not be encoded.
	ErrCodeEncodeFailed ErrorCode = "ENCODE_FAILED"
	// ErrCodeDecodeFailed indicates input could not be decoded.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
)

// Internal errors
const (
	// ErrCodeConfigError indicates configuration could not be loaded or is invalid.
	ErrCodeConfigError ErrorCode = "CONFIG_ERROR"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
