// Package errors provides unified error handling for the appkit runtime.
// It implements structured error types with machine-readable codes, HTTP
// status hints, and cause wrapping.
package errors
