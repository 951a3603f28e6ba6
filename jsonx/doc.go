// Package jsonx wraps JSON serialization for the appkit runtime.
//
// Every codec failure is converted into a structured ENCODE_FAILED or
// DECODE_FAILED error from the errors package, carrying the underlying
// codec message, so callers can branch on the condition rather than
// string-matching codec errors.
package jsonx
