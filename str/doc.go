// Package str provides string helpers for the appkit runtime: case
// transformation (camelize/uncamelize), templated random substitution,
// numeric suffix arithmetic, random token generation, and affix checks.
//
// All helpers are pure functions. Malformed arguments (an empty delimiter
// set, a multi-rune delimiter, unbalanced template delimiters) are reported
// as INVALID_ARGUMENT errors from the errors package.
package str
