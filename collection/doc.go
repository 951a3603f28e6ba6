// Package collection provides an ordered, optionally case-insensitive
// string-keyed map used throughout the appkit runtime for configuration
// and data passing.
//
// A Collection preserves insertion order, supports case-insensitive key
// lookup through a normalized-key index, coerces values through typed
// getters, and exports to JSON and a flat binary form that restores plain
// data only.
package collection
