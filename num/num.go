// Package num provides small numeric helpers for the appkit runtime.
package num

import "cmp"

// Between reports whether value lies in the inclusive range [from, to].
func Between[T cmp.Ordered](value, from, to T) bool {
	return value >= from && value <= to
}

// Clamp limits value to the inclusive range [from, to].
func Clamp[T cmp.Ordered](value, from, to T) T {
	if value < from {
		return from
	}
	if value > to {
		return to
	}
	return value
}

// Sign returns -1, 0, or 1 for a negative, zero, or positive value.
func Sign[T ~int | ~int64 | ~float64](value T) int {
	switch {
	case value < 0:
		return -1
	case value > 0:
		return 1
	default:
		return 0
	}
}
