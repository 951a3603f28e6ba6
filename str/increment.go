package str

import (
	"strconv"
	"strings"
)

// Increment bumps a trailing numeric suffix separated by separator, adding
// the suffix when absent: Increment("a", "_") is "a_1", Increment("a_1", "_")
// is "a_2".
func Increment(text, separator string) string {
	if separator == "" {
		separator = DefaultDelimiter
	}
	base, n, ok := splitSuffix(text, separator)
	if !ok {
		return text + separator + "1"
	}
	return base + separator + strconv.Itoa(n+1)
}

// Decrement lowers a trailing numeric suffix separated by separator. A
// suffix reaching zero or below is dropped entirely; an absent suffix is
// treated as 1, so Decrement("a", "_") is "a".
func Decrement(text, separator string) string {
	if separator == "" {
		separator = DefaultDelimiter
	}
	base, n, ok := splitSuffix(text, separator)
	if !ok {
		base, n = text, 1
	}
	if n-1 <= 0 {
		return base
	}
	return base + separator + strconv.Itoa(n-1)
}

// splitSuffix splits text on its final separator and parses the tail as a
// number. ok is false when there is no separator or the tail is not numeric.
func splitSuffix(text, separator string) (base string, n int, ok bool) {
	idx := strings.LastIndex(text, separator)
	if idx < 0 {
		return text, 0, false
	}
	n, err := strconv.Atoi(text[idx+len(separator):])
	if err != nil {
		return text, 0, false
	}
	return text[:idx], n, true
}
