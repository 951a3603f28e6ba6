package arr

import (
	"reflect"
	"sort"
)

// First returns the first element, or the first element satisfying the
// optional predicate. ok is false when nothing matches.
func First[T any](items []T, predicate ...func(T) bool) (T, bool) {
	for _, item := range items {
		if len(predicate) == 0 || predicate[0](item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element, or the last element satisfying the
// optional predicate. ok is false when nothing matches.
func Last[T any](items []T, predicate ...func(T) bool) (T, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if len(predicate) == 0 || predicate[0](items[i]) {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// Group partitions items into buckets keyed by keyFn.
func Group[T any, K comparable](items []T, keyFn func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, item := range items {
		k := keyFn(item)
		out[k] = append(out[k], item)
	}
	return out
}

// Order returns a copy of items sorted ascending by the key produced by
// keyFn. Use OrderDesc for the reverse order. The sort is stable.
func Order[T any, K interface {
	~int | ~int64 | ~float64 | ~string
}](items []T, keyFn func(T) K) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return keyFn(out[i]) < keyFn(out[j])
	})
	return out
}

// OrderDesc returns a copy of items sorted descending by keyFn.
func OrderDesc[T any, K interface {
	~int | ~int64 | ~float64 | ~string
}](items []T, keyFn func(T) K) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return keyFn(out[j]) < keyFn(out[i])
	})
	return out
}

// Pluck projects one field out of every element.
func Pluck[T any, V any](items []T, accessor func(T) V) []V {
	out := make([]V, len(items))
	for i, item := range items {
		out[i] = accessor(item)
	}
	return out
}

// Chunk splits items into consecutive groups of at most size elements.
// A non-positive size returns nil.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return nil
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end:end])
	}
	return out
}

// SliceLeft returns the first n elements (all of them when n exceeds the
// length, none when n is non-positive).
func SliceLeft[T any](items []T, n int) []T {
	if n <= 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n:n]
}

// SliceRight returns the elements from position n onward.
func SliceRight[T any](items []T, n int) []T {
	if n <= 0 {
		return items
	}
	if n >= len(items) {
		return nil
	}
	return items[n:]
}

// IsUnique reports whether items contains no duplicates.
func IsUnique[T comparable](items []T) bool {
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return false
		}
		seen[item] = struct{}{}
	}
	return true
}

// ValidateAll reports whether every element satisfies the predicate.
func ValidateAll[T any](items []T, predicate func(T) bool) bool {
	for _, item := range items {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// ValidateAny reports whether at least one element satisfies the predicate.
func ValidateAny[T any](items []T, predicate func(T) bool) bool {
	for _, item := range items {
		if predicate(item) {
			return true
		}
	}
	return false
}

// Contains checks if a slice contains a value.
func Contains[T comparable](items []T, val T) bool {
	for _, item := range items {
		if item == val {
			return true
		}
	}
	return false
}

// Filter returns a new slice containing only elements that satisfy the predicate.
func Filter[T any](items []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range items {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms a slice using the given function.
func Map[T any, U any](items []T, transform func(T) U) []U {
	result := make([]U, len(items))
	for i, item := range items {
		result[i] = transform(item)
	}
	return result
}

// Unique returns a slice with duplicate values removed, keeping first
// occurrences in order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// FlattenDeep collapses nesting of any depth, preserving element order.
// Nested slices and arrays of any element type are expanded; everything
// else passes through unchanged.
func FlattenDeep(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		v := reflect.ValueOf(item)
		if item != nil && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) {
			nested := make([]any, v.Len())
			for i := 0; i < v.Len(); i++ {
				nested[i] = v.Index(i).Interface()
			}
			out = append(out, FlattenDeep(nested)...)
			continue
		}
		out = append(out, item)
	}
	return out
}

// Flatten collapses one level of nesting.
func Flatten[T any](items [][]T) []T {
	n := 0
	for _, group := range items {
		n += len(group)
	}
	out := make([]T, 0, n)
	for _, group := range items {
		out = append(out, group...)
	}
	return out
}
