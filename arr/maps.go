package arr

import "sort"

// Get returns the value for key, or def when the key is absent.
func Get[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Has reports whether key is present in m.
func Has[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// Keys returns the keys of a map.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the string keys of a map in sorted order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the values of a map.
func Values[K comparable, V any](m map[K]V) []V {
	vals := make([]V, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	return vals
}

// WhiteList returns the entries of m whose keys appear in keys.
func WhiteList[K comparable, V any](m map[K]V, keys []K) map[K]V {
	allowed := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}
	out := make(map[K]V)
	for k, v := range m {
		if _, ok := allowed[k]; ok {
			out[k] = v
		}
	}
	return out
}

// BlackList returns the entries of m whose keys do not appear in keys.
func BlackList[K comparable, V any](m map[K]V, keys []K) map[K]V {
	blocked := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		blocked[k] = struct{}{}
	}
	out := make(map[K]V)
	for k, v := range m {
		if _, ok := blocked[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// Split separates m into its keys and values. The two slices are index
// aligned with each other.
func Split[K comparable, V any](m map[K]V) ([]K, []V) {
	keys := make([]K, 0, len(m))
	vals := make([]V, 0, len(m))
	for k, v := range m {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return keys, vals
}

// FirstKey returns the smallest string key with its value (map order in Go
// is unspecified, so "first" is defined over the sorted key set).
func FirstKey[V any](m map[string]V) (string, V, bool) {
	keys := SortedKeys(m)
	if len(keys) == 0 {
		var zero V
		return "", zero, false
	}
	return keys[0], m[keys[0]], true
}

// LastKey returns the largest string key with its value.
func LastKey[V any](m map[string]V) (string, V, bool) {
	keys := SortedKeys(m)
	if len(keys) == 0 {
		var zero V
		return "", zero, false
	}
	k := keys[len(keys)-1]
	return k, m[k], true
}
