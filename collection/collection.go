package collection

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Collection is an ordered, optionally case-insensitive string-keyed map.
//
// Entries are stored under their original key and iterated in insertion
// order. In case-insensitive mode an auxiliary index maps the lower-cased
// form of each key to the original key; the two structures are kept in
// lockstep on every mutation.
type Collection struct {
	insensitive bool
	keys        []string          // original keys, insertion order
	data        map[string]any    // original key -> value
	index       map[string]string // normalized key -> original key
}

// New creates a case-insensitive collection from the given entries.
// Initial keys are inserted in sorted order so construction from an
// unordered Go map is deterministic; later Set calls append in call order.
func New(data map[string]any) *Collection {
	return build(data, true)
}

// NewCaseSensitive creates a collection that matches keys exactly.
func NewCaseSensitive(data map[string]any) *Collection {
	return build(data, false)
}

func build(data map[string]any, insensitive bool) *Collection {
	c := &Collection{
		insensitive: insensitive,
		keys:        make([]string, 0, len(data)),
		data:        make(map[string]any, len(data)),
		index:       make(map[string]string, len(data)),
	}
	initial := make([]string, 0, len(data))
	for k := range data {
		initial = append(initial, k)
	}
	sort.Strings(initial)
	for _, k := range initial {
		c.Set(k, data[k])
	}
	return c
}

// Insensitive reports whether key lookups ignore case.
func (c *Collection) Insensitive() bool { return c.insensitive }

func (c *Collection) normalize(key string) string {
	if c.insensitive {
		return strings.ToLower(key)
	}
	return key
}

// Set inserts or overwrites the value for key. When an entry already exists
// under a case-variant of key, the value is stored under the key used at
// first insertion; the original key and its position are preserved.
func (c *Collection) Set(key string, value any) {
	normalized := c.normalize(key)
	if original, ok := c.index[normalized]; ok {
		c.data[original] = value
		return
	}
	c.index[normalized] = key
	c.data[key] = value
	c.keys = append(c.keys, key)
}

// Get returns the value stored under key, or def when the key is absent.
func (c *Collection) Get(key string, def any) any {
	if original, ok := c.index[c.normalize(key)]; ok {
		return c.data[original]
	}
	return def
}

// Has reports whether key is present.
func (c *Collection) Has(key string) bool {
	_, ok := c.index[c.normalize(key)]
	return ok
}

// Remove deletes the entry for key from both the backing store and the
// index. Removing an absent key is a no-op.
func (c *Collection) Remove(key string) {
	normalized := c.normalize(key)
	original, ok := c.index[normalized]
	if !ok {
		return
	}
	delete(c.index, normalized)
	delete(c.data, original)
	for i, k := range c.keys {
		if k == original {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Clear removes all entries.
func (c *Collection) Clear() {
	c.keys = c.keys[:0]
	c.data = make(map[string]any)
	c.index = make(map[string]string)
}

// Len returns the number of entries.
func (c *Collection) Len() int { return len(c.keys) }

// Keys returns the keys in insertion order. With insensitive=true the
// normalized (lower-cased) forms are returned instead of the originals.
func (c *Collection) Keys(insensitive bool) []string {
	out := make([]string, len(c.keys))
	for i, k := range c.keys {
		if insensitive {
			out[i] = strings.ToLower(k)
		} else {
			out[i] = k
		}
	}
	return out
}

// Values returns the values in insertion order.
func (c *Collection) Values() []any {
	out := make([]any, len(c.keys))
	for i, k := range c.keys {
		out[i] = c.data[k]
	}
	return out
}

// Each calls fn for every entry in insertion order until fn returns false.
func (c *Collection) Each(fn func(key string, value any) bool) {
	for _, k := range c.keys {
		if !fn(k, c.data[k]) {
			return
		}
	}
}

// ToMap exports the entries as a plain map keyed by original key.
func (c *Collection) ToMap() map[string]any {
	out := make(map[string]any, len(c.keys))
	for _, k := range c.keys {
		out[k] = c.data[k]
	}
	return out
}

// --- Typed getters ---
//
// The getters coerce stored values to the enumerated target types used by
// configuration consumers. Coercion follows spf13/cast semantics; absent
// keys return the given default.

// GetString returns the value for key coerced to string.
func (c *Collection) GetString(key string, def string) string {
	if v := c.Get(key, nil); v != nil {
		return cast.ToString(v)
	}
	return def
}

// GetInt returns the value for key coerced to int.
func (c *Collection) GetInt(key string, def int) int {
	if v := c.Get(key, nil); v != nil {
		return cast.ToInt(v)
	}
	return def
}

// GetInt64 returns the value for key coerced to int64.
func (c *Collection) GetInt64(key string, def int64) int64 {
	if v := c.Get(key, nil); v != nil {
		return cast.ToInt64(v)
	}
	return def
}

// GetFloat returns the value for key coerced to float64.
func (c *Collection) GetFloat(key string, def float64) float64 {
	if v := c.Get(key, nil); v != nil {
		return cast.ToFloat64(v)
	}
	return def
}

// GetBool returns the value for key coerced to bool.
func (c *Collection) GetBool(key string, def bool) bool {
	if v := c.Get(key, nil); v != nil {
		return cast.ToBool(v)
	}
	return def
}

// GetStringSlice returns the value for key coerced to []string.
func (c *Collection) GetStringSlice(key string) []string {
	if v := c.Get(key, nil); v != nil {
		return cast.ToStringSlice(v)
	}
	return nil
}

// GetStringMap returns the value for key coerced to map[string]any.
func (c *Collection) GetStringMap(key string) map[string]any {
	if v := c.Get(key, nil); v != nil {
		return cast.ToStringMap(v)
	}
	return nil
}

// GetCollection returns the map value for key wrapped in a nested Collection
// with the same case-sensitivity mode, or nil when absent or not a map.
func (c *Collection) GetCollection(key string) *Collection {
	m := c.GetStringMap(key)
	if m == nil {
		return nil
	}
	if c.insensitive {
		return New(m)
	}
	return NewCaseSensitive(m)
}
