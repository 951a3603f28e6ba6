package collection

import (
	"reflect"
	"testing"
)

func TestCaseInsensitiveLookup(t *testing.T) {
	c := New(nil)
	c.Set("Foo", 1)

	if !c.Has("foo") {
		t.Error("expected Has(\"foo\") to be true")
	}
	if !c.Has("FOO") {
		t.Error("expected Has(\"FOO\") to be true")
	}
	if got := c.Get("FOO", nil); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestCaseSensitiveLookup(t *testing.T) {
	c := NewCaseSensitive(nil)
	c.Set("Foo", 1)

	if c.Has("foo") {
		t.Error("expected Has(\"foo\") to be false in case-sensitive mode")
	}
	if !c.Has("Foo") {
		t.Error("expected Has(\"Foo\") to be true")
	}
}

func TestSetPreservesOriginalKey(t *testing.T) {
	c := New(nil)
	c.Set("Database", "pg")
	c.Set("DATABASE", "mysql")

	if got := c.Get("database", nil); got != "mysql" {
		t.Errorf("expected overwrite, got %v", got)
	}
	if got := c.Keys(false); !reflect.DeepEqual(got, []string{"Database"}) {
		t.Errorf("expected original key preserved, got %v", got)
	}
	if got := c.Keys(true); !reflect.DeepEqual(got, []string{"database"}) {
		t.Errorf("expected normalized keys, got %v", got)
	}
	if c.Len() != 1 {
		t.Errorf("expected single entry, got %d", c.Len())
	}
}

func TestGetDefault(t *testing.T) {
	c := New(nil)
	if got := c.Get("missing", "fallback"); got != "fallback" {
		t.Errorf("expected default, got %v", got)
	}
	c.Set("present", nil)
	if got := c.Get("present", "fallback"); got != nil {
		t.Errorf("expected stored nil, got %v", got)
	}
}

func TestRemove(t *testing.T) {
	c := New(map[string]any{"a": 1, "b": 2, "c": 3})

	c.Remove("B")
	if c.Has("b") {
		t.Error("expected key removed")
	}
	if got := c.Keys(false); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("expected ordered keys without b, got %v", got)
	}

	// Removing an absent key is a no-op.
	c.Remove("missing")
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
}

func TestClear(t *testing.T) {
	c := New(map[string]any{"a": 1})
	c.Clear()
	if c.Len() != 0 || c.Has("a") {
		t.Error("expected empty collection after Clear")
	}
	c.Set("a", 2)
	if got := c.Get("a", nil); got != 2 {
		t.Errorf("expected collection usable after Clear, got %v", got)
	}
}

func TestInsertionOrder(t *testing.T) {
	c := New(nil)
	for _, k := range []string{"zulu", "alpha", "Mike"} {
		c.Set(k, k)
	}
	if got := c.Keys(false); !reflect.DeepEqual(got, []string{"zulu", "alpha", "Mike"}) {
		t.Errorf("expected insertion order, got %v", got)
	}

	var visited []string
	c.Each(func(key string, _ any) bool {
		visited = append(visited, key)
		return true
	})
	if !reflect.DeepEqual(visited, []string{"zulu", "alpha", "Mike"}) {
		t.Errorf("expected ordered iteration, got %v", visited)
	}
}

func TestConstructionIsDeterministic(t *testing.T) {
	data := map[string]any{"c": 3, "a": 1, "b": 2}
	for i := 0; i < 10; i++ {
		c := New(data)
		if got := c.Keys(false); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
			t.Fatalf("expected sorted initial keys, got %v", got)
		}
	}
}

func TestTypedGetters(t *testing.T) {
	c := New(map[string]any{
		"name":    "app",
		"port":    "8080",
		"ratio":   "0.5",
		"debug":   "true",
		"servers": []any{"a", "b"},
		"nested":  map[string]any{"Key": "value"},
	})

	if got := c.GetString("name", ""); got != "app" {
		t.Errorf("GetString = %q", got)
	}
	if got := c.GetInt("port", 0); got != 8080 {
		t.Errorf("GetInt = %d", got)
	}
	if got := c.GetInt64("port", 0); got != 8080 {
		t.Errorf("GetInt64 = %d", got)
	}
	if got := c.GetFloat("ratio", 0); got != 0.5 {
		t.Errorf("GetFloat = %v", got)
	}
	if got := c.GetBool("debug", false); !got {
		t.Error("GetBool expected true")
	}
	if got := c.GetStringSlice("servers"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("GetStringSlice = %v", got)
	}
	if got := c.GetInt("missing", 42); got != 42 {
		t.Errorf("GetInt default = %d", got)
	}

	nested := c.GetCollection("nested")
	if nested == nil {
		t.Fatal("expected nested collection")
	}
	if got := nested.GetString("key", ""); got != "value" {
		t.Errorf("nested GetString = %q", got)
	}
}

func TestValues(t *testing.T) {
	c := New(nil)
	c.Set("a", 1)
	c.Set("b", 2)
	if got := c.Values(); !reflect.DeepEqual(got, []any{1, 2}) {
		t.Errorf("Values = %v", got)
	}
}
