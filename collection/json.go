package collection

import (
	"bytes"

	"github.com/appkit-go/appkit/jsonx"
)

// ToJSON exports the entries as a JSON object. Keys appear in insertion
// order; nested Collection values are expanded recursively.
func (c *Collection) ToJSON() ([]byte, error) {
	return c.MarshalJSON()
}

// MarshalJSON implements json.Marshaler preserving insertion order.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := jsonx.Encode(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := jsonx.Encode(c.data[k])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. The collection keeps its
// case-sensitivity mode; existing entries are replaced.
func (c *Collection) UnmarshalJSON(data []byte) error {
	m, err := jsonx.DecodeObject(data)
	if err != nil {
		return err
	}
	*c = *build(m, c.insensitive)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The representation is
// a flat encoding of the key/value map restricted to plain scalar, slice,
// and map content.
func (c *Collection) MarshalBinary() ([]byte, error) {
	return jsonx.Encode(map[string]any{
		"insensitive": c.insensitive,
		"data":        c.ToMap(),
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Values are restored
// as plain scalars, slices, and maps only; no arbitrary types are
// reconstructed.
func (c *Collection) UnmarshalBinary(data []byte) error {
	var envelope struct {
		Insensitive bool           `json:"insensitive"`
		Data        map[string]any `json:"data"`
	}
	if err := jsonx.Decode(data, &envelope); err != nil {
		return err
	}
	*c = *build(envelope.Data, envelope.Insensitive)
	return nil
}
