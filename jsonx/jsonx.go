package jsonx

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/appkit-go/appkit/errors"
)

// json is the shared codec instance, configured for standard-library
// compatible behavior (map key sorting, standard float formatting).
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode serializes v to JSON. Failures are reported as ENCODE_FAILED
// errors carrying the codec's message.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.EncodeFailed(err)
	}
	return data, nil
}

// EncodeIndent serializes v to indented JSON.
func EncodeIndent(v any, prefix, indent string) ([]byte, error) {
	data, err := json.MarshalIndent(v, prefix, indent)
	if err != nil {
		return nil, errors.EncodeFailed(err)
	}
	return data, nil
}

// EncodeString serializes v to a JSON string.
func EncodeString(v any) (string, error) {
	data, err := Encode(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode deserializes JSON data into v. Failures are reported as
// DECODE_FAILED errors carrying the codec's message.
func Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.DecodeFailed(err)
	}
	return nil
}

// DecodeObject deserializes a JSON object into a map[string]any.
func DecodeObject(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := Decode(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Valid reports whether data is syntactically valid JSON.
func Valid(data []byte) bool {
	return json.Valid(data)
}
