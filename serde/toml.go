package serde

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// NewTOMLSerializer returns a serializer function where the input data (T)
// gets serialized to a TOML document.
//
// TOML documents are tables, so T must be a struct or map type (or a pointer to one).
func NewTOMLSerializer[T any]() SerializerFunc[T, []byte] {
	return func(t T) ([]byte, error) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(t); err != nil {
			return nil, fmt.Errorf("serde.TOML: failed to serialize data, %w", err)
		}

		return buf.Bytes(), nil
	}
}

// NewTOMLDeserializer returns a deserializer function where a TOML document
// is deserialized into the specified data type.
//
// A data factory function is required for creating new instances of the type
// (especially if pointer semantics is used).
func NewTOMLDeserializer[T any](factory func() T) DeserializerFunc[T, []byte] {
	return func(data []byte) (T, error) {
		var zeroValue T

		model := factory()
		if _, err := toml.Decode(string(data), &model); err != nil {
			return zeroValue, fmt.Errorf("serde.TOML: failed to deserialize data, %w", err)
		}

		return model, nil
	}
}

// NewTOML returns a new serde instance where some data (`T`) gets serialized to
// and deserialized from a TOML document.
func NewTOML[T any](factory func() T) Fused[T, []byte] {
	return Fuse(
		NewTOMLSerializer[T](),
		NewTOMLDeserializer(factory),
	)
}
