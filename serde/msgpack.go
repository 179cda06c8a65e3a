package serde

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// NewMsgPackSerializer returns a serializer function where the input data (T)
// gets serialized to MessagePack byte-array data.
func NewMsgPackSerializer[T any]() SerializerFunc[T, []byte] {
	return func(t T) ([]byte, error) {
		data, err := msgpack.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("serde.MsgPack: failed to serialize data, %w", err)
		}

		return data, nil
	}
}

// NewMsgPackDeserializer returns a deserializer function where MessagePack
// byte-array data is deserialized into the specified data type.
//
// A data factory function is required for creating new instances of the type
// (especially if pointer semantics is used).
func NewMsgPackDeserializer[T any](factory func() T) DeserializerFunc[T, []byte] {
	return func(data []byte) (T, error) {
		var zeroValue T

		model := factory()
		if err := msgpack.Unmarshal(data, &model); err != nil {
			return zeroValue, fmt.Errorf("serde.MsgPack: failed to deserialize data, %w", err)
		}

		return model, nil
	}
}

// NewMsgPack returns a new serde instance where some data (`T`) gets serialized to
// and deserialized from MessagePack byte-array data.
func NewMsgPack[T any](factory func() T) Fused[T, []byte] {
	return Fuse(
		NewMsgPackSerializer[T](),
		NewMsgPackDeserializer(factory),
	)
}
