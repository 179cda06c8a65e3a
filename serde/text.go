package serde

import (
	"encoding"
	"fmt"

	textserde "github.com/get-eventually/go-textserde"
)

// NewTextSerializer returns a serializer function where the input data (T)
// gets serialized to its text form, using encoding.TextMarshaler.
func NewTextSerializer[T encoding.TextMarshaler]() SerializerFunc[T, string] {
	return func(t T) (string, error) {
		s, err := textserde.Render(t)
		if err != nil {
			return "", fmt.Errorf("serde.Text: failed to serialize data, %w", err)
		}

		return s, nil
	}
}

// NewTextDeserializer returns a deserializer function where a string
// is parsed into the specified data type, using encoding.TextUnmarshaler.
//
// Parsing failures are reported as *textserde.ParseError.
func NewTextDeserializer[T encoding.TextMarshaler]() DeserializerFunc[T, string] {
	return func(s string) (T, error) {
		var zeroValue T

		t, err := textserde.Parse[T](s)
		if err != nil {
			return zeroValue, fmt.Errorf("serde.Text: failed to deserialize data, %w", err)
		}

		return t, nil
	}
}

// NewText returns a new serde instance where some data (`T`) gets serialized to
// and deserialized from its text form.
func NewText[T encoding.TextMarshaler]() Fused[T, string] {
	return Fuse(
		NewTextSerializer[T](),
		NewTextDeserializer[T](),
	)
}

// NewOptionalTextSerializer returns a serializer function where a value
// that may be absent gets serialized to its text form, or to nil if absent.
func NewOptionalTextSerializer[T encoding.TextMarshaler]() SerializerFunc[textserde.OptionalText[T], *string] {
	serializer := NewTextSerializer[T]()

	return func(opt textserde.OptionalText[T]) (*string, error) {
		t, ok := opt.Get()
		if !ok {
			return nil, nil
		}

		s, err := serializer(t)
		if err != nil {
			return nil, err
		}

		return &s, nil
	}
}

// NewOptionalTextDeserializer returns a deserializer function where
// a nil string is deserialized as an absent value, without parsing,
// and any other string is parsed like NewTextDeserializer does.
func NewOptionalTextDeserializer[T encoding.TextMarshaler]() DeserializerFunc[textserde.OptionalText[T], *string] {
	deserializer := NewTextDeserializer[T]()

	return func(s *string) (textserde.OptionalText[T], error) {
		if s == nil {
			return textserde.None[T](), nil
		}

		t, err := deserializer(*s)
		if err != nil {
			return textserde.None[T](), err
		}

		return textserde.Some(t), nil
	}
}

// NewOptionalText returns a new serde instance where a value that may be absent
// gets serialized to and deserialized from its text form, using nil for absence.
func NewOptionalText[T encoding.TextMarshaler]() Fused[textserde.OptionalText[T], *string] {
	return Fuse(
		NewOptionalTextSerializer[T](),
		NewOptionalTextDeserializer[T](),
	)
}
