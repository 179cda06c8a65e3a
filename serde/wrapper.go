package serde

import (
	"encoding"
	"fmt"

	"google.golang.org/protobuf/types/known/wrapperspb"

	textserde "github.com/get-eventually/go-textserde"
)

// StringValue maps a string to and from the Protobuf google.protobuf.StringValue
// well-known type.
//
// A nil StringValue cannot be deserialized into a string: use OptionalStringValue
// when the value may be absent.
var StringValue = Fuse[string, *wrapperspb.StringValue](
	AsInfallibleSerializerFunc(wrapperspb.String),
	AsDeserializerFunc(func(v *wrapperspb.StringValue) (string, error) {
		if v == nil {
			return "", fmt.Errorf("serde.StringValue: failed to deserialize data, %w", textserde.ErrAbsent)
		}

		return v.GetValue(), nil
	}),
)

// OptionalStringValue maps a string pointer to and from the Protobuf
// google.protobuf.StringValue well-known type, where nil on either side
// represents absence.
var OptionalStringValue = Fuse[*string, *wrapperspb.StringValue](
	AsInfallibleSerializerFunc(func(s *string) *wrapperspb.StringValue {
		if s == nil {
			return nil
		}

		return wrapperspb.String(*s)
	}),
	AsInfallibleDeserializerFunc(func(v *wrapperspb.StringValue) *string {
		if v == nil {
			return nil
		}

		s := v.GetValue()

		return &s
	}),
)

// NewTextStringValue returns a new serde instance where some data (`T`) is
// serialized to its text form, wrapped in a Protobuf StringValue.
func NewTextStringValue[T encoding.TextMarshaler]() Chained[T, string, *wrapperspb.StringValue] {
	return Chain[T, string, *wrapperspb.StringValue](NewText[T](), StringValue)
}

// NewOptionalTextStringValue returns a new serde instance where a value that may be
// absent is serialized to its text form wrapped in a Protobuf StringValue,
// or to a nil StringValue when absent.
func NewOptionalTextStringValue[T encoding.TextMarshaler]() Chained[
	textserde.OptionalText[T], *string, *wrapperspb.StringValue,
] {
	return Chain[textserde.OptionalText[T], *string, *wrapperspb.StringValue](
		NewOptionalText[T](),
		OptionalStringValue,
	)
}
