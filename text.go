package textserde

import (
	"encoding"
	"fmt"
)

var (
	_ encoding.TextMarshaler   = Text[encoding.TextMarshaler]{}
	_ encoding.TextUnmarshaler = &Text[encoding.TextMarshaler]{}
)

// Text wraps a value that is always present and gets serialized
// using its own text form.
//
// Use Text as a struct field type to have the value encoded as a single
// string scalar by any of the supported frameworks: encoding/json,
// gopkg.in/yaml.v3, msgpack, TOML (or any other framework relying on
// encoding.TextMarshaler) and database/sql.
//
// MarshalText and UnmarshalText of the wrapped type must be inverses
// of each other, otherwise values will not survive a round-trip.
type Text[T encoding.TextMarshaler] struct {
	V T
}

// NewText wraps the provided value.
func NewText[T encoding.TextMarshaler](v T) Text[T] {
	return Text[T]{V: v}
}

// Get returns the wrapped value.
func (t Text[T]) Get() T { return t.V }

// MarshalText implements the encoding.TextMarshaler interface.
func (t Text[T]) MarshalText() ([]byte, error) {
	return t.V.MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *Text[T]) UnmarshalText(data []byte) error {
	return t.decode(string(data), true)
}

// String returns the text form of the wrapped value.
func (t Text[T]) String() string {
	s, err := Render(t.V)
	if err != nil {
		return fmt.Sprintf("%%!(textserde: %v)", err)
	}

	return s
}

// decode is the shared tail of all the decoding hooks: absence is refused,
// anything else is handed over to the wrapped type parser.
func (t *Text[T]) decode(text string, present bool) error {
	if !present {
		return fmt.Errorf("textserde.Text[%s]: %w", typeName[T](), ErrAbsent)
	}

	v, err := Parse[T](text)
	if err != nil {
		return err
	}

	t.V = v

	return nil
}
