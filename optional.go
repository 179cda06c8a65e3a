package textserde

import (
	"encoding"
	"fmt"
)

// OptionalText wraps a value that may be absent, and gets serialized
// using its own text form when present.
//
// Absence is encoded with the framework's own absence marker
// (JSON null, YAML null, msgpack nil, SQL NULL), never as text:
// an absent value and a present value whose text form is empty
// produce different outputs.
//
// The zero value is absent.
type OptionalText[T encoding.TextMarshaler] struct {
	V     T
	Valid bool
}

// Some returns a present OptionalText holding v.
func Some[T encoding.TextMarshaler](v T) OptionalText[T] {
	return OptionalText[T]{V: v, Valid: true}
}

// None returns an absent OptionalText.
func None[T encoding.TextMarshaler]() OptionalText[T] {
	return OptionalText[T]{}
}

// FromPtr returns an absent OptionalText for a nil pointer,
// or a present one holding the pointed value otherwise.
func FromPtr[T encoding.TextMarshaler](v *T) OptionalText[T] {
	if v == nil {
		return None[T]()
	}

	return Some(*v)
}

// Get returns the wrapped value and whether it is present.
func (o OptionalText[T]) Get() (T, bool) { return o.V, o.Valid }

// Ptr returns a pointer to a copy of the wrapped value, or nil if absent.
func (o OptionalText[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}

	v := o.V

	return &v
}

// IsZero reports whether the value is absent.
func (o OptionalText[T]) IsZero() bool { return !o.Valid }

// MarshalText implements the encoding.TextMarshaler interface.
//
// Text-only formats have no absence marker, so ErrAbsent is returned
// for an absent value: omit the field instead.
//
// BurntSushi/toml omitempty compares the whole struct with its zero value:
// None is omitted, but OptionalText{V: x, Valid: false} is not, and
// fails with ErrAbsent.
func (o OptionalText[T]) MarshalText() ([]byte, error) {
	if !o.Valid {
		return nil, fmt.Errorf("textserde.OptionalText[%s]: %w", typeName[T](), ErrAbsent)
	}

	return o.V.MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The resulting value is always present.
func (o *OptionalText[T]) UnmarshalText(data []byte) error {
	return o.decode(string(data), true)
}

// String returns the text form of the wrapped value, or "<absent>".
func (o OptionalText[T]) String() string {
	if !o.Valid {
		return "<absent>"
	}

	return Text[T]{V: o.V}.String()
}

// render returns the text form of the value, and false if absent.
func (o OptionalText[T]) render() (string, bool, error) {
	if !o.Valid {
		return "", false, nil
	}

	s, err := Render(o.V)

	return s, true, err
}

// decode resets the value on absence, without calling the parser,
// and otherwise decodes exactly like Text.
func (o *OptionalText[T]) decode(text string, present bool) error {
	if !present {
		*o = None[T]()
		return nil
	}

	var required Text[T]
	if err := required.decode(text, true); err != nil {
		return err
	}

	*o = Some(required.V)

	return nil
}
