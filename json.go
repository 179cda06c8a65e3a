package textserde

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
)

var (
	_ json.Marshaler   = Text[encoding.TextMarshaler]{}
	_ json.Unmarshaler = &Text[encoding.TextMarshaler]{}
	_ json.Marshaler   = OptionalText[encoding.TextMarshaler]{}
	_ json.Unmarshaler = &OptionalText[encoding.TextMarshaler]{}
)

var jsonNull = []byte("null")

// jsonText reads a single JSON string, or reports absence on null.
func jsonText(data []byte) (string, bool, error) {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return "", false, nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false, fmt.Errorf("textserde: failed to decode json string, %w", err)
	}

	return s, true, nil
}

// MarshalJSON implements the json.Marshaler interface.
func (t Text[T]) MarshalJSON() ([]byte, error) {
	s, err := Render(t.V)
	if err != nil {
		return nil, err
	}

	return json.Marshal(s)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// JSON null is refused with ErrAbsent: use OptionalText for nullable fields.
func (t *Text[T]) UnmarshalJSON(data []byte) error {
	s, present, err := jsonText(data)
	if err != nil {
		return err
	}

	return t.decode(s, present)
}

// MarshalJSON implements the json.Marshaler interface.
func (o OptionalText[T]) MarshalJSON() ([]byte, error) {
	s, present, err := o.render()
	if err != nil {
		return nil, err
	}

	if !present {
		return []byte("null"), nil
	}

	return json.Marshal(s)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (o *OptionalText[T]) UnmarshalJSON(data []byte) error {
	s, present, err := jsonText(data)
	if err != nil {
		return err
	}

	return o.decode(s, present)
}
