package textserde

import (
	"encoding"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = Text[encoding.TextMarshaler]{}
	_ msgpack.CustomDecoder = &Text[encoding.TextMarshaler]{}
	_ msgpack.CustomEncoder = OptionalText[encoding.TextMarshaler]{}
	_ msgpack.CustomDecoder = &OptionalText[encoding.TextMarshaler]{}
)

// msgpackText reads a single msgpack string, or reports absence on nil.
func msgpackText(dec *msgpack.Decoder) (string, bool, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return "", false, fmt.Errorf("textserde: failed to peek msgpack code, %w", err)
	}

	if code == msgpcode.Nil {
		if err := dec.DecodeNil(); err != nil {
			return "", false, fmt.Errorf("textserde: failed to decode msgpack nil, %w", err)
		}

		return "", false, nil
	}

	s, err := dec.DecodeString()
	if err != nil {
		return "", false, fmt.Errorf("textserde: failed to decode msgpack string, %w", err)
	}

	return s, true, nil
}

// EncodeMsgpack implements the msgpack.CustomEncoder interface.
func (t Text[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	s, err := Render(t.V)
	if err != nil {
		return err
	}

	return enc.EncodeString(s)
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (t *Text[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, present, err := msgpackText(dec)
	if err != nil {
		return err
	}

	return t.decode(s, present)
}

// EncodeMsgpack implements the msgpack.CustomEncoder interface.
func (o OptionalText[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	s, present, err := o.render()
	if err != nil {
		return err
	}

	if !present {
		return enc.EncodeNil()
	}

	return enc.EncodeString(s)
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (o *OptionalText[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, present, err := msgpackText(dec)
	if err != nil {
		return err
	}

	return o.decode(s, present)
}
