package textserde

import (
	"encoding"
	"fmt"
	"reflect"
)

// Render returns the text form of v, as produced by its MarshalText method.
//
// Errors returned by MarshalText are returned unchanged.
func Render[T encoding.TextMarshaler](v T) (string, error) {
	text, err := v.MarshalText()
	if err != nil {
		return "", err
	}

	return string(text), nil
}

// Parse builds a new T from its text form, using the UnmarshalText method
// of either *T or T, when T is a pointer type.
//
// A failure reported by UnmarshalText is returned as a *ParseError,
// and the zero value of T is returned alongside it.
func Parse[T any](text string) (T, error) {
	var zeroValue, value T

	unmarshaler, err := textUnmarshaler(&value)
	if err != nil {
		return zeroValue, err
	}

	if err := unmarshaler.UnmarshalText([]byte(text)); err != nil {
		return zeroValue, &ParseError{
			Type: typeName[T](),
			Text: text,
			Err:  err,
		}
	}

	return value, nil
}

func textUnmarshaler[T any](value *T) (encoding.TextUnmarshaler, error) {
	if unmarshaler, ok := any(value).(encoding.TextUnmarshaler); ok {
		return unmarshaler, nil
	}

	// Types like *big.Int implement UnmarshalText on T itself,
	// so the pointee has to be allocated first.
	rv := reflect.ValueOf(value).Elem()
	if rv.Kind() == reflect.Pointer {
		rv.Set(reflect.New(rv.Type().Elem()))

		if unmarshaler, ok := rv.Interface().(encoding.TextUnmarshaler); ok {
			return unmarshaler, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotTextUnmarshaler, typeName[T]())
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
