package textserde

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsent is returned when a serialization framework hands an absence
	// marker (e.g. JSON null, SQL NULL) to a value that must be present,
	// or when an absent OptionalText is asked for its text form.
	ErrAbsent = errors.New("textserde: value is absent")

	// ErrNotTextUnmarshaler is returned when the wrapped type cannot be parsed
	// from text, because neither T nor *T implements encoding.TextUnmarshaler.
	ErrNotTextUnmarshaler = errors.New("textserde: type does not implement encoding.TextUnmarshaler")
)

// ParseError is returned when some text could not be parsed into the
// wrapped type. Err holds the failure reported by the type's own parser.
type ParseError struct {
	Type string
	Text string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("textserde: failed to parse %q as %s, %v", e.Text, e.Type, e.Err)
}

// Unwrap returns the parser error.
func (e *ParseError) Unwrap() error { return e.Err }
