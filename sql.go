package textserde

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
)

var (
	_ driver.Valuer = Text[encoding.TextMarshaler]{}
	_ sql.Scanner   = &Text[encoding.TextMarshaler]{}
	_ driver.Valuer = OptionalText[encoding.TextMarshaler]{}
	_ sql.Scanner   = &OptionalText[encoding.TextMarshaler]{}
)

// sqlText reads a text column value, or reports absence on NULL.
func sqlText(src any) (string, bool, error) {
	switch src := src.(type) {
	case nil:
		return "", false, nil
	case string:
		return src, true, nil
	case []byte:
		return string(src), true, nil
	default:
		return "", false, fmt.Errorf("textserde: cannot scan %T as text", src)
	}
}

// Value implements the driver.Valuer interface.
func (t Text[T]) Value() (driver.Value, error) {
	return Render(t.V)
}

// Scan implements the sql.Scanner interface.
func (t *Text[T]) Scan(src any) error {
	s, present, err := sqlText(src)
	if err != nil {
		return err
	}

	return t.decode(s, present)
}

// Value implements the driver.Valuer interface.
// An absent value is stored as NULL.
func (o OptionalText[T]) Value() (driver.Value, error) {
	s, present, err := o.render()
	if err != nil || !present {
		return nil, err
	}

	return s, nil
}

// Scan implements the sql.Scanner interface.
func (o *OptionalText[T]) Scan(src any) error {
	s, present, err := sqlText(src)
	if err != nil {
		return err
	}

	return o.decode(s, present)
}
