package inventory

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/get-eventually/go-textserde/serde"
)

// ErrUnsupportedFormat is returned when a format name or file extension
// is not recognized.
var ErrUnsupportedFormat = errors.New("inventory: unsupported format")

// Format is the encoding used for an Inventory document.
type Format string

// Supported formats.
const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

var extensions = map[string]Format{
	".json":    JSON,
	".yaml":    YAML,
	".yml":     YAML,
	".msgpack": MsgPack,
	".mpk":     MsgPack,
}

// ParseFormat returns the Format with the given name, case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, YAML, MsgPack:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath infers the Format of a file from its extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	f, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: extension %q of %s", ErrUnsupportedFormat, ext, path)
	}

	return f, nil
}

// Extension returns the file extension used for the Format, dot included.
func (f Format) Extension() string {
	if f == MsgPack {
		return ".msgpack"
	}

	return "." + string(f)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (f *Format) UnmarshalText(data []byte) error {
	parsed, err := ParseFormat(string(data))
	if err != nil {
		return err
	}

	*f = parsed

	return nil
}

func newInventory() *Inventory { return new(Inventory) }

// Serde returns the serde.Serde used to encode and decode
// Inventory documents in the Format.
func (f Format) Serde() (serde.Serde[*Inventory, []byte], error) {
	switch f {
	case JSON:
		return serde.NewJSON(newInventory), nil
	case YAML:
		return serde.NewYAML(newInventory), nil
	case MsgPack:
		return serde.NewMsgPack(newInventory), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}
