// Package textserde contains wrapper types to serialize values through their
// own text form, as provided by encoding.TextMarshaler and
// encoding.TextUnmarshaler.
//
// Text is used for values that are always present, OptionalText for values
// that may be absent. Both can be used as struct field types, and are
// understood by encoding/json, gopkg.in/yaml.v3, msgpack, TOML and
// database/sql:
//
//	type Host struct {
//		Address textserde.Text[netip.Addr]         `json:"address"`
//		Gateway textserde.OptionalText[netip.Addr] `json:"gateway"`
//	}
//
// encodes to {"address":"127.0.0.1","gateway":null} when the gateway is absent.
//
// Parsing failures are reported as *ParseError, wrapping the error returned
// by the UnmarshalText implementation of the wrapped type.
//
// The serde package exposes the same conversions as serde.Serde values,
// to be chained with other serdes.
package textserde
