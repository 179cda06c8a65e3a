package textserde

import (
	"encoding"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = Text[encoding.TextMarshaler]{}
	_ yaml.Unmarshaler = &Text[encoding.TextMarshaler]{}
	_ yaml.Marshaler   = OptionalText[encoding.TextMarshaler]{}
	_ yaml.Unmarshaler = &OptionalText[encoding.TextMarshaler]{}
)

const yamlNullTag = "!!null"

// yamlText reads a single YAML scalar, or reports absence on null.
func yamlText(node *yaml.Node) (string, bool, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	if node.Kind != yaml.ScalarNode {
		return "", false, fmt.Errorf("textserde: expected a yaml scalar at line %d, got %s", node.Line, node.ShortTag())
	}

	if node.ShortTag() == yamlNullTag {
		return "", false, nil
	}

	return node.Value, true, nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (t Text[T]) MarshalYAML() (interface{}, error) {
	return Render(t.V)
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
//
// Note that yaml.v3 leaves struct fields untouched on null, without
// calling this method; explicit null nodes decoded through Node.Decode
// are refused with ErrAbsent.
func (t *Text[T]) UnmarshalYAML(node *yaml.Node) error {
	s, present, err := yamlText(node)
	if err != nil {
		return err
	}

	return t.decode(s, present)
}

// MarshalYAML implements the yaml.Marshaler interface.
func (o OptionalText[T]) MarshalYAML() (interface{}, error) {
	s, present, err := o.render()
	if err != nil || !present {
		return nil, err
	}

	return s, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (o *OptionalText[T]) UnmarshalYAML(node *yaml.Node) error {
	s, present, err := yamlText(node)
	if err != nil {
		return err
	}

	return o.decode(s, present)
}
