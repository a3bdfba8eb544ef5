package fixstr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler, which also covers JSON.
func (s String[A, P]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Input longer than the
// capacity is truncated.
func (s *String[A, P]) UnmarshalText(b []byte) error {
	s.Assign(b)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s String[A, P]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted;
// values longer than the capacity are truncated.
func (s *String[A, P]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("fixstr: cannot decode YAML node of kind %d at line %d into a fixed string", node.Kind, node.Line)
	}
	s.AssignString(node.Value)
	return nil
}
