package schema

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"unchecker-generator/internal/common"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// IsSingle returns true if the array has exactly one element.
func (s StringOrArray) IsSingle() bool {
	return common.IsSingle(s)
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// --- MethodSpec YAML methods ---

// methodFields has MethodSpec's layout without its methods, so decoding a
// mapping does not recurse into UnmarshalYAML.
type methodFields MethodSpec

// UnmarshalYAML implements custom YAML unmarshaling for MethodSpec.
// Accepts:
//   - A signature string: "R apply(T t)"
//   - A mapping: {name: apply, params: [T], returns: R}
func (m *MethodSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var sig string

		if err := node.Decode(&sig); err != nil {
			return err
		}

		*m = MethodSpec{Signature: sig}

		return nil

	case yaml.MappingNode:
		var f methodFields

		if err := node.Decode(&f); err != nil {
			return err
		}

		*m = MethodSpec(f)
		m.Signature = ""

		return nil

	default:
		return fmt.Errorf("line %d: expected signature string or method mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes signature methods back as strings.
func (m MethodSpec) MarshalYAML() (any, error) {
	if m.Signature != "" {
		return m.Signature, nil
	}

	return methodFields(m), nil
}
