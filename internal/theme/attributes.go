package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Attributes is an insertion-ordered mapping of attribute key to color value.
// The zero value is ready to use.
type Attributes struct {
	keys   []string
	values map[string]string
}

// Attr is a single key/value pair used to build Attributes.
type Attr struct {
	Key   string
	Value string
}

// NewAttributes builds Attributes from pairs in order. A repeated key keeps
// its first position and takes the last value.
func NewAttributes(pairs ...Attr) Attributes {
	var a Attributes
	for _, p := range pairs {
		a.Set(p.Key, p.Value)
	}
	return a
}

// FromMap builds Attributes from a map. Go maps are unordered, so keys are
// inserted in the order given by keys when provided, otherwise map order.
func FromMap(m map[string]string, keys ...string) Attributes {
	var a Attributes
	for _, k := range keys {
		if v, ok := m[k]; ok {
			a.Set(k, v)
		}
	}
	for k, v := range m {
		if _, ok := a.values[k]; !ok {
			a.Set(k, v)
		}
	}
	return a
}

// Set stores value under key, appending key if it is new.
func (a *Attributes) Set(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value for key.
func (a Attributes) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (a Attributes) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.keys)
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	var out Attributes
	for _, k := range a.keys {
		out.Set(k, a.values[k])
	}
	return out
}

// Overlay returns base's attributes overridden by a's. Base keys keep their
// order; keys only in a follow in a's order.
func (a Attributes) Overlay(base Attributes) Attributes {
	out := base.Clone()
	for _, k := range a.keys {
		out.Set(k, a.values[k])
	}
	return out
}

// Map returns a plain map copy.
func (a Attributes) Map() map[string]string {
	out := make(map[string]string, len(a.keys))
	for _, k := range a.keys {
		out[k] = a.values[k]
	}
	return out
}

// UnmarshalYAML decodes a YAML mapping while keeping document order.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("attributes must be a mapping (line %d)", node.Line)
	}

	var out Attributes
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if valueNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("attribute %q must be a scalar (line %d)", keyNode.Value, valueNode.Line)
		}
		out.Set(keyNode.Value, valueNode.Value)
	}
	*a = out
	return nil
}

// MarshalYAML encodes the attributes as an ordered mapping.
func (a Attributes) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range a.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.values[k], Style: yaml.DoubleQuotedStyle},
		)
	}
	return node, nil
}
