package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config represents a full theme configuration document: an ordered list of
// component identifiers, each paired with that component's own slice.
type Config struct {
	Path       string
	Components []Entry
}

// Entry is one top-level key of the document.
type Entry struct {
	ID    string
	Line  int
	Slice Slice
}

// Entry returns the first entry with the given identifier.
func (c *Config) Entry(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	for _, entry := range c.Components {
		if entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}

// IDs lists component identifiers in document order.
func (c *Config) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.Components))
	for _, entry := range c.Components {
		ids = append(ids, entry.ID)
	}
	return ids
}

// Slice is the read-only sub-document belonging to one component.
type Slice struct {
	node *yaml.Node
}

// NewSlice wraps a decoded YAML node.
func NewSlice(node *yaml.Node) Slice {
	return Slice{node: node}
}

// SliceFromYAML parses a standalone document into a Slice.
func SliceFromYAML(doc string) (Slice, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		return Slice{}, err
	}
	if root.Kind == 0 {
		return Slice{}, nil
	}
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		return Slice{node: root.Content[0]}, nil
	}
	return Slice{node: &root}, nil
}

// MustSlice is SliceFromYAML for fixtures; it panics on malformed input.
func MustSlice(doc string) Slice {
	s, err := SliceFromYAML(doc)
	if err != nil {
		panic(err)
	}
	return s
}

// IsZero reports whether the slice holds no document at all.
func (s Slice) IsZero() bool {
	return s.node == nil || (s.node.Kind == yaml.ScalarNode && s.node.Tag == "!!null")
}

// Line returns the source line of the slice, or 0.
func (s Slice) Line() int {
	if s.node == nil {
		return 0
	}
	return s.node.Line
}

// Has reports whether the mapping contains key. Presence, not value, is what counts.
func (s Slice) Has(key string) bool {
	for _, k := range s.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Keys returns mapping keys in document order.
func (s Slice) Keys() []string {
	if s.node == nil || s.node.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(s.node.Content)/2)
	for i := 0; i+1 < len(s.node.Content); i += 2 {
		keys = append(keys, s.node.Content[i].Value)
	}
	return keys
}

// Decode unmarshals the slice into out. An empty slice leaves out untouched.
func (s Slice) Decode(out any) error {
	if s.IsZero() {
		return nil
	}
	return s.node.Decode(out)
}

// Pair is one key/value of an Ordered mapping.
type Pair[V any] struct {
	Key   string
	Value V
}

// Ordered is a mapping that keeps document order. It is nil when the key was
// absent and non-nil (possibly empty) when present.
type Ordered[V any] []Pair[V]

// UnmarshalYAML decodes a mapping node, preserving key order.
func (o *Ordered[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	out := make(Ordered[V], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		out = append(out, Pair[V]{Key: node.Content[i].Value, Value: value})
	}
	*o = out
	return nil
}

// Get returns the value stored under key.
func (o Ordered[V]) Get(key string) (V, bool) {
	for _, pair := range o {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	var zero V
	return zero, false
}

// Keys returns keys in document order.
func (o Ordered[V]) Keys() []string {
	keys := make([]string, 0, len(o))
	for _, pair := range o {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Map copies the pairs into a plain map.
func (o Ordered[V]) Map() map[string]V {
	out := make(map[string]V, len(o))
	for _, pair := range o {
		out[pair.Key] = pair.Value
	}
	return out
}
