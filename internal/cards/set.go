// Package cards holds FITS-style keyword/value cards and the conventions for
// expanding multi-valued logbook fields into indexed keywords.
package cards

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MaxKeyLength is the longest keyword a header card can carry.
const MaxKeyLength = 8

// Card is a single keyword/value pair.
type Card struct {
	Key   string
	Value any
}

// Set is an insertion-ordered keyword to value mapping with unique keys.
// Setting an existing key replaces its value in place.
type Set struct {
	keys   []string
	values map[string]any
}

// NewSet creates an empty card set
func NewSet() *Set {
	return &Set{values: make(map[string]any)}
}

// Set stores value under key.
func (s *Set) Set(key string, value any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value stored under key.
func (s *Set) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Set) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Delete removes key. Missing keys are ignored.
func (s *Set) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Merge copies every card of other into s, in other's order.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		s.Set(k, other.values[k])
	}
}

// Len returns the number of cards.
func (s *Set) Len() int {
	return len(s.keys)
}

// Keys returns the keywords in insertion order.
func (s *Set) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Cards returns the cards in insertion order.
func (s *Set) Cards() []Card {
	out := make([]Card, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, Card{Key: k, Value: s.values[k]})
	}
	return out
}

// Map returns an unordered copy of the cards.
func (s *Set) Map() map[string]any {
	out := make(map[string]any, len(s.keys))
	for _, k := range s.keys {
		out[k] = s.values[k]
	}
	return out
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := NewSet()
	c.Merge(s)
	return c
}

// Validate checks every keyword fits in a header card.
func (s *Set) Validate() error {
	for _, k := range s.keys {
		if k == "" || len(k) > MaxKeyLength {
			return fmt.Errorf("invalid keyword %q: must be 1-%d characters", k, MaxKeyLength)
		}
	}
	return nil
}

// MarshalYAML emits the cards as a mapping in insertion order.
func (s *Set) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range s.keys {
		var val yaml.Node
		if err := val.Encode(s.values[k]); err != nil {
			return nil, fmt.Errorf("encoding card %s: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping, keeping document order.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("cards: expected a mapping, got yaml kind %d", node.Kind)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("decoding card %s: %w", node.Content[i].Value, err)
		}
		s.Set(node.Content[i].Value, value)
	}
	return nil
}

// MarshalJSON emits the cards as an object in insertion order.
func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, fmt.Errorf("encoding card %s: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
