package query

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Groups is a multimap that remembers the order in which keys were first
// seen. The zero value is ready to use.
type Groups[K comparable, V any] struct {
	keys   []K
	values map[K][]V
}

// GroupBy partitions xs by key. Keys appear in first-seen order and each
// group keeps input order.
func GroupBy[T any, K comparable](xs []T, key func(T) K) *Groups[K, T] {
	g := &Groups[K, T]{}
	for _, x := range xs {
		g.Append(key(x), x)
	}
	return g
}

// Ensure adds k with an empty group if it is not present yet.
func (g *Groups[K, V]) Ensure(k K) {
	if g.values == nil {
		g.values = make(map[K][]V)
	}
	if _, ok := g.values[k]; !ok {
		g.keys = append(g.keys, k)
		g.values[k] = []V{}
	}
}

// Append adds vs to the group of k.
func (g *Groups[K, V]) Append(k K, vs ...V) {
	g.Ensure(k)
	g.values[k] = append(g.values[k], vs...)
}

// Get returns the group of k.
func (g *Groups[K, V]) Get(k K) ([]V, bool) {
	vs, ok := g.values[k]
	return vs, ok
}

// Keys returns the keys in first-seen order.
func (g *Groups[K, V]) Keys() []K {
	return append([]K(nil), g.keys...)
}

// Len returns the number of keys.
func (g *Groups[K, V]) Len() int {
	return len(g.keys)
}

// Map returns the groups as a plain map. Order is lost.
func (g *Groups[K, V]) Map() map[K][]V {
	out := make(map[K][]V, len(g.keys))
	for _, k := range g.keys {
		out[k] = g.values[k]
	}
	return out
}

// MarshalJSON encodes the groups as an object in key order.
func (g *Groups[K, V]) MarshalJSON() ([]byte, error) {
	return marshalOrderedJSON(g.keys, func(k K) any { return g.values[k] })
}

// MarshalYAML encodes the groups as a mapping in key order.
func (g *Groups[K, V]) MarshalYAML() (any, error) {
	return orderedYAMLNode(g.keys, func(k K) any { return g.values[k] })
}

// Ordered is a map that remembers insertion order. Setting an existing key
// replaces its value in place. The zero value is ready to use.
type Ordered[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// Set stores v under k.
func (o *Ordered[K, V]) Set(k K, v V) {
	if o.values == nil {
		o.values = make(map[K]V)
	}
	if _, ok := o.values[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.values[k] = v
}

// Get returns the value stored under k.
func (o *Ordered[K, V]) Get(k K) (V, bool) {
	v, ok := o.values[k]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Ordered[K, V]) Keys() []K {
	return append([]K(nil), o.keys...)
}

// Len returns the number of keys.
func (o *Ordered[K, V]) Len() int {
	return len(o.keys)
}

// Map returns the entries as a plain map. Order is lost.
func (o *Ordered[K, V]) Map() map[K]V {
	out := make(map[K]V, len(o.keys))
	for _, k := range o.keys {
		out[k] = o.values[k]
	}
	return out
}

// MarshalJSON encodes the map as an object in insertion order.
func (o *Ordered[K, V]) MarshalJSON() ([]byte, error) {
	return marshalOrderedJSON(o.keys, func(k K) any { return o.values[k] })
}

// MarshalYAML encodes the map as a mapping in insertion order.
func (o *Ordered[K, V]) MarshalYAML() (any, error) {
	return orderedYAMLNode(o.keys, func(k K) any { return o.values[k] })
}

// marshalOrderedJSON writes a JSON object whose members follow keys.
// Non-string keys are formatted with fmt.
func marshalOrderedJSON[K comparable](keys []K, value func(K) any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(fmt.Sprint(k))
		if err != nil {
			return nil, fmt.Errorf("encoding key %v: %w", k, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		v, err := json.Marshal(value(k))
		if err != nil {
			return nil, fmt.Errorf("encoding value of %v: %w", k, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// orderedYAMLNode builds a mapping node whose pairs follow keys.
func orderedYAMLNode[K comparable](keys []K, value func(K) any) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range keys {
		var kn, vn yaml.Node
		if err := kn.Encode(k); err != nil {
			return nil, fmt.Errorf("encoding key %v: %w", k, err)
		}
		if err := vn.Encode(value(k)); err != nil {
			return nil, fmt.Errorf("encoding value of %v: %w", k, err)
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}
