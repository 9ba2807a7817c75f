// Package loader reads composite operation operands from YAML.
//
// A sequence is a native collection. A mapping describes a Set-like argument:
//
//	size: 2          # any scalar; absent, NaN or negative values are passed through
//	keys: [3, 1]     # what keys() yields, duplicates included
//	omit: [has]      # properties that read as undefined
//	iterator: false  # keys() returns a plain value instead of an iterator
//
// Any other scalar is passed through as a primitive.
package loader

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/tuannh982/setlike/set"
	"github.com/tuannh982/setlike/set/commons"
	"gopkg.in/yaml.v3"
)

var ErrNotScalar = errors.New("collection elements must be scalars")

// Elements is a YAML sequence of scalar values.
type Elements []any

func (e *Elements) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return errors.New("Elements must be SequenceNode")
	}
	values := make([]any, 0, len(value.Content))
	for _, n := range value.Content {
		v, err := decodeScalar(n)
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	*e = values
	return nil
}

// Descriptor is a Set-like argument whose has is backed by its keys.
type Descriptor struct {
	Size     any      `yaml:"size"`
	Keys     Elements `yaml:"keys"`
	Omit     []string `yaml:"omit"`
	Iterator *bool    `yaml:"iterator"`

	members *set.Set
}

var _ commons.Object = (*Descriptor)(nil)

func (d *Descriptor) Get(name string) (any, error) {
	if slices.Contains(d.Omit, name) {
		return nil, nil
	}
	switch name {
	case commons.PropSize:
		return d.Size, nil
	case commons.PropHas:
		return commons.Func(d.has), nil
	case commons.PropKeys:
		return commons.Func(d.keys), nil
	}
	return nil, nil
}

func (d *Descriptor) has(args ...any) (any, error) {
	if d.members == nil {
		d.members = set.New(d.Keys...)
	}
	if len(args) == 0 {
		return d.members.Has(nil), nil
	}
	return d.members.Has(args[0]), nil
}

func (d *Descriptor) keys(...any) (any, error) {
	if d.Iterator != nil && !*d.Iterator {
		return []any(d.Keys), nil
	}
	return commons.NewSliceIterator(d.Keys), nil
}

// Decode parses one YAML document into an operand. An empty document is undefined.
func Decode(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	return DecodeNode(doc.Content[0])
}

// DecodeNode turns a YAML node into an operand.
func DecodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return DecodeNode(n.Alias)
	case yaml.SequenceNode:
		var values Elements
		if err := n.Decode(&values); err != nil {
			return nil, fmt.Errorf("loader: line %d: %w", n.Line, err)
		}
		return set.New(values...), nil
	case yaml.MappingNode:
		d := &Descriptor{}
		if err := n.Decode(d); err != nil {
			return nil, fmt.Errorf("loader: line %d: %w", n.Line, err)
		}
		return d, nil
	}
	return decodeScalar(n)
}

// Load reads the operand stored in path.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func decodeScalar(n *yaml.Node) (any, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: %w", n.Line, ErrNotScalar)
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Marshal renders an operation result: a collection as a sequence, anything else as is.
func Marshal(v any) ([]byte, error) {
	if s, ok := v.(*set.Set); ok {
		return yaml.Marshal(s.Values())
	}
	return yaml.Marshal(v)
}
