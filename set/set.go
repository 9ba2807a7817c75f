// Package set provides an insertion-ordered collection with SameValueZero element
// equality, and the composite operations (union, intersection, difference,
// symmetricDifference, isSubsetOf, isSupersetOf, isDisjointFrom) that accept any
// argument exposing size, has and keys.
//
// A Set is not safe for concurrent use. Argument callbacks run on the caller's goroutine
// and may re-enter the receiver, so no locking is done.
package set

import (
	"iter"
	"strings"

	"github.com/tuannh982/setlike/set/commons"
	"github.com/tuannh982/setlike/utils/collections"
)

type Set struct {
	data collections.OrderedSet[any]
}

var _ commons.Object = (*Set)(nil)

func newData() collections.OrderedSet[any] {
	return collections.NewOrderedSet[any, any](commons.KeyOf)
}

// New returns a Set holding values in order, duplicates dropped.
func New(values ...any) *Set {
	s := &Set{data: newData()}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v unless already present. It panics when v cannot be a set element, as a
// Go map does for an unhashable key; see commons.Hashable.
func (s *Set) Add(v any) *Set {
	_ = s.data.Add(commons.Canonicalize(v))
	return s
}

func (s *Set) Delete(v any) bool {
	if !commons.Hashable(v) {
		return false
	}
	return s.data.Remove(v) == nil
}

// Has reports whether v is an element. Values that cannot be elements are never present.
func (s *Set) Has(v any) bool {
	return commons.Hashable(v) && s.data.Contains(v)
}

func (s *Set) Clear() {
	s.data.Clear()
}

func (s *Set) Size() int {
	return s.data.Size()
}

// Values returns the elements in insertion order.
func (s *Set) Values() []any {
	return s.data.Entries()
}

// Keys returns a live cursor over the elements.
func (s *Set) Keys() commons.Iterator {
	return &keysIterator{c: s.data.Cursor()}
}

func (s *Set) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		c := s.data.Cursor()
		defer c.Close()
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (s *Set) ForEach(fn func(v any)) {
	for v := range s.All() {
		fn(v)
	}
}

func (s *Set) Clone() *Set {
	return &Set{data: s.data.Clone()}
}

// Equal reports whether s and o hold the same elements, in any order.
func (s *Set) Equal(o *Set) bool {
	if s.Size() != o.Size() {
		return false
	}
	for _, v := range s.Values() {
		if !o.Has(v) {
			return false
		}
	}
	return true
}

func (s *Set) String() string {
	parts := make([]string, 0, s.Size())
	for _, v := range s.Values() {
		parts = append(parts, commons.Describe(v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Get exposes the Set through the size/has/keys protocol so it can be the argument of
// another Set's composite operation.
func (s *Set) Get(name string) (any, error) {
	switch name {
	case commons.PropSize:
		return s.Size(), nil
	case commons.PropHas:
		return commons.Func(func(args ...any) (any, error) {
			if len(args) == 0 {
				return s.Has(nil), nil
			}
			return s.Has(args[0]), nil
		}), nil
	case commons.PropKeys:
		return commons.Func(func(args ...any) (any, error) {
			return s.Keys(), nil
		}), nil
	}
	return nil, nil
}

type keysIterator struct {
	c collections.Cursor[any]
}

func (it *keysIterator) Next() (any, bool, error) {
	v, ok := it.c.Next()
	return v, ok, nil
}

func (it *keysIterator) Close() error {
	it.c.Close()
	return nil
}
