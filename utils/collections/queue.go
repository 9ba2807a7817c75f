package collections

import (
	"fmt"
)

type Queue[V any] interface {
	Push(V)
	Pop() (V, error)
	Peek() (V, error)
	Size() int
}

type queue[V any] struct {
	entries []V
}

func NewQueue[V any](values ...V) Queue[V] {
	q := &queue[V]{
		entries: make([]V, 0, len(values)),
	}
	q.entries = append(q.entries, values...)
	return q
}

func (s *queue[V]) Push(v V) {
	s.entries = append(s.entries, v)
}

func (s *queue[V]) Pop() (v V, err error) {
	n := len(s.entries)
	if n == 0 {
		return v, ErrEmpty
	}
	ret := s.entries[0]
	s.entries = s.entries[1:]
	return ret, nil
}

func (s *queue[V]) Peek() (v V, err error) {
	n := len(s.entries)
	if n == 0 {
		return v, ErrEmpty
	}
	return s.entries[0], nil
}

func (s *queue[V]) Size() int {
	return len(s.entries)
}

func (s queue[V]) String() string {
	return fmt.Sprint(s.entries)
}
