package collections

import "github.com/tuannh982/setlike/utils/math"

// compaction only pays off once the slot table has some size
const minCompactSlots = 8

type HashSetHashFunc[R comparable, V any] func(V) R

type slot[R comparable, V any] struct {
	key     R
	value   V
	deleted bool
}

type orderedSet[R comparable, V any] struct {
	index    Map[R, int]
	slots    []slot[R, V]
	cursors  int
	hashFunc HashSetHashFunc[R, V]
}

// NewOrderedSet returns an insertion-ordered set. Two values are the same element when
// f maps them to the same key; the first inserted value is the one kept.
func NewOrderedSet[R comparable, V any](f HashSetHashFunc[R, V]) OrderedSet[V] {
	return &orderedSet[R, V]{
		index:    NewHashMap[R, int](),
		slots:    make([]slot[R, V], 0),
		hashFunc: f,
	}
}

func (s *orderedSet[R, V]) Contains(v V) bool {
	return s.index.Contains(s.hashFunc(v))
}

func (s *orderedSet[R, V]) Add(v V) error {
	key := s.hashFunc(v)
	if err := s.index.PutIfAbsent(key, len(s.slots)); err != nil {
		return err
	}
	s.slots = append(s.slots, slot[R, V]{key: key, value: v})
	return nil
}

func (s *orderedSet[R, V]) Remove(v V) error {
	key := s.hashFunc(v)
	pos, err := s.index.Get(key)
	if err != nil {
		return err
	}
	_ = s.index.Delete(key)
	var zero V
	s.slots[pos] = slot[R, V]{key: key, value: zero, deleted: true}
	s.maybeCompact()
	return nil
}

func (s *orderedSet[R, V]) Size() int {
	return s.index.Size()
}

func (s *orderedSet[R, V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for _, sl := range s.slots {
		if !sl.deleted {
			arr = append(arr, sl.value)
		}
	}
	return arr
}

func (s *orderedSet[R, V]) Clear() {
	s.index.Clear()
	if s.cursors == 0 {
		s.slots = make([]slot[R, V], 0)
		return
	}
	// open cursors keep their positions; they will only see entries added from now on
	var zero V
	for i := range s.slots {
		s.slots[i].value = zero
		s.slots[i].deleted = true
	}
}

func (s *orderedSet[R, V]) Clone() OrderedSet[V] {
	c := &orderedSet[R, V]{
		index:    NewHashMap[R, int](),
		slots:    make([]slot[R, V], 0, s.Size()),
		hashFunc: s.hashFunc,
	}
	for _, sl := range s.slots {
		if sl.deleted {
			continue
		}
		c.index.Put(sl.key, len(c.slots))
		c.slots = append(c.slots, sl)
	}
	return c
}

func (s *orderedSet[R, V]) Cursor() Cursor[V] {
	s.cursors++
	return &cursor[R, V]{set: s}
}

// maybeCompact drops tombstones once they make up half of the slot table. Positions held
// by open cursors would be invalidated, so nothing moves while any cursor is open.
func (s *orderedSet[R, V]) maybeCompact() {
	if s.cursors > 0 || len(s.slots) < minCompactSlots {
		return
	}
	tombstones := len(s.slots) - s.Size()
	if tombstones < math.DivCeil(len(s.slots), 2) {
		return
	}
	slots := make([]slot[R, V], 0, s.Size())
	for _, sl := range s.slots {
		if sl.deleted {
			continue
		}
		s.index.Put(sl.key, len(slots))
		slots = append(slots, sl)
	}
	s.slots = slots
}

type cursor[R comparable, V any] struct {
	set    *orderedSet[R, V]
	pos    int
	closed bool
}

func (c *cursor[R, V]) Next() (v V, ok bool) {
	if c.closed {
		return v, false
	}
	for c.pos < len(c.set.slots) {
		sl := c.set.slots[c.pos]
		c.pos++
		if !sl.deleted {
			return sl.value, true
		}
	}
	c.Close()
	return v, false
}

func (c *cursor[R, V]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.set.cursors--
	c.set.maybeCompact()
}
