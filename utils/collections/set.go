package collections

type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
}

// OrderedSet is a Set whose Entries and cursors follow insertion order.
type OrderedSet[V any] interface {
	Set[V]
	Clear()
	Clone() OrderedSet[V]
	Cursor() Cursor[V]
}

// Cursor walks an OrderedSet while it is being mutated. Entries added after the cursor
// was opened are visited, removed entries are skipped and nothing is visited twice.
// A cursor closes itself once exhausted.
type Cursor[V any] interface {
	Next() (V, bool)
	Close()
}
