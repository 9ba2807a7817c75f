package commons

import "fmt"

const (
	PropSize = "size"
	PropHas  = "has"
	PropKeys = "keys"
)

// Object is a host value with named properties. Reading a property may run arbitrary
// code and may fail. A missing property reads as nil.
type Object interface {
	Get(name string) (any, error)
}

// Callable is anything that can be invoked with positional arguments.
type Callable interface {
	Call(args ...any) (any, error)
}

type Func func(args ...any) (any, error)

func (f Func) Call(args ...any) (any, error) {
	return f(args...)
}

// Iterator is a single-pass cursor. Next reports ok=false once exhausted.
// Close releases the cursor and must be safe to call more than once.
type Iterator interface {
	Next() (value any, ok bool, err error)
	Close() error
}

// Getter is a computed property: Props invokes it on every read.
type Getter func() (any, error)

// Props is a plain property bag.
type Props map[string]any

var _ Object = Props(nil)

func (p Props) Get(name string) (any, error) {
	v, ok := p[name]
	if !ok {
		return nil, nil
	}
	if g, ok := v.(Getter); ok {
		return g()
	}
	return v, nil
}

// SetLike is the statically typed form of the size/has/keys protocol.
type SetLike interface {
	Size() int
	Has(v any) (bool, error)
	Keys() (Iterator, error)
}

type setLikeObject struct {
	s SetLike
}

// FromSetLike exposes a SetLike as an Object.
func FromSetLike(s SetLike) Object {
	return &setLikeObject{s: s}
}

func (o *setLikeObject) Get(name string) (any, error) {
	switch name {
	case PropSize:
		return o.s.Size(), nil
	case PropHas:
		return Func(func(args ...any) (any, error) {
			return o.s.Has(arg(args, 0))
		}), nil
	case PropKeys:
		return Func(func(args ...any) (any, error) {
			return o.s.Keys()
		}), nil
	}
	return nil, nil
}

type mapObject[K comparable, V any] struct {
	m map[K]V
}

// FromMap exposes the keys of m through the size/has/keys protocol.
// Enumeration follows Go map order.
func FromMap[K comparable, V any](m map[K]V) Object {
	return &mapObject[K, V]{m: m}
}

func (o *mapObject[K, V]) Get(name string) (any, error) {
	switch name {
	case PropSize:
		return len(o.m), nil
	case PropHas:
		return Func(func(args ...any) (any, error) {
			k, ok := arg(args, 0).(K)
			if !ok {
				return false, nil
			}
			_, found := o.m[k]
			return found, nil
		}), nil
	case PropKeys:
		return Func(func(args ...any) (any, error) {
			keys := make([]any, 0, len(o.m))
			for k := range o.m {
				keys = append(keys, k)
			}
			return NewSliceIterator(keys), nil
		}), nil
	}
	return nil, nil
}

type sliceIterator struct {
	values []any
	pos    int
}

// NewSliceIterator iterates values in order.
func NewSliceIterator(values []any) Iterator {
	return &sliceIterator{values: values}
}

func (it *sliceIterator) Next() (any, bool, error) {
	if it.pos >= len(it.values) {
		return nil, false, nil
	}
	v := it.values[it.pos]
	it.pos++
	return v, true, nil
}

func (it *sliceIterator) Close() error {
	it.pos = len(it.values)
	return nil
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// Describe renders a value for log lines and messages.
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "undefined"
	case string:
		return fmt.Sprintf("%q", x)
	case Object:
		return fmt.Sprintf("object(%T)", x)
	}
	return fmt.Sprint(v)
}
