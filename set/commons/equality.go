package commons

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

var ErrUnhashable = errors.New("value cannot be a set element")

type nanKey struct{}

type refKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// KeyOf maps v to its element identity under SameValueZero: numbers compare by value
// across Go numeric kinds, every NaN is the same element, -0 and +0 are the same element,
// and reference-like values compare by identity.
//
// Maps and funcs are keyed by pointer. Slices are keyed by type, data pointer and length,
// so two slices viewing the same window of one array are one element, and every empty
// slice of a type is one element. KeyOf panics unless Hashable(v).
func KeyOf(v any) any {
	switch x := v.(type) {
	case nil, bool, string:
		return v
	case float64:
		return floatKey(x)
	case int:
		return intKey(int64(x))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return floatKey(rv.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intKey(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if f := float64(u); f < (1<<64) && uint64(f) == u {
			return f
		}
		return u
	case reflect.Map, reflect.Func:
		return refKey{typ: rv.Type(), ptr: rv.Pointer()}
	case reflect.Slice:
		return refKey{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}
	}
	if !rv.Comparable() {
		panic(fmt.Sprintf("commons: unhashable element type %T", v))
	}
	return v
}

// Hashable reports whether v can be a set element. Only values Go cannot compare, such as
// structs holding slices, are refused.
func Hashable(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Func, reflect.Slice:
		return true
	}
	return rv.Comparable()
}

// CheckHashable returns an error wrapping ErrUnhashable when v cannot be a set element.
func CheckHashable(v any) error {
	if Hashable(v) {
		return nil
	}
	return fmt.Errorf("%w: %T", ErrUnhashable, v)
}

func floatKey(f float64) any {
	if math.IsNaN(f) {
		return nanKey{}
	}
	if f == 0 {
		return 0.0
	}
	return f
}

func intKey(i int64) any {
	if f := float64(i); f < (1<<63) && int64(f) == i {
		return f
	}
	return i
}

// SameValueZero reports whether a and b are the same element.
func SameValueZero(a, b any) bool {
	return KeyOf(a) == KeyOf(b)
}

// Canonicalize turns a negative zero into positive zero and leaves everything else alone.
func Canonicalize(v any) any {
	switch x := v.(type) {
	case float64:
		if x == 0 {
			return 0.0
		}
	case float32:
		if x == 0 {
			return float32(0)
		}
	}
	return v
}
