package internal

import (
	"math"

	"github.com/tuannh982/setlike/set/commons"
	umath "github.com/tuannh982/setlike/utils/math"
)

// Record is the validated view of a composite operation's argument. It borrows Source
// for one call only.
type Record struct {
	Source commons.Object
	// Size is fixed at validation time and may be +Inf.
	Size float64
	has  commons.Callable
	keys commons.Callable
}

// NewRecord validates other for op. Every step reads at most one property, in order,
// and the first failure is returned without attempting the remaining steps.
func NewRecord(op commons.Op, other any) (*Record, error) {
	obj, ok := asObject(other)
	if !ok {
		return nil, commons.NewError(commons.NotAnObject, op)
	}
	rawSize, err := obj.Get(commons.PropSize)
	if err != nil {
		return nil, err
	}
	numSize, err := commons.ToNumber(rawSize)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(numSize) {
		return nil, commons.NewError(commons.MissingOrInvalidSize, op)
	}
	size := umath.ToIntegerOrInfinity(numSize)
	if size < 0 {
		return nil, commons.NewError(commons.NegativeSize, op)
	}
	has, err := callableProp(obj, commons.PropHas)
	if err != nil {
		return nil, err
	}
	if has == nil {
		return nil, commons.NewError(commons.HasNotCallable, op)
	}
	keys, err := callableProp(obj, commons.PropKeys)
	if err != nil {
		return nil, err
	}
	if keys == nil {
		return nil, commons.NewError(commons.KeysNotCallable, op)
	}
	return &Record{
		Source: obj,
		Size:   size,
		has:    has,
		keys:   keys,
	}, nil
}

func asObject(v any) (commons.Object, bool) {
	switch x := v.(type) {
	case commons.Object:
		return x, true
	case commons.SetLike:
		return commons.FromSetLike(x), true
	}
	return nil, false
}

func callableProp(obj commons.Object, name string) (commons.Callable, error) {
	v, err := obj.Get(name)
	if err != nil {
		return nil, err
	}
	c, _ := v.(commons.Callable)
	return c, nil
}

// Has calls the argument's membership test with exactly one argument.
func (r *Record) Has(v any) (bool, error) {
	res, err := r.has.Call(v)
	if err != nil {
		return false, err
	}
	return commons.ToBoolean(res), nil
}

// Open calls the argument's keys with no arguments and wraps the result in a Cursor.
func (r *Record) Open(op commons.Op) (*Cursor, error) {
	res, err := r.keys.Call()
	if err != nil {
		return nil, err
	}
	it, ok := res.(commons.Iterator)
	if !ok {
		return nil, commons.NewError(commons.KeysNotIterator, op)
	}
	return &Cursor{it: it}, nil
}
