package set

import (
	"fmt"

	"github.com/tuannh982/setlike/set/commons"
	"github.com/tuannh982/setlike/set/internal"
)

// prepare validates other and reads the receiver size afterwards, since validation may
// run code that mutates the receiver.
func (s *Set) prepare(op commons.Op, other any) (*internal.Record, internal.Plan, error) {
	rec, err := internal.NewRecord(op, other)
	if err != nil {
		return nil, internal.Plan{}, err
	}
	r := s.Size()
	p := internal.Choose(op, r, rec.Size)
	logPlan(p, r, rec.Size)
	return rec, p, nil
}

// finish releases the cursor and drops the result if anything failed.
func finish[T any](cur *internal.Cursor, result *T, errp *error) {
	internal.Release(cur, errp)
	if *errp != nil {
		var zero T
		*result = zero
	}
}

// Union returns a new Set with the receiver's elements followed by the argument's
// elements not already present.
func (s *Set) Union(other any) (result *Set, err error) {
	rec, _, err := s.prepare(commons.Union, other)
	if err != nil {
		return nil, err
	}
	cur, err := rec.Open(commons.Union)
	if err != nil {
		return nil, err
	}
	defer finish(cur, &result, &err)
	out := s.Clone()
	err = cur.Each(func(v any) (bool, error) {
		out.Add(v)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Intersection returns a new Set of the elements present in both operands, in the order
// of whichever operand was enumerated.
func (s *Set) Intersection(other any) (result *Set, err error) {
	rec, plan, err := s.prepare(commons.Intersection, other)
	if err != nil {
		return nil, err
	}
	out := New()
	if plan.Iterate == internal.Receiver {
		for _, e := range s.Values() {
			in, err := rec.Has(e)
			if err != nil {
				return nil, err
			}
			if in {
				out.Add(e)
			}
		}
		return out, nil
	}
	cur, err := rec.Open(commons.Intersection)
	if err != nil {
		return nil, err
	}
	defer finish(cur, &result, &err)
	err = cur.Each(func(v any) (bool, error) {
		if s.Has(v) {
			out.Add(v)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Difference returns a new Set of the receiver's elements that the argument lacks.
func (s *Set) Difference(other any) (result *Set, err error) {
	rec, plan, err := s.prepare(commons.Difference, other)
	if err != nil {
		return nil, err
	}
	out := s.Clone()
	if plan.Iterate == internal.Receiver {
		for _, e := range out.Values() {
			in, err := rec.Has(e)
			if err != nil {
				return nil, err
			}
			if in {
				out.Delete(e)
			}
		}
		return out, nil
	}
	cur, err := rec.Open(commons.Difference)
	if err != nil {
		return nil, err
	}
	defer finish(cur, &result, &err)
	err = cur.Each(func(v any) (bool, error) {
		out.Delete(v)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SymmetricDifference returns a new Set of the elements present in exactly one operand:
// the receiver's survivors in their order, then the argument's new elements.
func (s *Set) SymmetricDifference(other any) (result *Set, err error) {
	rec, _, err := s.prepare(commons.SymmetricDifference, other)
	if err != nil {
		return nil, err
	}
	cur, err := rec.Open(commons.SymmetricDifference)
	if err != nil {
		return nil, err
	}
	defer finish(cur, &result, &err)
	out := s.Clone()
	err = cur.Each(func(v any) (bool, error) {
		v = commons.Canonicalize(v)
		inResult, inThis := out.Has(v), s.Has(v)
		switch {
		case inResult && inThis:
			out.Delete(v)
		case !inResult && !inThis:
			out.Add(v)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Set) IsSubsetOf(other any) (bool, error) {
	rec, plan, err := s.prepare(commons.IsSubsetOf, other)
	if err != nil {
		return false, err
	}
	if plan.ShortCircuit() {
		return plan.Result, nil
	}
	for _, e := range s.Values() {
		in, err := rec.Has(e)
		if err != nil {
			return false, err
		}
		if !in {
			return false, nil
		}
	}
	return true, nil
}

func (s *Set) IsSupersetOf(other any) (result bool, err error) {
	rec, plan, err := s.prepare(commons.IsSupersetOf, other)
	if err != nil {
		return false, err
	}
	if plan.ShortCircuit() {
		return plan.Result, nil
	}
	cur, err := rec.Open(commons.IsSupersetOf)
	if err != nil {
		return false, err
	}
	defer finish(cur, &result, &err)
	result = true
	err = cur.Each(func(v any) (bool, error) {
		if !s.Has(v) {
			result = false
		}
		return result, nil
	})
	return result, err
}

func (s *Set) IsDisjointFrom(other any) (result bool, err error) {
	rec, plan, err := s.prepare(commons.IsDisjointFrom, other)
	if err != nil {
		return false, err
	}
	if plan.Iterate == internal.Receiver {
		for _, e := range s.Values() {
			in, err := rec.Has(e)
			if err != nil {
				return false, err
			}
			if in {
				return false, nil
			}
		}
		return true, nil
	}
	cur, err := rec.Open(commons.IsDisjointFrom)
	if err != nil {
		return false, err
	}
	defer finish(cur, &result, &err)
	result = true
	err = cur.Each(func(v any) (bool, error) {
		if s.Has(v) {
			result = false
		}
		return result, nil
	})
	return result, err
}

// Apply runs op against other and returns either a *Set or a bool.
func (s *Set) Apply(op commons.Op, other any) (any, error) {
	switch op {
	case commons.Union:
		return setResult(s.Union(other))
	case commons.Intersection:
		return setResult(s.Intersection(other))
	case commons.Difference:
		return setResult(s.Difference(other))
	case commons.SymmetricDifference:
		return setResult(s.SymmetricDifference(other))
	case commons.IsSubsetOf:
		return boolResult(s.IsSubsetOf(other))
	case commons.IsSupersetOf:
		return boolResult(s.IsSupersetOf(other))
	case commons.IsDisjointFrom:
		return boolResult(s.IsDisjointFrom(other))
	}
	return nil, fmt.Errorf("unsupported set operation %s", op)
}

func setResult(s *Set, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func boolResult(b bool, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return b, nil
}
