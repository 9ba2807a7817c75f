package internal

import (
	"fmt"

	"github.com/tuannh982/setlike/set/commons"
	"github.com/tuannh982/setlike/utils/math"
)

// Side is the operand whose elements an operation enumerates.
type Side int

const (
	// None means the result is known from the sizes alone.
	None Side = iota
	Receiver
	Argument
)

func (s Side) String() string {
	return [...]string{"none", "receiver", "argument"}[s]
}

type Plan struct {
	Op      commons.Op
	Iterate Side
	// Result holds the answer of a predicate decided by sizes alone.
	Result bool
	// Lookups bounds the membership tests the plan performs.
	Lookups float64
}

func (p Plan) ShortCircuit() bool {
	return p.Iterate == None
}

// Choose picks the enumerated side for op given the receiver size r and the argument's
// reported size s. Ties go to the receiver, whose elements are already at hand.
func Choose(op commons.Op, r int, s float64) Plan {
	rs := float64(r)
	p := Plan{Op: op}
	switch op {
	case commons.Union, commons.SymmetricDifference:
		p.Iterate = Argument
		p.Lookups = s
	case commons.IsSubsetOf:
		if rs > s {
			return p
		}
		p.Iterate = Receiver
		p.Lookups = rs
	case commons.IsSupersetOf:
		if rs < s {
			return p
		}
		p.Iterate = Argument
		p.Lookups = s
	case commons.Intersection, commons.Difference, commons.IsDisjointFrom:
		if rs <= s {
			p.Iterate = Receiver
		} else {
			p.Iterate = Argument
		}
		p.Lookups = math.Min(rs, s)
	default:
		panic(fmt.Sprintf("internal: no plan for %s", op))
	}
	return p
}
