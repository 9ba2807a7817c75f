package commons

import "fmt"

// Op names one of the composite operations.
type Op int

const (
	Union Op = iota + 1
	Intersection
	Difference
	SymmetricDifference
	IsSubsetOf
	IsSupersetOf
	IsDisjointFrom
)

var opNames = map[Op]string{
	Union:               "union",
	Intersection:        "intersection",
	Difference:          "difference",
	SymmetricDifference: "symmetricDifference",
	IsSubsetOf:          "isSubsetOf",
	IsSupersetOf:        "isSupersetOf",
	IsDisjointFrom:      "isDisjointFrom",
}

// Ops lists every operation in declaration order.
var Ops = []Op{Union, Intersection, Difference, SymmetricDifference, IsSubsetOf, IsSupersetOf, IsDisjointFrom}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// IsPredicate reports whether o yields a boolean rather than a new collection.
func (o Op) IsPredicate() bool {
	return o == IsSubsetOf || o == IsSupersetOf || o == IsDisjointFrom
}

// ParseOp accepts the camelCase name of an operation.
func ParseOp(name string) (Op, error) {
	for op, n := range opNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown set operation %q", name)
}
