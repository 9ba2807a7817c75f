package math

import (
	stdmath "math"

	"golang.org/x/exp/constraints"
)

func DivCeil[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	if dividend%divisor == 0 {
		return base
	} else {
		return base + 1
	}
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// ToIntegerOrInfinity truncates f toward zero. NaN becomes 0 and infinities are kept,
// so callers can compare against them without ever materializing a count.
func ToIntegerOrInfinity(f float64) float64 {
	if stdmath.IsNaN(f) {
		return 0
	}
	if stdmath.IsInf(f, 0) {
		return f
	}
	t := stdmath.Trunc(f)
	if t == 0 {
		// drop the sign of -0
		return 0
	}
	return t
}
