package mathx

import "golang.org/x/exp/constraints"

// RoundDiv returns floor((a + b/2)/b), classic rounding for non-negative a.
// b == 0 yields 0.
func RoundDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// HalfUp returns (a+1)/2 with floor division, i.e. a/2 rounded up for a >= 0.
func HalfUp[T constraints.Integer](a T) T {
	return (a + 1) / 2
}
