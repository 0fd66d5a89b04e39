package mathx

import "golang.org/x/exp/constraints"

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// NonIncreasing reports whether every element is <= its predecessor.
// It returns the first offending index, or -1.
func NonIncreasing[T constraints.Ordered](s []T) int {
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			return i
		}
	}
	return -1
}
