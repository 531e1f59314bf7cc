// Package mathx implements small generic integer helpers that round towards
// negative infinity, as world coordinates require.
package mathx

import "golang.org/x/exp/constraints"

// FloorDiv returns a/b rounded towards negative infinity. b must be positive.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// FloorMod returns the non-negative remainder of a/b. b must be positive.
func FloorMod[T constraints.Signed](a, b T) T {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Abs ...
func Abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
