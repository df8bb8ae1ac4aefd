package util

import "golang.org/x/exp/constraints"

// Mod is the floor modulo: for positive m the result is in [0, m).
func Mod[A constraints.Integer](n A, m A) A {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// FloorDiv rounds towards negative infinity, pairing with Mod so that
// FloorDiv(n, m)*m + Mod(n, m) == n.
func FloorDiv[A constraints.Integer](n A, m A) A {
	return (n - Mod(n, m)) / m
}

func Abs[A constraints.Signed](n A) A {
	if n < 0 {
		return -n
	}
	return n
}
