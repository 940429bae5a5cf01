package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Gcd returns the greatest common divisor of two non-negative integers.
// Gcd(n, 0) and Gcd(0, n) are n.
func Gcd[A constraints.Integer](a A, b A) A {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// SortedCopy returns an ascending copy, leaving the input order alone.
func SortedCopy(vals []float64) []float64 {
	res := make([]float64, len(vals))
	copy(res, vals)
	sort.Float64s(res)
	return res
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}
