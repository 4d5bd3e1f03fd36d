// Package maths holds the little bits of integer arithmetic the solvers
// share.
package maths

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Gcd returns the greatest common divisor by Euclid's algorithm.
func Gcd[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lcm folds the lowest common multiple over nums; ok is false for an
// empty slice.
func Lcm[T Integer](nums []T) (result T, ok bool) {
	if len(nums) == 0 {
		return 0, false
	}
	result = nums[0]
	for _, n := range nums[1:] {
		result = result / Gcd(result, n) * n
	}
	return result, true
}
