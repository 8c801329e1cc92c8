package math

import "golang.org/x/exp/constraints"

func DivCeil[T constraints.Integer](dividend, divisor T) T {
	base := dividend / divisor
	if dividend%divisor == 0 {
		return base
	} else {
		return base + 1
	}
}

// Mod returns the remainder of a divided by m, always in [0, m) for m > 0.
func Mod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
