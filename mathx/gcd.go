// SPDX-License-Identifier: MIT

package mathx

import "golang.org/x/exp/constraints"

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Mod returns the Euclidean remainder of a by m, always in [0, |m|).
func Mod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		if m < 0 {
			return r - m
		}
		return r + m
	}
	return r
}

// GCD returns the greatest common divisor of a and b (always non-negative
// for signed inputs).
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// EGCD runs the extended Euclidean algorithm and returns g, x, y such that
// a·x + b·y = g, where g = gcd(a, b) up to sign.
func EGCD[T constraints.Signed](a, b T) (g, x, y T) {
	oldR, r := a, b
	oldS, s := T(1), T(0)
	oldT, t := T(0), T(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	return oldR, oldS, oldT
}

// LCM returns the least common multiple of a and b. LCM(0, x) is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// LCMSlice reduces LCM over xs. An empty slice yields 1.
func LCMSlice[T constraints.Integer](xs []T) T {
	acc := T(1)
	for _, x := range xs {
		acc = LCM(acc, x)
	}
	return acc
}

// Sum adds every element of xs.
func Sum[T Number](xs ...T) T {
	var s T
	for _, x := range xs {
		s += x
	}
	return s
}
