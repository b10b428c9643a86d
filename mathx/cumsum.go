// SPDX-License-Identifier: MIT

package mathx

// CumSum returns the prefix sums of xs: S[0] = 0 and S[i] = xs[0]+…+xs[i-1],
// so len(S) == len(xs)+1.
func CumSum[T Number](xs []T) []T {
	s := make([]T, len(xs)+1)
	for i, x := range xs {
		s[i+1] = s[i] + x
	}
	return s
}

// RangeSum returns xs[i]+…+xs[j-1] given S = CumSum(xs) and 0 <= i <= j <= len(xs).
func RangeSum[T Number](s []T, i, j int) T {
	return s[j] - s[i]
}
