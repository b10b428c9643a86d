// SPDX-License-Identifier: MIT

package mathx

import (
	"math"
	"math/bits"
)

// MulMod returns a·b mod m for m > 0, computing the product in 128 bits.
// The result lies in [0, m).
func MulMod(a, b, m int64) int64 {
	a, b = Mod(a, m), Mod(b, m)
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return int64(bits.Rem64(hi, lo, uint64(m)))
}

// AddMod returns a+b mod m without intermediate overflow.
func AddMod(a, b, m int64) int64 {
	a, b = Mod(a, m), Mod(b, m)
	if a >= m-b {
		return a - (m - b)
	}
	return a + b
}

// ModExp returns base^exp mod m by square-and-multiply. A negative exponent
// or non-positive modulus yields 0; m == 1 yields 0.
func ModExp(base, exp, m int64) int64 {
	if m <= 1 || exp < 0 {
		return 0
	}
	result := int64(1)
	b := Mod(base, m)
	for exp > 0 {
		if exp&1 == 1 {
			result = MulMod(result, b, m)
		}
		b = MulMod(b, b, m)
		exp >>= 1
	}
	return result
}

// ModInverse returns x with a·x ≡ 1 (mod m), and false when a and m are not
// coprime or m <= 0.
func ModInverse(a, m int64) (int64, bool) {
	if m <= 0 {
		return 0, false
	}
	g, x, _ := EGCD(Mod(a, m), m)
	if g != 1 {
		return 0, false
	}
	return Mod(x, m), true
}

// ChineseRemainder returns the smallest non-negative x with
// x ≡ residues[i] (mod moduli[i]) for every i, together with true.
// x lies in [0, lcm(moduli)), which equals the product of the moduli when
// they are pairwise coprime.
//
// Moduli need not be coprime: congruences are merged pairwise and the call
// reports false only if the system is inconsistent, the slices differ in
// length, or a modulus is not positive. An empty system yields (0, true).
func ChineseRemainder(residues, moduli []int64) (int64, bool) {
	if len(residues) != len(moduli) {
		return 0, false
	}
	x, m := int64(0), int64(1)
	for i, mi := range moduli {
		if mi <= 0 {
			return 0, false
		}
		ai := Mod(residues[i], mi)
		g, p, _ := EGCD(m, mi)
		diff := ai - x
		if diff%g != 0 {
			return 0, false
		}
		step := mi / g
		// m·t ≡ diff (mod mi) → t = (diff/g)·p mod (mi/g)
		t := MulMod(Mod(diff/g, step), Mod(p, step), step)
		l := m / g
		if l > math.MaxInt64/mi {
			return 0, false
		}
		l *= mi
		x = AddMod(x, MulMod(m, t, l), l)
		m = l
	}
	return x, true
}

// BabyStepGiantStep returns the smallest x in [0, m) with g^x ≡ h (mod m),
// and false when no such x exists. It uses a table of ⌈√m⌉ baby steps;
// when gcd(g, m) != 1 the inverse giant step is unavailable and the search
// falls back to a linear scan.
func BabyStepGiantStep(g, h, m int64) (int64, bool) {
	if m <= 0 {
		return 0, false
	}
	if m == 1 {
		return 0, true
	}
	g, h = Mod(g, m), Mod(h, m)

	inv, ok := ModInverse(g, m)
	if !ok {
		cur := Mod(1, m)
		for x := int64(0); x < m; x++ {
			if cur == h {
				return x, true
			}
			cur = MulMod(cur, g, m)
		}
		return 0, false
	}

	n := int64(math.Ceil(math.Sqrt(float64(m))))
	baby := make(map[int64]int64, n)
	cur := int64(1)
	for j := int64(0); j < n; j++ {
		if _, seen := baby[cur]; !seen {
			baby[cur] = j
		}
		cur = MulMod(cur, g, m)
	}

	factor := ModExp(inv, n, m) // g^-n
	gamma := h
	for i := int64(0); i <= n; i++ {
		if j, hit := baby[gamma]; hit {
			if x := i*n + j; x < m {
				return x, true
			}
			return 0, false
		}
		gamma = MulMod(gamma, factor, m)
	}
	return 0, false
}
