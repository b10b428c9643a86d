// SPDX-License-Identifier: MIT

// Package mathx collects the integer number theory used across puzzle
// solutions: gcd/lcm, extended gcd, modular exponentiation and inverse,
// Chinese remainder reconstruction, baby-step giant-step discrete
// logarithms, and prefix sums for O(1) range queries.
//
// Generic helpers are constrained with golang.org/x/exp/constraints. The
// modular helpers work on int64 and route every product through a 128-bit
// intermediate (MulMod), so operands up to 63 bits never overflow.
//
// Complexity:
//
//   - GCD, EGCD, ModInverse: O(log min(a,b))
//   - ModExp:                O(log exp)
//   - ChineseRemainder:      O(k · log M) for k congruences
//   - BabyStepGiantStep:     O(√m) time and memory
//   - CumSum:                O(n); RangeSum O(1)
package mathx
