// SPDX-License-Identifier: MIT

package parse

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Things extracts every maximal run of decimal digits from s, each with an
// optional leading '-', and converts them to T. A '-' counts as a sign only
// when it is not directly preceded by a digit, so "10-20" yields 10 and 20
// while "x=-3" yields -3. Any surrounding punctuation is ignored.
func Things[T constraints.Integer](s string) ([]T, error) {
	var out []T
	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			i++
			continue
		}
		start := i
		if start > 0 && s[start-1] == '-' && (start < 2 || !isDigit(s[start-2])) {
			start--
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		v, err := convert[T](s, start, i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Ints is Things[int].
func Ints(s string) ([]int, error) {
	return Things[int](s)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// convert parses s[start:end] as T, reporting overflow for T's width.
func convert[T constraints.Integer](s string, start, end int) (T, error) {
	field := s[start:end]
	var zero T
	signed := ^zero < 0
	if signed {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil || int64(T(v)) != v {
			return zero, &Error{Kind: KindInt, Input: s, Pos: start, Msg: field, Err: err}
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(field, 10, 64)
	if err != nil || uint64(T(v)) != v {
		return zero, &Error{Kind: KindInt, Input: s, Pos: start, Msg: field, Err: err}
	}
	return T(v), nil
}
