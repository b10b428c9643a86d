// SPDX-License-Identifier: MIT

package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// piece is one element of a compiled Scan template: either literal text or
// a verb ('d', 's' or 'c').
type piece struct {
	lit  string
	verb byte
}

func compile(format string) ([]piece, error) {
	var pieces []piece
	var lit strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			lit.WriteByte(c)
			continue
		}
		if i+1 >= len(format) {
			return nil, fmt.Errorf("%w: template %q ends with a bare %%", ErrShape, format)
		}
		i++
		switch v := format[i]; v {
		case '%':
			lit.WriteByte('%')
		case 'd', 's', 'c':
			if lit.Len() > 0 {
				pieces = append(pieces, piece{lit: lit.String()})
				lit.Reset()
			}
			pieces = append(pieces, piece{verb: v})
		default:
			return nil, fmt.Errorf("%w: template %q uses unknown verb %%%c", ErrShape, format, v)
		}
	}
	if lit.Len() > 0 {
		pieces = append(pieces, piece{lit: lit.String()})
	}
	return pieces, nil
}

// Scan matches s against a printf-like template and returns the captures in
// order. Verbs:
//
//	%d  an optionally signed decimal integer, captured as int
//	%s  a non-empty string running up to the next literal of the template
//	    (to whitespace if another verb follows, to the end if nothing does)
//	%c  a single rune, captured as rune
//	%%  a literal percent sign
//
// Every literal part must match exactly and the whole input must be
// consumed; otherwise a *Error of KindShape is returned. A %d that does not
// hold a valid int yields KindInt.
func Scan(format, s string) ([]any, error) {
	pieces, err := compile(format)
	if err != nil {
		return nil, err
	}
	var out []any
	pos := 0
	for i, p := range pieces {
		if p.verb == 0 {
			if !strings.HasPrefix(s[pos:], p.lit) {
				return nil, shapeError(s, pos, "expected %q", p.lit)
			}
			pos += len(p.lit)
			continue
		}
		switch p.verb {
		case 'd':
			end := pos
			if end < len(s) && (s[end] == '-' || s[end] == '+') {
				end++
			}
			digits := end
			for end < len(s) && isDigit(s[end]) {
				end++
			}
			if end == digits {
				return nil, &Error{Kind: KindInt, Input: s, Pos: pos, Msg: "expected integer"}
			}
			v, err := strconv.Atoi(s[pos:end])
			if err != nil {
				return nil, &Error{Kind: KindInt, Input: s, Pos: pos, Msg: s[pos:end], Err: err}
			}
			out = append(out, v)
			pos = end
		case 'c':
			r, size := utf8.DecodeRuneInString(s[pos:])
			if size == 0 {
				return nil, shapeError(s, pos, "expected a character")
			}
			out = append(out, r)
			pos += size
		case 's':
			end := stringEnd(s, pos, pieces[i+1:])
			if end <= pos {
				return nil, shapeError(s, pos, "expected a non-empty string")
			}
			out = append(out, s[pos:end])
			pos = end
		}
	}
	if pos != len(s) {
		return nil, shapeError(s, pos, "unexpected trailing input %q", s[pos:])
	}
	return out, nil
}

// stringEnd finds where a %s capture starting at pos stops.
func stringEnd(s string, pos int, rest []piece) int {
	if len(rest) == 0 {
		return len(s)
	}
	if next := rest[0]; next.verb == 0 {
		if i := strings.Index(s[pos:], next.lit); i >= 0 {
			return pos + i
		}
		return len(s)
	}
	i := strings.IndexFunc(s[pos:], unicode.IsSpace)
	if i < 0 {
		return len(s)
	}
	return pos + i
}

// ScanInto runs Scan and stores each capture through the matching pointer
// in dst. Supported targets are *int, *int64, *string and *rune; %d may also
// be stored into *int64 and %c into *string.
func ScanInto(format, s string, dst ...any) error {
	vals, err := Scan(format, s)
	if err != nil {
		return err
	}
	if len(vals) != len(dst) {
		return fmt.Errorf("%w: template %q captures %d values, %d destinations given", ErrShape, format, len(vals), len(dst))
	}
	for i, v := range vals {
		if err := assign(dst[i], v); err != nil {
			return fmt.Errorf("parse: capture %d: %w", i, err)
		}
	}
	return nil
}

func assign(dst, v any) error {
	switch d := dst.(type) {
	case *int:
		if n, ok := v.(int); ok {
			*d = n
			return nil
		}
	case *int64:
		if n, ok := v.(int); ok {
			*d = int64(n)
			return nil
		}
	case *string:
		switch x := v.(type) {
		case string:
			*d = x
			return nil
		case rune:
			*d = string(x)
			return nil
		}
	case *rune:
		if r, ok := v.(rune); ok {
			*d = r
			return nil
		}
	}
	return fmt.Errorf("%w: cannot store %T into %T", ErrShape, v, dst)
}
