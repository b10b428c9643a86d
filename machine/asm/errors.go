// SPDX-License-Identifier: MIT

package asm

import (
	"fmt"
	"strings"
)

// Error is an assembly error at a 1-based line and column. Source, when
// set, is the offending line and is rendered with a caret under Col.
type Error struct {
	Line   int
	Col    int
	Msg    string
	Source string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("asm: %d:%d: %s", e.Line, e.Col, e.Msg)
	if e.Source == "" {
		return msg
	}
	var pad strings.Builder
	rs := []rune(e.Source)
	for i := 0; i < e.Col-1; i++ {
		if i < len(rs) && rs[i] == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteRune(' ')
		}
	}
	return msg + "\n" + e.Source + "\n" + pad.String() + "^"
}

func errorf(line, col int, format string, args ...any) *Error {
	return &Error{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}
