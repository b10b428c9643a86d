// SPDX-License-Identifier: MIT

package parse

import (
	"errors"
	"fmt"
)

// Sentinel errors for parse failures.
var (
	// ErrInt indicates a number could not be parsed or does not fit its type.
	ErrInt = errors.New("parse: invalid integer")

	// ErrShape indicates the input does not match the expected layout.
	ErrShape = errors.New("parse: input does not match expected shape")
)

// Kind distinguishes integer failures from shape mismatches.
type Kind int

const (
	// KindShape is a literal or structural mismatch.
	KindShape Kind = iota
	// KindInt is an integer conversion failure.
	KindInt
)

func (k Kind) String() string {
	if k == KindInt {
		return "int"
	}
	return "shape"
}

// Error reports where parsing failed.
type Error struct {
	Kind  Kind
	Input string // the whole input being parsed
	Pos   int    // byte offset of the failure within Input
	Msg   string
	Err   error // underlying cause, e.g. *strconv.NumError
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("parse: %s error at offset %d in %q", e.Kind, e.Pos, e.Input)
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is lets errors.Is match ErrInt and ErrShape by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInt:
		return e.Kind == KindInt
	case ErrShape:
		return e.Kind == KindShape
	}
	return false
}

func (e *Error) Unwrap() error { return e.Err }

func shapeError(input string, pos int, format string, args ...any) *Error {
	return &Error{Kind: KindShape, Input: input, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
