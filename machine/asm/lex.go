// SPDX-License-Identifier: MIT

package asm

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind is a token kind.
type Kind int

const (
	EOF Kind = iota
	Newline
	Ident
	Int
	Colon
	LBracket
	RBracket
	Plus
	Minus
	Comma
)

var kindNames = [...]string{
	EOF: "end of input", Newline: "end of line", Ident: "identifier", Int: "integer",
	Colon: "':'", LBracket: "'['", RBracket: "']'", Plus: "'+'", Minus: "'-'", Comma: "','",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is a lexeme with its 1-based position.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}

var punct = map[rune]Kind{
	':': Colon, '[': LBracket, ']': RBracket, '+': Plus, '-': Minus, ',': Comma,
}

// Lex splits src into tokens. Every source line ends with a Newline token
// and the stream ends with EOF. Text after '#' is ignored.
func Lex(src string) ([]Token, error) {
	var toks []Token
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		ln := i + 1
		rs := []rune(strings.TrimSuffix(line, "\r"))
		col := 0
		for col < len(rs) {
			r := rs[col]
			start := col
			switch {
			case r == '#':
				col = len(rs)
			case unicode.IsSpace(r):
				col++
			case r == '_' || unicode.IsLetter(r):
				for col < len(rs) && (rs[col] == '_' || unicode.IsLetter(rs[col]) || unicode.IsDigit(rs[col])) {
					col++
				}
				toks = append(toks, Token{Kind: Ident, Text: string(rs[start:col]), Line: ln, Col: start + 1})
			case r >= '0' && r <= '9':
				for col < len(rs) && rs[col] >= '0' && rs[col] <= '9' {
					col++
				}
				toks = append(toks, Token{Kind: Int, Text: string(rs[start:col]), Line: ln, Col: start + 1})
			default:
				k, ok := punct[r]
				if !ok {
					return nil, &Error{Line: ln, Col: start + 1, Msg: fmt.Sprintf("unexpected character %q", r)}
				}
				col++
				toks = append(toks, Token{Kind: k, Text: string(r), Line: ln, Col: start + 1})
			}
		}
		if i == len(lines)-1 && len(rs) == 0 {
			// A trailing newline does not open another line.
			break
		}
		toks = append(toks, Token{Kind: Newline, Line: ln, Col: len(rs) + 1})
	}
	last := Token{Kind: EOF, Line: 1, Col: 1}
	if n := len(toks); n > 0 {
		last.Line, last.Col = toks[n-1].Line, toks[n-1].Col+len([]rune(toks[n-1].Text))
	}
	return append(toks, last), nil
}
