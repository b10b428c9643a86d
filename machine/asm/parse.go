// SPDX-License-Identifier: MIT

package asm

import (
	"strconv"
	"strings"
)

// OperandKind says how an operand was written.
type OperandKind int

const (
	// Imm is an integer literal.
	Imm OperandKind = iota
	// Reg is one of the registers a..f.
	Reg
	// LabelAddr is a bare label, assembled as an immediate address.
	LabelAddr
	// Mem is [n], positional.
	Mem
	// MemLabel is [label], positional.
	MemLabel
	// Rel is [rb], [rb+n] or [rb-n].
	Rel
)

// Operand is one parsed operand. Name holds the register or label name.
type Operand struct {
	Kind  OperandKind
	Value int64
	Name  string
	Line  int
	Col   int
}

// Stmt is a label definition or an instruction. A line "l: op x" yields two
// statements.
type Stmt struct {
	Label    string
	Mnemonic string
	Operands []Operand
	Line     int
	Col      int
}

// Program is a parsed source file.
type Program struct {
	Stmts []Stmt
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if t.Kind != EOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(k Kind) (Token, error) {
	t := p.next()
	if t.Kind != k {
		return t, errorf(t.Line, t.Col, "expected %s, found %s", k, describe(t))
	}
	return t, nil
}

func describe(t Token) string {
	if t.Text != "" {
		return strconv.Quote(t.Text)
	}
	return t.Kind.String()
}

// Parse builds a Program from a token stream produced by Lex.
func Parse(toks []Token) (*Program, error) {
	if len(toks) == 0 || toks[len(toks)-1].Kind != EOF {
		toks = append(toks, Token{Kind: EOF})
	}
	p := &parser{toks: toks}
	prog := &Program{}
	for {
		t := p.next()
		switch t.Kind {
		case EOF:
			return prog, nil
		case Newline:
			continue
		case Ident:
		default:
			return nil, errorf(t.Line, t.Col, "expected label or mnemonic, found %s", describe(t))
		}

		if p.peek().Kind == Colon {
			p.next()
			prog.Stmts = append(prog.Stmts, Stmt{Label: t.Text, Line: t.Line, Col: t.Col})
			continue
		}

		st := Stmt{Mnemonic: strings.ToLower(t.Text), Line: t.Line, Col: t.Col}
		for {
			k := p.peek().Kind
			if k == Newline || k == EOF {
				break
			}
			if k == Comma && len(st.Operands) > 0 {
				p.next()
			}
			op, err := p.operand()
			if err != nil {
				return nil, err
			}
			st.Operands = append(st.Operands, op)
		}
		prog.Stmts = append(prog.Stmts, st)
	}
}

// signedInt parses an optional sign followed by an integer.
func (p *parser) signedInt() (int64, error) {
	neg := false
	if k := p.peek().Kind; k == Minus || k == Plus {
		neg = p.next().Kind == Minus
	}
	t, err := p.expect(Int)
	if err != nil {
		return 0, err
	}
	text := t.Text
	if neg {
		text = "-" + text
	}
	v, perr := strconv.ParseInt(text, 10, 64)
	if perr != nil {
		return 0, errorf(t.Line, t.Col, "integer %s out of range", t.Text)
	}
	return v, nil
}

func (p *parser) operand() (Operand, error) {
	t := p.peek()
	op := Operand{Line: t.Line, Col: t.Col}
	switch t.Kind {
	case Int, Minus, Plus:
		v, err := p.signedInt()
		op.Kind, op.Value = Imm, v
		return op, err
	case Ident:
		p.next()
		op.Name = t.Text
		if isRegister(t.Text) {
			op.Kind = Reg
		} else {
			op.Kind = LabelAddr
		}
		return op, nil
	case LBracket:
		p.next()
	default:
		p.next()
		return op, errorf(t.Line, t.Col, "expected operand, found %s", describe(t))
	}

	inner := p.peek()
	switch {
	case inner.Kind == Ident && strings.EqualFold(inner.Text, "rb"):
		p.next()
		op.Kind = Rel
		if k := p.peek().Kind; k == Plus || k == Minus {
			v, err := p.signedInt()
			if err != nil {
				return op, err
			}
			op.Value = v
		}
	case inner.Kind == Ident:
		p.next()
		if isRegister(inner.Text) {
			return op, errorf(inner.Line, inner.Col, "register %s cannot be dereferenced", inner.Text)
		}
		op.Kind, op.Name = MemLabel, inner.Text
	default:
		v, err := p.signedInt()
		if err != nil {
			return op, err
		}
		op.Kind, op.Value = Mem, v
	}
	_, err := p.expect(RBracket)
	return op, err
}

func isRegister(name string) bool {
	return len(name) == 1 && name[0] >= 'a' && name[0] <= 'f'
}
