// SPDX-License-Identifier: MIT

package asm

import (
	"strings"

	"github.com/katalvlaran/advent/machine"
)

// Registers is the number of register cells (a..f) appended after the
// code when any register is used.
const Registers = 6

type opDef struct {
	op    machine.Op
	arity int
	write int // operand index written, or -1
}

var opcodes = map[string]opDef{
	"add":  {machine.Add, 3, 2},
	"mul":  {machine.Mul, 3, 2},
	"in":   {machine.In, 1, 0},
	"out":  {machine.Out, 1, -1},
	"jnz":  {machine.Jnz, 2, -1},
	"jt":   {machine.Jnz, 2, -1},
	"jz":   {machine.Jz, 2, -1},
	"jf":   {machine.Jz, 2, -1},
	"lt":   {machine.Lt, 3, 2},
	"eq":   {machine.Eq, 3, 2},
	"arb":  {machine.Arb, 1, -1},
	"halt": {machine.Halt, 0, -1},
	"hlt":  {machine.Halt, 0, -1},
}

// lower rewrites pseudo-ops into real instructions. data is handled by the
// caller.
func lower(st Stmt) (opDef, []Operand, error) {
	ops := st.Operands
	switch st.Mnemonic {
	case "mov":
		if len(ops) != 2 {
			return opDef{}, nil, arityError(st, 2)
		}
		zero := Operand{Kind: Imm, Line: st.Line, Col: st.Col}
		return opcodes["add"], []Operand{ops[0], zero, ops[1]}, nil
	case "jmp":
		if len(ops) != 1 {
			return opDef{}, nil, arityError(st, 1)
		}
		one := Operand{Kind: Imm, Value: 1, Line: st.Line, Col: st.Col}
		return opcodes["jnz"], []Operand{one, ops[0]}, nil
	}
	def, ok := opcodes[st.Mnemonic]
	if !ok {
		return opDef{}, nil, errorf(st.Line, st.Col, "unknown mnemonic %q", st.Mnemonic)
	}
	if len(ops) != def.arity {
		return opDef{}, nil, arityError(st, def.arity)
	}
	return def, ops, nil
}

func arityError(st Stmt, want int) *Error {
	return errorf(st.Line, st.Col, "%s expects %d operand(s), got %d", st.Mnemonic, want, len(st.Operands))
}

// Generate lays out prog and returns the tape. Labels resolve to the
// address of the next instruction; registers live right after the code.
func Generate(prog *Program) ([]int64, error) {
	labels := make(map[string]int64)
	var addr int64
	usesRegs := false
	for _, st := range prog.Stmts {
		if st.Label != "" {
			if isRegister(st.Label) || strings.EqualFold(st.Label, "rb") {
				return nil, errorf(st.Line, st.Col, "label %q is a reserved name", st.Label)
			}
			if _, dup := labels[st.Label]; dup {
				return nil, errorf(st.Line, st.Col, "label %q redefined", st.Label)
			}
			labels[st.Label] = addr
			continue
		}
		for _, o := range st.Operands {
			usesRegs = usesRegs || o.Kind == Reg
		}
		if st.Mnemonic == "data" {
			if len(st.Operands) == 0 {
				return nil, errorf(st.Line, st.Col, "data expects at least one operand")
			}
			addr += int64(len(st.Operands))
			continue
		}
		def, _, err := lower(st)
		if err != nil {
			return nil, err
		}
		addr += int64(def.op.Size())
	}
	end := addr

	value := func(o Operand) (int64, machine.Mode, error) {
		switch o.Kind {
		case Imm:
			return o.Value, machine.Immediate, nil
		case Reg:
			return end + int64(o.Name[0]-'a'), machine.Positional, nil
		case Mem:
			return o.Value, machine.Positional, nil
		case Rel:
			return o.Value, machine.Relative, nil
		}
		a, ok := labels[o.Name]
		if !ok {
			return 0, 0, errorf(o.Line, o.Col, "undefined label %q", o.Name)
		}
		if o.Kind == MemLabel {
			return a, machine.Positional, nil
		}
		return a, machine.Immediate, nil
	}

	tape := make([]int64, 0, end+Registers)
	for _, st := range prog.Stmts {
		if st.Label != "" {
			continue
		}
		if st.Mnemonic == "data" {
			for _, o := range st.Operands {
				v, mode, err := value(o)
				if err != nil {
					return nil, err
				}
				if mode != machine.Immediate {
					return nil, errorf(o.Line, o.Col, "data operands must be integers or labels")
				}
				tape = append(tape, v)
			}
			continue
		}
		def, ops, _ := lower(st)
		cell := int64(def.op)
		args := make([]int64, len(ops))
		scale := int64(100)
		for i, o := range ops {
			v, mode, err := value(o)
			if err != nil {
				return nil, err
			}
			if i == def.write && mode == machine.Immediate {
				return nil, errorf(o.Line, o.Col, "immediate write operand")
			}
			cell += int64(mode) * scale
			scale *= 10
			args[i] = v
		}
		tape = append(tape, cell)
		tape = append(tape, args...)
	}
	if usesRegs {
		tape = append(tape, make([]int64, Registers)...)
	}
	return tape, nil
}

// Assemble lexes, parses and generates src. Errors are *Error with Source
// set to the offending line.
func Assemble(src string) ([]int64, error) {
	tape, err := assemble(src)
	if e, ok := err.(*Error); ok {
		lines := strings.Split(src, "\n")
		if e.Line >= 1 && e.Line <= len(lines) {
			e.Source = strings.TrimSuffix(lines[e.Line-1], "\r")
		}
	}
	return tape, err
}

func assemble(src string) ([]int64, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	prog, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	return Generate(prog)
}
