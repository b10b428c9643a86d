// SPDX-License-Identifier: MIT

package machine

import (
	"strconv"
	"strings"
)

// Instruction is one decoded instruction.
type Instruction struct {
	Addr  int64
	Op    Op
	Modes [3]Mode
	Args  []int64
}

// Size is the number of cells the instruction occupies.
func (in Instruction) Size() int {
	if in.Op == Data {
		return len(in.Args)
	}
	return in.Op.Size()
}

// String renders the instruction in assembler syntax: positional operands
// as [n], relative ones as [rb+n], immediates bare.
func (in Instruction) String() string {
	var b strings.Builder
	b.WriteString(in.Op.String())
	for i, a := range in.Args {
		b.WriteByte(' ')
		mode := Immediate
		if in.Op != Data {
			mode = in.Modes[i]
		}
		b.WriteString(FormatOperand(mode, a))
	}
	return b.String()
}

// FormatOperand renders a single operand.
func FormatOperand(mode Mode, v int64) string {
	switch mode {
	case Positional:
		return "[" + strconv.FormatInt(v, 10) + "]"
	case Relative:
		switch {
		case v == 0:
			return "[rb]"
		case v > 0:
			return "[rb+" + strconv.FormatInt(v, 10) + "]"
		default:
			return "[rb" + strconv.FormatInt(v, 10) + "]"
		}
	}
	return strconv.FormatInt(v, 10)
}

func cellAt(mem []int64, addr int64) int64 {
	if addr < 0 || addr >= int64(len(mem)) {
		return 0
	}
	return mem[addr]
}

// Decode decodes the instruction at ip. Failures are returned as *Fault.
func Decode(mem []int64, ip int64) (Instruction, error) {
	if ip < 0 {
		return Instruction{}, &Fault{Kind: FaultIPOutOfRange, IP: ip}
	}
	cell := cellAt(mem, ip)
	if cell < 0 {
		return Instruction{}, &Fault{Kind: FaultUnknownOpcode, IP: ip, Cell: cell}
	}
	op := Op(cell % 100)
	size := op.Size()
	if size == 0 {
		return Instruction{}, &Fault{Kind: FaultUnknownOpcode, IP: ip, Cell: cell}
	}

	in := Instruction{Addr: ip, Op: op, Args: make([]int64, size-1)}
	digits := cell / 100
	for i := range in.Args {
		d := digits % 10
		digits /= 10
		if d > int64(Relative) {
			return Instruction{}, &Fault{Kind: FaultBadMode, IP: ip, Cell: cell}
		}
		in.Modes[i] = Mode(d)
		in.Args[i] = cellAt(mem, ip+1+int64(i))
	}
	if w := op.writes(); w >= 0 && in.Modes[w] == Immediate {
		return Instruction{}, &Fault{Kind: FaultImmediateWrite, IP: ip, Cell: cell}
	}
	return in, nil
}

// Disassemble decodes up to n instructions starting at from. Cells that do
// not decode become one-cell Data entries. It stops at the end of mem.
func Disassemble(mem []int64, from int64, n int) []Instruction {
	var out []Instruction
	addr := max(from, 0)
	for len(out) < n && addr < int64(len(mem)) {
		in, err := Decode(mem, addr)
		if err != nil {
			in = Instruction{Addr: addr, Op: Data, Args: []int64{mem[addr]}}
		}
		out = append(out, in)
		addr += int64(in.Size())
	}
	return out
}
