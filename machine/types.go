// SPDX-License-Identifier: MIT

package machine

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyProgram is returned by Parse for input without any cell.
	ErrEmptyProgram = errors.New("machine: empty program")

	// ErrSnapshot is returned by Load for unreadable snapshots.
	ErrSnapshot = errors.New("machine: invalid snapshot")

	// ErrNegativeAddress is returned by Poke for addresses below zero.
	ErrNegativeAddress = errors.New("machine: negative address")

	// ErrAddressRange is returned by Poke for addresses at or past MaxMemory.
	ErrAddressRange = errors.New("machine: address out of range")
)

// State is the execution state after the most recent step.
type State int

const (
	// Running means the machine can execute the next instruction.
	Running State = iota
	// AwaitingInput means an "in" found the input queue empty; IP still
	// points at that instruction.
	AwaitingInput
	// AwaitingOutput means the last instruction was an "out".
	AwaitingOutput
	// Halted means op 99 was executed.
	Halted
	// Faulted means an invalid instruction stopped the machine; see Fault.
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingInput:
		return "awaiting-input"
	case AwaitingOutput:
		return "awaiting-output"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Stopped reports whether the machine can make no further progress on its
// own.
func (s State) Stopped() bool { return s == Halted || s == Faulted }

// Op is an opcode. Data is a pseudo-op used by the disassembler for cells
// that do not decode.
type Op int64

const (
	Data Op = 0
	Add  Op = 1
	Mul  Op = 2
	In   Op = 3
	Out  Op = 4
	Jnz  Op = 5
	Jz   Op = 6
	Lt   Op = 7
	Eq   Op = 8
	Arb  Op = 9
	Halt Op = 99
)

var opNames = map[Op]string{
	Data: "data", Add: "add", Mul: "mul", In: "in", Out: "out",
	Jnz: "jnz", Jz: "jz", Lt: "lt", Eq: "eq", Arb: "arb", Halt: "halt",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", int64(o))
}

// Size returns the instruction length in cells, or 0 for unknown opcodes.
func (o Op) Size() int {
	switch o {
	case Add, Mul, Lt, Eq:
		return 4
	case Jnz, Jz:
		return 3
	case In, Out, Arb:
		return 2
	case Halt:
		return 1
	}
	return 0
}

// writes returns the operand index written by o, or -1.
func (o Op) writes() int {
	switch o {
	case Add, Mul, Lt, Eq:
		return 2
	case In:
		return 0
	}
	return -1
}

// Mode is an operand addressing mode.
type Mode int8

const (
	Positional Mode = 0
	Immediate  Mode = 1
	Relative   Mode = 2
)

// FaultKind classifies a Fault.
type FaultKind int

const (
	// FaultUnknownOpcode is an opcode outside the instruction table.
	FaultUnknownOpcode FaultKind = iota + 1
	// FaultImmediateWrite is a write operand in immediate mode.
	FaultImmediateWrite
	// FaultBadMode is a mode digit other than 0, 1 or 2.
	FaultBadMode
	// FaultIPOutOfRange is a negative instruction pointer.
	FaultIPOutOfRange
	// FaultNegativeAddress is a memory access below address 0.
	FaultNegativeAddress
	// FaultAddressRange is a write at or past MaxMemory.
	FaultAddressRange
)

// MaxMemory bounds the tape: writes at or past it fault instead of growing
// memory. Reads past the end of memory always return 0.
const MaxMemory int64 = 1 << 24

func (k FaultKind) String() string {
	switch k {
	case FaultUnknownOpcode:
		return "unknown opcode"
	case FaultImmediateWrite:
		return "immediate write"
	case FaultBadMode:
		return "bad mode"
	case FaultIPOutOfRange:
		return "ip out of range"
	case FaultNegativeAddress:
		return "negative address"
	case FaultAddressRange:
		return "address out of range"
	}
	return fmt.Sprintf("fault(%d)", int(k))
}

// Fault describes why a machine entered the Faulted state.
type Fault struct {
	Kind FaultKind
	IP   int64 // address of the faulting instruction
	Cell int64 // raw instruction cell
	Addr int64 // offending address for FaultNegativeAddress and FaultAddressRange
}

func (f *Fault) Error() string {
	if f.Kind == FaultNegativeAddress || f.Kind == FaultAddressRange {
		return fmt.Sprintf("machine: %s %d at ip %d (cell %d)", f.Kind, f.Addr, f.IP, f.Cell)
	}
	return fmt.Sprintf("machine: %s at ip %d (cell %d)", f.Kind, f.IP, f.Cell)
}

// Counts tracks how often one address was executed, read and written.
type Counts struct {
	Exec  int64
	Read  int64
	Write int64
}
