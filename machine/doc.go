// SPDX-License-Identifier: MIT

// Package machine implements the Intcode register machine: a tape of
// int64 cells, an instruction pointer, a relative base and FIFO input and
// output queues.
//
// An instruction cell holds the opcode in its two low decimal digits and
// the modes of operands 1..3 in the next three digits, least significant
// first. Modes are 0 positional (operand is an address), 1 immediate
// (operand is the value) and 2 relative (operand plus relative base is an
// address). Write operands are never immediate.
//
//	op  name  effect                       size
//	1   add   c = a + b                     4
//	2   mul   c = a * b                     4
//	3   in    a = pop input, block if empty 2
//	4   out   push a to output              2
//	5   jnz   if a != 0 { ip = b }          3
//	6   jz    if a == 0 { ip = b }          3
//	7   lt    c = a < b ? 1 : 0             4
//	8   eq    c = a == b ? 1 : 0            4
//	9   arb   rb += a                       2
//	99  halt                                1
//
// Memory reads past the end return 0 and never grow the tape; writes past
// the end grow it, up to MaxMemory cells. A write at or past MaxMemory
// faults with FaultAddressRange.
//
// Driving a Machine:
//
//	m := machine.New(tape)
//	m.AddInput(5)
//	m.Run()                  // until Halted, Faulted or AwaitingInput
//	out := m.DrainOutput()
//
//	for v, ok := m.RunToNextOutput(); ok; v, ok = m.RunToNextOutput() {
//		...
//	}
//
// A Machine is single-threaded and fully deterministic given its input.
// Clone returns an independent copy, so speculative runs never disturb the
// original. Save and Load persist a complete snapshot (gob, zstd-compressed).
//
// The Debugger type wraps a Machine with breakpoints, disassembly, paged
// memory dumps and execute/read/write counters. Package asm assembles a
// small assembly language to tapes.
//
// Errors:
//
//	*Fault          - the machine stopped on an invalid instruction.
//	ErrEmptyProgram - Parse was given no cells.
//	ErrSnapshot     - Load could not decode a snapshot.
package machine
