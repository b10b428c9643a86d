// SPDX-License-Identifier: MIT

// Package asm assembles a small line-oriented assembly language into
// Intcode tapes runnable by package machine.
//
// Syntax:
//
//	# comment
//	start:              # label, binds to the next instruction
//	    in a            # registers a..f are cells appended after the code
//	loop:
//	    out a
//	    add a -1 a
//	    jnz a loop      # a bare label is an immediate address
//	    halt
//
// Operands are separated by spaces (commas are accepted too):
//
//	42, -7       immediate
//	a .. f       register (positional)
//	name         label address (immediate)
//	[12] [name]  positional memory
//	[rb] [rb+3] [rb-3]
//	             relative to the relative base
//
// Mnemonics are add, mul, in, out, jnz, jz, lt, eq, arb and halt, with the
// aliases jt (jnz), jf (jz) and hlt (halt). Pseudo-ops:
//
//	mov src dst   ->  add src 0 dst
//	jmp target    ->  jnz 1 target
//	data v...     ->  raw cells (integers or label addresses)
//
// All errors are *Error values carrying a line and column; when produced by
// Assemble they also render the source line with a caret.
package asm
