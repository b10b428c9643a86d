// SPDX-License-Identifier: MIT

// Command intcode runs an Intcode program with the puzzle input for the
// chosen part (1 or 2) and prints the last value it outputs.
//
//	intcode <part:1|2> <program.txt>
package main

import (
	"strings"

	"github.com/katalvlaran/advent/machine"
	"github.com/katalvlaran/advent/runner"
)

func parse(lines []string) ([]int64, error) {
	return machine.Parse(strings.Join(lines, "\n"))
}

// runWithInput runs tape to completion and returns the last output. A
// fault or a program waiting for more input panics; the runner reports it.
func runWithInput(tape []int64, input int64) int64 {
	m := machine.New(tape)
	m.AddInput(input)
	switch m.Run() {
	case machine.Faulted:
		panic(m.Fault())
	case machine.AwaitingInput:
		panic("program needs more input")
	}
	out := m.Output()
	if len(out) == 0 {
		panic("program produced no output")
	}
	return out[len(out)-1]
}

func part1(tape []int64) int64 { return runWithInput(tape, 1) }

func part2(tape []int64) int64 { return runWithInput(tape, 2) }

func main() {
	runner.Run(parse, part1, part2)
}
