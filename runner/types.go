// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"time"
)

var (
	// ErrUsage is returned when the arguments are not "<part> <path>".
	ErrUsage = errors.New("runner: usage: <part:1|2> <path>")

	// ErrPart is returned when the part argument is not 1 or 2.
	ErrPart = errors.New("runner: part must be 1 or 2")

	// ErrSolver wraps a panic recovered from a parse or solve function.
	ErrSolver = errors.New("runner: solver panicked")

	// ErrBadConfig indicates an invalid configuration value.
	ErrBadConfig = errors.New("runner: invalid configuration")
)

// Puzzle bundles the three functions a day program provides.
type Puzzle[P, A1, A2 any] struct {
	Parse func(lines []string) (P, error)
	Part1 func(P) A1
	Part2 func(P) A2
}

// Timings records the duration of each phase of one execution.
type Timings struct {
	Read  time.Duration
	Parse time.Duration
	Solve time.Duration
}
