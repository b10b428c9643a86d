// SPDX-License-Identifier: MIT

// Package runner is the shared entry point of every puzzle program.
//
// A program supplies a parse function and two solvers:
//
//	func main() {
//		runner.Run(parse, part1, part2)
//	}
//
// and is invoked as
//
//	day07 <part:1|2> <path>
//
// Run reads the input file as lines (trailing "\r" stripped, no final empty
// line), parses it, runs the requested part and prints
//
//	read: 112µs, parse: 35µs, solve: 2.1ms
//
//	<answer>
//
// Any failure (bad arguments, I/O error, parse error, solver panic) is
// logged through logrus and the process exits with status 1.
//
// Configuration is read from the YAML file named by AOC_CONFIG, or from
// aoc.yaml in the working directory when present:
//
//	log_level: debug   # logrus level, default warn
//	profile: cpu       # "", cpu or mem
//	profile_dir: prof  # where pkg/profile writes, default "."
//	draw_dir: out      # prefix for drawer output, default "."
//	draw: true         # let solvers write visualisations
//	stopwatch: true    # also log the phase breakdown at Info
//
// Profiling covers the parse and solve phases only; a run that fails to
// read its input writes no profile.
//
// AOC_LOG_LEVEL and AOC_PROFILE override the file. Active returns the
// configuration in effect during a run.
//
// Errors:
//
//	ErrUsage      - wrong number of arguments.
//	ErrPart       - part is not 1 or 2.
//	ErrSolver     - a parse or solve function panicked.
//	ErrBadConfig  - invalid configuration value.
package runner
