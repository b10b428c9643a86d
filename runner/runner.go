// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/advent/parse"
)

var log = logrus.WithField("component", "runner")

// active is the configuration applied by the last Main call.
var active = DefaultConfig()

// Active returns the configuration in effect, so solvers can consult
// settings such as Draw and DrawDir.
func Active() Config { return active }

// ErrNotUTF8 is returned by ReadLines for input that is not valid UTF-8.
var ErrNotUTF8 = errors.New("runner: input is not valid UTF-8")

// ReadLines reads all of r and splits it with parse.Lines.
func ReadLines(r io.Reader) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, ErrNotUTF8
	}
	return parse.Lines(string(b)), nil
}

// ReadFile opens path and returns its lines.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// Execute runs one part of the puzzle for args ("<part> <path>") and writes
// the timing line, a blank line and the answer to stdout.
func (p Puzzle[P, A1, A2]) Execute(args []string, stdout io.Writer) (Timings, error) {
	return p.execute(args, stdout, Config{})
}

// execute is Execute with cfg's profiler wrapped around parse and solve.
func (p Puzzle[P, A1, A2]) execute(args []string, stdout io.Writer, cfg Config) (Timings, error) {
	var t Timings
	if len(args) != 2 {
		return t, ErrUsage
	}
	var part int
	switch args[0] {
	case "1":
		part = 1
	case "2":
		part = 2
	default:
		return t, fmt.Errorf("%w: got %q", ErrPart, args[0])
	}

	start := time.Now()
	lines, err := ReadFile(args[1])
	if err != nil {
		return t, fmt.Errorf("runner: read %s: %w", args[1], err)
	}
	t.Read = time.Since(start)

	stop, err := cfg.StartProfile()
	if err != nil {
		return t, err
	}
	defer stop()

	start = time.Now()
	var parsed P
	err = protect(func() error {
		var perr error
		parsed, perr = p.Parse(lines)
		return perr
	})
	if err != nil {
		return t, fmt.Errorf("runner: parse %s: %w", args[1], err)
	}
	t.Parse = time.Since(start)

	start = time.Now()
	var answer any
	err = protect(func() error {
		if part == 1 {
			answer = p.Part1(parsed)
		} else {
			answer = p.Part2(parsed)
		}
		return nil
	})
	if err != nil {
		return t, fmt.Errorf("runner: part %d: %w", part, err)
	}
	t.Solve = time.Since(start)

	_, err = fmt.Fprintf(stdout, "read: %v, parse: %v, solve: %v\n\n%v\n", t.Read, t.Parse, t.Solve, answer)
	return t, err
}

// protect runs fn, converting a panic into an ErrSolver error.
func protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSolver, r)
		}
	}()
	return fn()
}

// Run is the main function of a day program. It loads the configuration,
// executes the part named by os.Args and exits non-zero on failure.
func Run[P, A1, A2 any](parser func([]string) (P, error), part1 func(P) A1, part2 func(P) A2) {
	os.Exit(Main(Puzzle[P, A1, A2]{Parse: parser, Part1: part1, Part2: part2}, os.Args[1:], os.Stdout))
}

// Main is Run without the os.Exit; it returns the process exit code.
func Main[P, A1, A2 any](p Puzzle[P, A1, A2], args []string, stdout io.Writer) int {
	cfg, err := ConfigFromEnv()
	if err != nil {
		log.WithError(err).Error("configuration")
		return 1
	}
	if err := cfg.Apply(); err != nil {
		log.WithError(err).Error("configuration")
		return 1
	}
	active = cfg

	t, err := p.execute(args, stdout, cfg)
	if err != nil {
		log.WithFields(logrus.Fields{
			"args": args,
		}).WithError(err).Error("run failed")
		return 1
	}
	entry := log.WithFields(logrus.Fields{
		"read":  t.Read,
		"parse": t.Parse,
		"solve": t.Solve,
		"total": t.Read + t.Parse + t.Solve,
	})
	if cfg.Stopwatch {
		entry.Info("stopwatch")
	} else {
		entry.Debug("phase timings")
	}
	return 0
}
