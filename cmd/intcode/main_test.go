package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/runner"
)

// echoPlusOne outputs its input, then input+1.
const echoPlusOne = "3,11,4,11,1001,11,1,11,4,11,99,0\n"

func TestParts(t *testing.T) {
	tape, err := parse([]string{echoPlusOne[:len(echoPlusOne)-1]})
	require.NoError(t, err)
	assert.Equal(t, int64(2), part1(tape))
	assert.Equal(t, int64(3), part2(tape))
}

func TestFaultPanics(t *testing.T) {
	assert.Panics(t, func() { runWithInput([]int64{98}, 1) })
	assert.Panics(t, func() { runWithInput([]int64{3, 0, 3, 0, 99}, 1) })
	assert.Panics(t, func() { runWithInput([]int64{99}, 1) })
}

func TestExecute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.txt")
	require.NoError(t, os.WriteFile(path, []byte(echoPlusOne), 0o644))

	p := runner.Puzzle[[]int64, int64, int64]{Parse: parse, Part1: part1, Part2: part2}
	var out bytes.Buffer
	_, err := p.Execute([]string{"2", path}, &out)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "\n\n3\n"))

	require.NoError(t, os.WriteFile(path, []byte("98\n"), 0o644))
	_, err = p.Execute([]string{"1", path}, &out)
	assert.ErrorIs(t, err, runner.ErrSolver)
}
