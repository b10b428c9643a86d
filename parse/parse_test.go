package parse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/parse"
)

func TestSplitW(t *testing.T) {
	assert.Equal(t, []string{"a", "bb", "c"}, parse.SplitW("  a \t bb\n c  "))
	assert.Empty(t, parse.SplitW("   "))
}

func TestSplitCh(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{"a,,b", []string{"a", "", "b"}},
		{",a,", []string{"a"}},
		{",,a", []string{"", "a"}},
		{"", []string{}},
		{"abc", []string{"abc"}},
	}
	for _, tc := range cases {
		got := parse.SplitCh(tc.in, ',')
		if len(tc.want) == 0 {
			assert.Empty(t, got, tc.in)
			continue
		}
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestSplitStrAndPredicate(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "", "c"}, parse.SplitStr("a->b->->c->", "->"))
	assert.Equal(t, []string{"x"}, parse.SplitStr("x", ""))
	assert.Equal(t, []string{"12", "34", "5"}, parse.Split("12;34:5", func(r rune) bool { return r == ';' || r == ':' }))
	assert.Equal(t, []string{"é", "ü"}, parse.SplitCh("é→ü", '→'))
}

func TestSplitByEmptyLine(t *testing.T) {
	lines := []string{"", "a", "b", "", "", "c", "  ", "d", "e", ""}
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}, {"d", "e"}}, parse.SplitByEmptyLine(lines))
	assert.Empty(t, parse.SplitByEmptyLine([]string{"", ""}))
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parse.Lines("a\r\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, parse.Lines("a\n\nb"))
	assert.Nil(t, parse.Lines(""))
}

func TestGrid(t *testing.T) {
	rows, err := parse.Grid([]string{"#.", ".#"})
	require.NoError(t, err)
	assert.Equal(t, [][]rune{{'#', '.'}, {'.', '#'}}, rows)

	_, err = parse.Grid([]string{"#.", "."})
	assert.ErrorIs(t, err, parse.ErrShape)
}

func TestThings(t *testing.T) {
	got, err := parse.Things[int]("position=< 9,  1> velocity=<-2, 0>")
	require.NoError(t, err)
	assert.Equal(t, []int{9, 1, -2, 0}, got)

	got, err = parse.Ints("1-3 a: 10-20")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 10, 20}, got)

	u, err := parse.Things[uint8]("255,0")
	require.NoError(t, err)
	assert.Equal(t, []uint8{255, 0}, u)

	_, err = parse.Things[uint8]("256")
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrInt)
	var perr *parse.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, parse.KindInt, perr.Kind)
	assert.Equal(t, 0, perr.Pos)

	_, err = parse.Things[int8]("x=-129")
	assert.ErrorIs(t, err, parse.ErrInt)

	none, err := parse.Things[int64]("no numbers here")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestScan(t *testing.T) {
	vals, err := parse.Scan("#%d @ %d,%d: %dx%d", "#123 @ 3,2: 5x4")
	require.NoError(t, err)
	assert.Equal(t, []any{123, 3, 2, 5, 4}, vals)

	vals, err = parse.Scan("%s to %s = %d", "London to Dublin = 464")
	require.NoError(t, err)
	assert.Equal(t, []any{"London", "Dublin", 464}, vals)

	vals, err = parse.Scan("%c%d 100%%", "R-12 100%")
	require.NoError(t, err)
	assert.Equal(t, []any{'R', -12}, vals)
}

func TestScan_Errors(t *testing.T) {
	_, err := parse.Scan("move %d from %d", "move 3 to 4")
	assert.ErrorIs(t, err, parse.ErrShape)
	assert.NotErrorIs(t, err, parse.ErrInt)

	_, err = parse.Scan("move %d", "move x")
	assert.ErrorIs(t, err, parse.ErrInt)

	_, err = parse.Scan("a %d", "a 1 extra")
	assert.ErrorIs(t, err, parse.ErrShape)

	_, err = parse.Scan("bad %q", "bad x")
	assert.ErrorIs(t, err, parse.ErrShape)
}

func TestScanInto(t *testing.T) {
	var (
		name   string
		speed  int
		dur    int64
		letter rune
	)
	err := parse.ScanInto("%s can fly %d km/s for %d seconds %c", "Comet can fly 14 km/s for 10 seconds Q", &name, &speed, &dur, &letter)
	require.NoError(t, err)
	assert.Equal(t, "Comet", name)
	assert.Equal(t, 14, speed)
	assert.Equal(t, int64(10), dur)
	assert.Equal(t, 'Q', letter)

	err = parse.ScanInto("%d", "5", &name)
	assert.ErrorIs(t, err, parse.ErrShape)
	err = parse.ScanInto("%d %d", "5 6", &speed)
	assert.ErrorIs(t, err, parse.ErrShape)
}
