package grid_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/point"
)

func pt(x, y int) point.Point { return point.Point{X: x, Y: y} }

//----------------------------------------------------------------------------//
// Dense
//----------------------------------------------------------------------------//

func TestDenseFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.DenseFromRows(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDense_GetSetRemove(t *testing.T) {
	g := grid.NewDense(3, 2, '.', grid.WithBlank('#'))
	ext, ok := g.Extents()
	require.True(t, ok)
	assert.Equal(t, point.Extent{Max: pt(2, 1)}, ext)

	g.Set(pt(1, 1), 'x')
	assert.Equal(t, 'x', g.At(pt(1, 1)))

	// Out-of-bounds writes are ignored and reads report false.
	g.Set(pt(5, 5), 'y')
	_, ok = g.Get(pt(5, 5))
	assert.False(t, ok)

	g.Remove(pt(1, 1))
	v, ok := g.Get(pt(1, 1))
	assert.True(t, ok, "dense cells stay set after Remove")
	assert.Equal(t, '#', v)
}

func TestDense_PointsMatchGet(t *testing.T) {
	g, err := grid.DenseFromLines([]string{"ab", "cd", "ef"}, func(r rune) rune { return r })
	require.NoError(t, err)
	pts := g.Points()
	assert.Len(t, pts, 6)
	assert.Equal(t, pt(0, 0), pts[0])
	assert.Equal(t, pt(1, 0), pts[1])
	for _, p := range pts {
		_, ok := g.Get(p)
		assert.True(t, ok)
	}
	assert.Equal(t, []rune("cd"), g.Row(1))
}

func TestDense_TransposeRotate(t *testing.T) {
	g, err := grid.DenseFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr := g.Transpose()
	assert.Equal(t, 2, tr.Width())
	assert.Equal(t, 3, tr.Height())
	assert.Equal(t, []int{3, 6}, tr.Row(2))

	r := g.RotateRight()
	assert.Equal(t, []int{4, 1}, r.Row(0))
	assert.Equal(t, []int{6, 3}, r.Row(2))

	full := g.RotateRight().RotateRight().RotateRight().RotateRight()
	assert.True(t, grid.Equal[int](g, full))
}

func TestDense_CloneIndependent(t *testing.T) {
	g := grid.NewDense(2, 2, 0)
	c := g.Clone()
	c.Set(pt(0, 0), 7)
	assert.Equal(t, 0, g.At(pt(0, 0)))
	assert.NotEqual(t, g.Hash(), c.Hash())
	c.Set(pt(0, 0), 0)
	assert.Equal(t, g.Hash(), c.Hash())
}

//----------------------------------------------------------------------------//
// Sparse
//----------------------------------------------------------------------------//

func TestSparse_Extents(t *testing.T) {
	g := grid.NewSparse[bool]()
	_, ok := g.Extents()
	assert.False(t, ok, "empty sparse grid has no extent")

	g.Set(pt(2, -1), true)
	g.Set(pt(-3, 4), true)
	ext, ok := g.Extents()
	require.True(t, ok)
	assert.Equal(t, point.Extent{Min: pt(-3, -1), Max: pt(2, 4)}, ext)

	g.Grow(point.Extent{Min: pt(-5, 0), Max: pt(0, 10)})
	ext, _ = g.Extents()
	assert.Equal(t, point.Extent{Min: pt(-5, -1), Max: pt(2, 10)}, ext)

	g.Remove(pt(2, -1))
	ext, _ = g.Extents()
	assert.Equal(t, point.Extent{Min: pt(-5, 0), Max: pt(0, 10)}, ext)
}

func TestSparse_PointsOrdered(t *testing.T) {
	g := grid.SparseFromLines([]string{"#.#", "..#"}, func(_ point.Point, r rune) (rune, bool) {
		return r, r == '#'
	})
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []point.Point{pt(0, 0), pt(2, 0), pt(2, 1)}, g.Points())
	for _, p := range g.Points() {
		_, ok := g.Get(p)
		assert.True(t, ok)
	}
	_, ok := g.Get(pt(1, 0))
	assert.False(t, ok)
}

func key(g *grid.Sparse[bool]) string {
	var sb strings.Builder
	for _, p := range g.Points() {
		sb.WriteString(p.String())
	}
	return sb.String()
}

func TestSparse_Transpositions(t *testing.T) {
	// L-tromino: symmetric under the diagonal mirror, so 4 distinct images.
	g := grid.NewSparse[bool]()
	for _, p := range []point.Point{pt(0, 0), pt(1, 0), pt(0, 1)} {
		g.Set(p, true)
	}
	ts := g.Transpositions()
	require.Len(t, ts, 8)
	distinct := map[string]bool{}
	for _, tr := range ts {
		ext, ok := tr.Extents()
		require.True(t, ok)
		assert.Equal(t, pt(0, 0), ext.Min)
		assert.Equal(t, 3, tr.Len())
		distinct[key(tr)] = true
	}
	assert.Len(t, distinct, 4)
	assert.Equal(t, key(g), key(ts[0]), "first image is the identity")

	// Asymmetric shape: all eight differ.
	f := grid.NewSparse[bool]()
	for _, p := range []point.Point{pt(0, 0), pt(1, 0), pt(2, 0), pt(0, 1)} {
		f.Set(p, true)
	}
	distinct = map[string]bool{}
	for _, tr := range f.Transpositions() {
		distinct[key(tr)] = true
	}
	assert.Len(t, distinct, 8)
}

func TestSparse_HashOrderIndependent(t *testing.T) {
	a, b := grid.NewSparse[int](), grid.NewSparse[int]()
	a.Set(pt(1, 1), 1)
	a.Set(pt(2, 2), 2)
	b.Set(pt(2, 2), 2)
	b.Set(pt(1, 1), 1)
	assert.Equal(t, a.Hash(), b.Hash())
	b.Set(pt(3, 3), 3)
	assert.NotEqual(t, a.Hash(), b.Hash())
}

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

func TestBlit(t *testing.T) {
	src := grid.NewSparse[rune]()
	src.Set(pt(0, 0), 'a')
	src.Set(pt(1, 0), 'b')
	dst := grid.NewDense(4, 2, '.')
	grid.Blit[rune](dst, pt(2, 1), src)
	assert.Equal(t, []rune("..ab"), dst.Row(1))
	assert.Equal(t, []rune("...."), dst.Row(0))
}

func TestMapCountNeighbors(t *testing.T) {
	g, err := grid.DenseFromLines([]string{"#.#", "###"}, func(r rune) rune { return r })
	require.NoError(t, err)
	m := grid.Map[rune, bool](g, func(_ point.Point, r rune) bool { return r == '#' })
	_, isDense := m.(*grid.Dense[bool])
	assert.True(t, isDense)
	assert.Equal(t, 5, grid.Count(m, func(_ point.Point, v bool) bool { return v }))

	walls := grid.NewSparse[bool]()
	for _, p := range g.Points() {
		if g.At(p) == '#' {
			walls.Set(p, true)
		}
	}
	assert.ElementsMatch(t, []point.Point{pt(0, 1), pt(2, 1)}, grid.Neighbors[bool](walls, pt(1, 1), grid.Degree4))
	assert.ElementsMatch(t, []point.Point{pt(0, 0), pt(2, 0), pt(0, 1), pt(2, 1)}, grid.Neighbors[bool](walls, pt(1, 1), grid.Degree8))
}

func TestDetectCycle(t *testing.T) {
	// x → x*x mod 10 from 2: 2,4,6,6,... prefix 2, period 1.
	c := grid.DetectCycle(2, func(x int) int { return x * x % 10 }, func(x int) int { return x }, 0)
	assert.Equal(t, 2, c.Prefix)
	assert.Equal(t, 1, c.Period)
	v, ok := c.At(1_000_000_000)
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	// Rotating a glider-like grid cycles with period 4.
	g := grid.NewDense(3, 3, false)
	g.Set(pt(0, 0), true)
	g.Set(pt(1, 0), true)
	rc := grid.DetectCycle(g, (*grid.Dense[bool]).RotateRight, func(d *grid.Dense[bool]) string {
		return fmt.Sprint(d.Hash())
	}, 0)
	assert.Equal(t, 0, rc.Prefix)
	assert.Equal(t, 4, rc.Period)
	g9, ok9 := rc.At(9)
	g1, ok1 := rc.At(1)
	require.True(t, ok9 && ok1)
	assert.True(t, grid.Equal[bool](g9, g1))

	limited := grid.DetectCycle(0, func(x int) int { return x + 1 }, func(x int) int { return x }, 5)
	assert.Equal(t, 0, limited.Period)
	v, ok = limited.At(5)
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = limited.At(6)
	assert.False(t, ok, "no period: states past the limit are unknown")
	_, ok = limited.At(100)
	assert.False(t, ok)
	_, ok = c.At(-1)
	assert.False(t, ok)
}
