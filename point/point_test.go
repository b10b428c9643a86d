package point_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/point"
)

func TestArithmetic(t *testing.T) {
	p := point.Point{X: 2, Y: -3}
	q := point.Point{X: -1, Y: 5}
	assert.Equal(t, point.Point{X: 1, Y: 2}, p.Add(q))
	assert.Equal(t, point.Point{X: 3, Y: -8}, p.Sub(q))
	assert.Equal(t, point.Point{X: -2, Y: 3}, p.Neg())
	assert.Equal(t, point.Point{X: 6, Y: -9}, p.Mul(3))

	v := point.Vec3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, point.Vec3{X: 2, Y: 4, Z: 6}, v.Add(v))
	assert.Equal(t, point.Vec3{}, v.Sub(v))
	assert.Equal(t, point.Vec3{X: -1, Y: -2, Z: -3}, v.Neg())
}

func TestDistances(t *testing.T) {
	a, b := point.Point{X: 1, Y: 1}, point.Point{X: 4, Y: -3}
	assert.Equal(t, 7, point.Manhattan(a, b))
	assert.Equal(t, 4, point.Chebyshev(a, b))
	assert.Equal(t, 6, point.ManhattanVec3(point.Vec3{}, point.Vec3{X: 1, Y: -2, Z: 3}))
	assert.Equal(t, 3, point.ManhattanHexCube(point.Vec3{}, point.Vec3{X: 3, Y: -3, Z: 0}))
}

func TestDirectionTables(t *testing.T) {
	assert.Equal(t, point.West, point.LeftOf[point.North])
	assert.Equal(t, point.East, point.RightOf[point.North])
	assert.Equal(t, point.South, point.Opposite[point.North])
	assert.Equal(t, point.North, point.LeftOf[point.East])
	assert.Equal(t, point.SouthWest, point.Opposite[point.NorthEast])
	for _, d := range point.DirectionsInclDiagonals {
		assert.Equal(t, d, point.RightOf[point.LeftOf[d]])
		assert.Equal(t, point.Opposite[d], point.LeftOf[point.LeftOf[d]])
	}
}

func TestNeighbors(t *testing.T) {
	p := point.Point{X: 5, Y: 5}
	assert.Equal(t, []point.Point{{5, 4}, {6, 5}, {5, 6}, {4, 5}}, point.Neighbors(p))
	n8 := point.NeighborsInclDiagonals(p)
	require.Len(t, n8, 8)
	for _, n := range n8 {
		assert.Equal(t, 1, point.Chebyshev(p, n))
	}
}

func TestHexDirections_SumToZero(t *testing.T) {
	for _, table := range []map[string]point.Vec3{point.HexDirections, point.HexDirectionsAlt} {
		require.Len(t, table, 6)
		for name, v := range table {
			assert.Zero(t, v.X+v.Y+v.Z, name)
			assert.Equal(t, 1, point.ManhattanHexCube(point.Vec3{}, v), name)
		}
	}
	for _, name := range point.HexOrder {
		assert.Contains(t, point.HexDirections, name)
	}
	for _, name := range point.HexOrderAlt {
		assert.Contains(t, point.HexDirectionsAlt, name)
	}
}

func TestParseDirection(t *testing.T) {
	for r, want := range map[rune]point.Point{'^': point.North, 'D': point.South, '>': point.East, 'W': point.West} {
		got, ok := point.ParseDirection(r)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := point.ParseDirection('x')
	assert.False(t, ok)
}

func TestPlotLine_Straight(t *testing.T) {
	assert.Equal(t,
		[]point.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		point.PlotLine(point.Point{X: 0, Y: 0}, point.Point{X: 3, Y: 0}))
	assert.Equal(t,
		[]point.Point{{2, 4}, {2, 3}, {2, 2}},
		point.PlotLine(point.Point{X: 2, Y: 4}, point.Point{X: 2, Y: 2}))
	assert.Equal(t,
		[]point.Point{{0, 0}, {1, 1}, {2, 2}},
		point.PlotLine(point.Point{}, point.Point{X: 2, Y: 2}))
	assert.Equal(t,
		[]point.Point{{3, 0}, {2, 1}, {1, 2}},
		point.PlotLine(point.Point{X: 3}, point.Point{X: 1, Y: 2}))
	assert.Equal(t, []point.Point{{7, 7}}, point.PlotLine(point.Point{X: 7, Y: 7}, point.Point{X: 7, Y: 7}))
}

func TestPlotLine_SymmetricUnderSwap(t *testing.T) {
	ends := []point.Point{{0, 0}, {5, 2}, {-3, 7}, {4, -6}, {1, 1}, {-2, -9}}
	for _, a := range ends {
		for _, b := range ends {
			fwd := point.PlotLine(a, b)
			back := point.PlotLine(b, a)
			assert.ElementsMatch(t, fwd, back, "%v-%v", a, b)
			assert.Equal(t, a, fwd[0])
			assert.Equal(t, b, fwd[len(fwd)-1])
			for i := 1; i < len(fwd); i++ {
				assert.Equal(t, 1, point.Chebyshev(fwd[i-1], fwd[i]))
			}
		}
	}
}

func TestExtent(t *testing.T) {
	e, ok := point.ExtentOf([]point.Point{{3, 1}, {-1, 4}, {2, 2}})
	require.True(t, ok)
	assert.Equal(t, point.Extent{Min: point.Point{X: -1, Y: 1}, Max: point.Point{X: 3, Y: 4}}, e)
	assert.Equal(t, 5, e.Width())
	assert.Equal(t, 4, e.Height())
	assert.True(t, point.InsideExtent(point.Point{X: -1, Y: 4}, e))
	assert.True(t, e.Contains(point.Point{X: 3, Y: 1}))
	assert.False(t, e.Contains(point.Point{X: 4, Y: 1}))

	_, ok = point.ExtentOf(nil)
	assert.False(t, ok)

	u := e.Union(point.Extent{Min: point.Point{X: 10, Y: 10}, Max: point.Point{X: 11, Y: 12}})
	assert.Equal(t, point.Point{X: 11, Y: 12}, u.Max)
	assert.Equal(t, point.Point{X: -1, Y: 1}, u.Min)
}
