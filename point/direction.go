// SPDX-License-Identifier: MIT

package point

// Unit steps. Y grows downward.
var (
	North     = Point{0, -1}
	South     = Point{0, 1}
	East      = Point{1, 0}
	West      = Point{-1, 0}
	NorthEast = Point{1, -1}
	NorthWest = Point{-1, -1}
	SouthEast = Point{1, 1}
	SouthWest = Point{-1, 1}
)

// Directions lists the orthogonal unit steps clockwise from North.
var Directions = []Point{North, East, South, West}

// DirectionsInclDiagonals lists all eight unit steps clockwise from North.
var DirectionsInclDiagonals = []Point{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// LeftOf maps a direction to its 90° counter-clockwise rotation,
// RightOf to its 90° clockwise rotation and Opposite to its reversal.
var (
	LeftOf   = map[Point]Point{}
	RightOf  = map[Point]Point{}
	Opposite = map[Point]Point{}
)

func init() {
	for _, d := range DirectionsInclDiagonals {
		LeftOf[d] = d.RotateLeft()
		RightOf[d] = d.RotateRight()
		Opposite[d] = d.Neg()
	}
}

// ParseDirection maps the usual puzzle glyphs to unit steps: ^v<>, UDLR and NSEW.
func ParseDirection(r rune) (Point, bool) {
	switch r {
	case '^', 'U', 'N', 'u', 'n':
		return North, true
	case 'v', 'D', 'S', 'd', 's':
		return South, true
	case '>', 'R', 'E', 'r', 'e':
		return East, true
	case '<', 'L', 'W', 'l', 'w':
		return West, true
	}
	return Point{}, false
}

// HexDirections is the axial convention with named steps ne, n, nw, sw, s, se
// (flat-topped hexes), expressed as cube unit vectors.
var HexDirections = map[string]Vec3{
	"n":  {0, 1, -1},
	"ne": {1, 0, -1},
	"se": {1, -1, 0},
	"s":  {0, -1, 1},
	"sw": {-1, 0, 1},
	"nw": {-1, 1, 0},
}

// HexDirectionsAlt is the alternate convention with steps ne, e, se, sw, w, nw
// (pointy-topped hexes, rows offset). Its cube axes match OddRToCube:
// X is the axial column, Z the row.
var HexDirectionsAlt = map[string]Vec3{
	"e":  {1, -1, 0},
	"w":  {-1, 1, 0},
	"ne": {1, 0, -1},
	"nw": {0, 1, -1},
	"se": {0, -1, 1},
	"sw": {-1, 0, 1},
}

// HexOrder and HexOrderAlt give a stable iteration order for the two tables.
var (
	HexOrder    = []string{"ne", "n", "nw", "sw", "s", "se"}
	HexOrderAlt = []string{"ne", "e", "se", "sw", "w", "nw"}
)
