// SPDX-License-Identifier: MIT

package point

// Extent is an inclusive bounding rectangle: Min and Max are both inside.
type Extent struct {
	Min, Max Point
}

// ExtentOf returns the smallest extent covering every point, and false when
// pts is empty.
func ExtentOf(pts []Point) (Extent, bool) {
	if len(pts) == 0 {
		return Extent{}, false
	}
	e := Extent{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		e = e.Include(p)
	}
	return e, true
}

// InsideExtent reports whether p lies within e, inclusive on both ends.
func InsideExtent(p Point, e Extent) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X && p.Y >= e.Min.Y && p.Y <= e.Max.Y
}

// Contains is InsideExtent as a method.
func (e Extent) Contains(p Point) bool { return InsideExtent(p, e) }

// Width is the number of columns covered.
func (e Extent) Width() int { return e.Max.X - e.Min.X + 1 }

// Height is the number of rows covered.
func (e Extent) Height() int { return e.Max.Y - e.Min.Y + 1 }

// Include returns e widened to cover p.
func (e Extent) Include(p Point) Extent {
	e.Min.X = min(e.Min.X, p.X)
	e.Min.Y = min(e.Min.Y, p.Y)
	e.Max.X = max(e.Max.X, p.X)
	e.Max.Y = max(e.Max.Y, p.Y)
	return e
}

// Union returns the smallest extent covering both e and o.
func (e Extent) Union(o Extent) Extent {
	return e.Include(o.Min).Include(o.Max)
}
