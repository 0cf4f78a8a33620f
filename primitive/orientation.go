package primitive

import "github.com/mikenye/quadgeom/numeric"

// Orientation of a point relative to a directed line, as returned by
// [OrientationOf]: +1 for left of the line, 0 for on the line (within
// tolerance), -1 for right of the line.

// OrientationOf returns the orientation of p relative to the directed line l:
// +1 if p is to the left, -1 if p is to the right and 0 if p lies on the
// line within [numeric.Epsilon] of the cross product.
//
// A degenerate line orients every point as on the line through its single
// anchor, so callers that care must detect degeneracy themselves.
func OrientationOf(l Line, p Point) int {
	cross := l.Dir().Cross(p.Sub(l.st))
	switch {
	case numeric.Eq(cross, 0):
		return 0
	case cross > 0:
		return 1
	default:
		return -1
	}
}

// isLeftOf reports that p is on or to the left of the directed line l.
func isLeftOf(l Line, p Point) bool {
	return OrientationOf(l, p) >= 0
}

// isRightOf reports that p is on or to the right of the directed line l.
func isRightOf(l Line, p Point) bool {
	return OrientationOf(l, p) <= 0
}

// isStrictlyLeftOf reports that p is strictly to the left of l.
func isStrictlyLeftOf(l Line, p Point) bool {
	return OrientationOf(l, p) > 0
}

// pointsStrictlyRightOf reports that every point is strictly to the right of
// the directed line l. For a counter-clockwise convex outline this means l
// is a separating axis.
func pointsStrictlyRightOf(l Line, pts []Point) bool {
	for _, p := range pts {
		if OrientationOf(l, p) >= 0 {
			return false
		}
	}
	return true
}

// isCollinear returns true iff the three points lie on one line within
// tolerance.
func isCollinear(a, b, c Point) bool {
	return OrientationOf(NewLine(a, b), c) == 0
}
