package primitive

import "github.com/mikenye/quadgeom/numeric"

// Pairwise intersection tests. Touching at the boundary counts as
// intersection only when both shapes include their boundaries; every test
// that reduces to a distance-versus-radius comparison routes through
// distIntersects to get that rule in one place.

// distIntersects compares a computed distance against a threshold using the
// boundary rule: tolerant <= when both operands are closed, strict < when
// either is open.
func distIntersects(a, b Boundary, dist, threshold float64) bool {
	if bothInclude(a, b) {
		return numeric.Le(dist, threshold)
	}
	return numeric.Lt(dist, threshold)
}

// combineBoundary returns the boundary tag of a Minkowski sum of two shapes:
// closed only when both inputs are closed.
func combineBoundary(a, b Boundary) Boundary {
	if bothInclude(a, b) {
		return BoundaryInclude
	}
	return BoundaryExclude
}

// boundsDisjoint returns true if both shapes have bounds and the bounds do
// not overlap, allowing early rejection.
func boundsDisjoint(a, b Shape) bool {
	ab, aok := a.Bounds()
	bb, bok := b.Bounds()
	if aok && bok {
		return !ab.Overlaps(bb)
	}
	return false
}

func capIntersectsCap(a, b Capsule) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	if boundsDisjoint(a, b) {
		return false
	}
	return distIntersects(a.boundary, b.boundary, segSegDist(a.Seg(), b.Seg()), a.r+b.r)
}

func capIntersectsCirc(a Capsule, b Circle) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	// Minkowski sum of |a| and |b|, then a point containment test. The sum
	// capsule inherits the combined boundary semantics.
	sum := newCapsule(a.st, a.en, a.r+b.r, combineBoundary(a.boundary, b.boundary))
	return capContainsPoint(sum, b.p)
}

func capIntersectsPath(a Capsule, b Path) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	for _, c := range b.Caps() {
		if capIntersectsCap(a, c) {
			return true
		}
	}
	return false
}

func capIntersectsPoly(a Capsule, b Polygon) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	for _, tri := range b.tris {
		if capIntersectsTri(a, tri) {
			return true
		}
	}
	return false
}

func capIntersectsRect(a Capsule, b Rect) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	if ab, ok := a.Bounds(); ok && !ab.Overlaps(b) {
		return false
	}
	if b.ContainsPoint(a.st) || b.ContainsPoint(a.en) {
		return true
	}
	// rectSegDist reports ok here because |b| is non-empty.
	d, _ := rectSegDist(b, a.Seg())
	return distIntersects(a.boundary, b.boundary, d, a.r)
}

func capIntersectsTri(a Capsule, b Triangle) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	// Capsule contained within the triangle:
	if triContainsPoint(b, a.st) || triContainsPoint(b, a.en) {
		return true
	}
	// Otherwise to intersect, the triangle boundary needs to be intersecting
	// the capsule.
	for _, seg := range b.Segs() {
		if distIntersects(a.boundary, b.boundary, segSegDist(a.Seg(), seg), a.r) {
			return true
		}
	}
	return false
}

func circIntersectsCirc(a, b Circle) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	return distIntersects(a.boundary, b.boundary, a.p.Dist(b.p), a.r+b.r)
}

func circIntersectsPath(a Circle, b Path) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	for _, c := range b.Caps() {
		if capIntersectsCirc(c, a) {
			return true
		}
	}
	return false
}

func circIntersectsPoly(a Circle, b Polygon) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	if boundsDisjoint(a, b) {
		return false
	}
	for _, tri := range b.tris {
		if circIntersectsTri(a, tri) {
			return true
		}
	}
	return false
}

func circIntersectsRect(a Circle, b Rect) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	if ab, ok := a.Bounds(); ok && !ab.Overlaps(b) {
		return false
	}
	// The circle centre is inside the rect, or the centre's projection onto
	// the rect is within the radius.
	p := a.p.Clamp(b)
	return b.ContainsPoint(a.p) || distIntersects(a.boundary, b.boundary, p.Dist(a.p), a.r)
}

func circIntersectsTri(a Circle, b Triangle) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	if boundsDisjoint(a, b) {
		return false
	}
	// Minkowski sum of the circle and triangle: test whether the triangle
	// contains the circle centre or any edge capsule does.
	if triContainsPoint(b, a.p) {
		return true
	}
	for _, seg := range b.Segs() {
		c := newCapsule(seg.st, seg.en, a.r, combineBoundary(a.boundary, b.boundary))
		if capContainsPoint(c, a.p) {
			return true
		}
	}
	return false
}

func lineIntersectsLine(a, b Line) bool {
	aDir := a.Dir()
	bDir := b.Dir()
	aIsPoint := numeric.Eq(aDir.Mag2(), 0)
	bIsPoint := numeric.Eq(bDir.Mag2(), 0)

	if aIsPoint && bIsPoint {
		return a.st == b.st
	}
	if aIsPoint {
		return OrientationOf(b, a.st) == 0
	}
	if bIsPoint {
		return OrientationOf(a, b.st) == 0
	}

	// Intersects if not parallel, otherwise intersects iff collinear.
	return numeric.Ne(aDir.Cross(bDir), 0) || OrientationOf(a, b.st) == 0
}

func pathIntersectsPath(a, b Path) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	for _, capA := range a.Caps() {
		for _, capB := range b.Caps() {
			if capIntersectsCap(capA, capB) {
				return true
			}
		}
	}
	return false
}

func pathIntersectsPoly(a Path, b Polygon) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	for _, c := range a.Caps() {
		if capIntersectsPoly(c, b) {
			return true
		}
	}
	return false
}

func pathIntersectsRect(a Path, b Rect) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	for _, c := range a.Caps() {
		if capIntersectsRect(c, b) {
			return true
		}
	}
	return false
}

func polyIntersectsRect(a Polygon, b Rect) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	for _, tri := range a.tris {
		if rectIntersectsTri(b, tri) {
			return true
		}
	}
	return false
}

func rectIntersectsRect(a, b Rect) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	if bothInclude(a.boundary, b.boundary) {
		return numeric.Le(a.l, b.r) && numeric.Ge(a.r, b.l) && numeric.Le(a.b, b.t) && numeric.Ge(a.t, b.b)
	}
	return numeric.Lt(a.l, b.r) && numeric.Gt(a.r, b.l) && numeric.Lt(a.b, b.t) && numeric.Gt(a.t, b.b)
}

func rectIntersectsSeg(a Rect, b Segment) bool {
	if a.IsEmptySet() {
		return false
	}
	if a.ContainsPoint(b.st) || a.ContainsPoint(b.en) {
		return true
	}
	pts := a.Pts()
	// Test seg axis:
	if pointsStrictlyRightOf(b.Line(), pts[:]) {
		return false
	}
	// Test rect axes:
	for _, seg := range a.Segs() {
		if pointsStrictlyRightOf(seg.Line(), []Point{b.st, b.en}) {
			return false
		}
	}
	return true
}

func rectIntersectsTri(a Rect, b Triangle) bool {
	if a.IsEmptySet() || b.IsEmptySet() {
		return false
	}
	rectPts := a.Pts()
	triPts := b.Pts()
	// Test tri axes:
	for _, seg := range b.Segs() {
		if pointsStrictlyRightOf(seg.Line(), rectPts[:]) {
			return false
		}
	}
	// Test rect axes:
	for _, seg := range a.Segs() {
		if pointsStrictlyRightOf(seg.Line(), triPts[:]) {
			return false
		}
	}
	return true
}

func segIntersectsSeg(a, b Segment) bool {
	// Check if the segment endpoints are on opposite sides of the other
	// segment.
	aSt := OrientationOf(b.Line(), a.st)
	aEn := OrientationOf(b.Line(), a.en)
	bSt := OrientationOf(a.Line(), b.st)
	bEn := OrientationOf(a.Line(), b.en)
	// No collinear points. Everything on different sides.
	if aSt != aEn && bSt != bEn {
		return true
	}
	// Check collinear cases. Need to check both x and y coordinates to
	// handle vertical and horizontal segments.
	aRect := RectEnclosing(a.st, a.en)
	bRect := RectEnclosing(b.st, b.en)
	if aSt == 0 && bRect.ContainsPoint(a.st) {
		return true
	}
	if aEn == 0 && bRect.ContainsPoint(a.en) {
		return true
	}
	if bSt == 0 && aRect.ContainsPoint(b.st) {
		return true
	}
	if bEn == 0 && aRect.ContainsPoint(b.en) {
		return true
	}
	return false
}
