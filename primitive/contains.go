package primitive

import "github.com/mikenye/quadgeom/numeric"

// Pairwise containment tests. Every test answers "is every point of b a
// point of a"; the empty set is contained by everything, and an empty
// container contains only the empty set.

// boundsExcludePoint returns true if the container's bounds exist and do not
// contain the point.
func boundsExcludePoint(container Shape, p Point) bool {
	b, ok := container.Bounds()
	return ok && !b.ContainsPoint(p)
}

// boundsExcludeRect returns true if the container's bounds exist and do not
// contain the rectangle.
func boundsExcludeRect(container Shape, r Rect) bool {
	b, ok := container.Bounds()
	return ok && !b.ContainsRect(r)
}

// boundsExcludeBounds returns true if both bounds exist and the container's
// bounds do not contain the containee's bounds.
func boundsExcludeBounds(container, contained Shape) bool {
	a, aok := container.Bounds()
	b, bok := contained.Bounds()
	if aok && bok {
		return !a.ContainsRect(b)
	}
	return false
}

func capContainsPoint(a Capsule, b Point) bool {
	if a.IsEmptySet() {
		return false
	}
	if boundsExcludePoint(a, b) {
		return false
	}
	dist := pointSegDist(b, a.Seg())
	if a.boundary == BoundaryExclude {
		return numeric.Lt(dist, a.r)
	}
	return numeric.Le(dist, a.r)
}

func capContainsRect(a Capsule, b Rect) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	if boundsExcludeRect(a, b) {
		return false
	}
	for _, p := range b.Pts() {
		if !capContainsPoint(a, p) {
			return false
		}
	}
	return true
}

func circContainsPoint(a Circle, b Point) bool {
	if a.IsEmptySet() {
		return false
	}
	dist := a.p.Dist(b)
	if a.boundary == BoundaryExclude {
		return numeric.Lt(dist, a.r)
	}
	return numeric.Le(dist, a.r)
}

func circContainsRect(a Circle, b Rect) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	// Sufficient to check all rectangle corners are within the circle.
	return circContainsPoint(a, b.BL()) &&
		circContainsPoint(a, b.BR()) &&
		circContainsPoint(a, b.TR()) &&
		circContainsPoint(a, b.TL())
}

func pathContainsRect(a Path, b Rect) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	if boundsExcludeRect(a, b) {
		return false
	}
	// An exact answer would need to cover |b| with the union of the path's
	// capsules. This function only has to be conservative for the
	// quadtree's fast-match list, so check each capsule on its own; a
	// rectangle straddling several capsules is missed.
	for _, c := range a.Caps() {
		if capContainsRect(c, b) {
			return true
		}
	}
	return false
}

func polyContainsCap(a Polygon, b Capsule) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	if boundsExcludeBounds(a, b) {
		return false
	}
	// A degenerate capsule (st == en) is just a circle.
	if b.st == b.en {
		return polyContainsCirc(a, b.StartCap())
	}

	// Both end caps must be inside the polygon.
	if !polyContainsCirc(a, b.StartCap()) || !polyContainsCirc(a, b.EndCap()) {
		return false
	}
	// So must the left and right walls; the degenerate case was handled
	// above, so the walls exist.
	left, _ := b.LeftSeg()
	right, _ := b.RightSeg()
	return polyContainsSeg(a, left) && polyContainsSeg(a, right)
}

func polyContainsCirc(a Polygon, b Circle) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	// The centre must be inside, and the outline at least a radius away.
	if !polyContainsPoint(a, b.p) {
		return false
	}
	d, ok := polylinePointDist(a.pts, b.p)
	if !ok {
		d = 0
	}
	return numeric.Ge(d, b.r)
}

func polyContainsPath(a Polygon, b Path) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	if boundsExcludeBounds(a, b) {
		return false
	}
	for _, c := range b.Caps() {
		if !polyContainsCap(a, c) {
			return false
		}
	}
	return true
}

func polyContainsPoint(a Polygon, b Point) bool {
	if a.IsEmptySet() {
		return false
	}
	if boundsExcludePoint(a, b) {
		return false
	}
	// Winding number test: walk the horizontal line at b.y and count edge
	// crossings. Points at exactly b.y are treated as slightly above it.
	winding := 0
	for _, e := range a.Edges() {
		p0, p1 := e[0], e[1]
		if numeric.Ge(p0.y, b.y) {
			// Downward crossing edge with |b| to the right of it
			// decreases the winding number.
			if numeric.Lt(p1.y, b.y) && isRightOf(NewLine(p0, p1), b) {
				winding--
			}
		} else if numeric.Ge(p1.y, b.y) && isLeftOf(NewLine(p0, p1), b) {
			// Upward crossing edge with |b| to the left of it increases
			// the winding number.
			winding++
		}
	}
	if winding == 0 {
		return false
	}
	if a.boundary == BoundaryExclude {
		// The open polygon additionally requires b off the outline.
		d, ok := polylinePointDist(a.pts, b)
		if !ok {
			d = 0
		}
		return numeric.Ne(d, 0)
	}
	return true
}

func polyContainsRect(a Polygon, b Rect) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	if boundsExcludeRect(a, b) {
		return false
	}
	// Check point containment of |b| in |a|.
	for _, p := range b.Pts() {
		if !polyContainsPoint(a, p) {
			return false
		}
	}
	// Check segment containment of |b| in |a| if |a| is non-convex.
	if !a.convex {
		for _, seg := range b.Segs() {
			if !polyContainsSeg(a, seg) {
				return false
			}
		}
	}
	return true
}

func polyContainsSeg(a Polygon, b Segment) bool {
	if a.IsEmptySet() {
		return false
	}
	if boundsExcludeBounds(a, b) {
		return false
	}
	// Both endpoints of |b| must be inside |a|.
	if !polyContainsPoint(a, b.st) || !polyContainsPoint(a, b.en) {
		return false
	}

	// If |a| is convex, endpoint containment is enough.
	if a.convex {
		return true
	}

	// |b| must not cross any edge of |a|.
	for _, e := range a.Edges() {
		p0, p1 := e[0], e[1]
		pSt := OrientationOf(b.Line(), p0)
		pEn := OrientationOf(b.Line(), p1)
		bSt := OrientationOf(NewLine(p0, p1), b.st)
		bEn := OrientationOf(NewLine(p0, p1), b.en)
		// Segments are crossing and no collinear points.
		if pSt != pEn && bSt != bEn {
			return false
		}
	}
	return true
}

func rectContainsCap(a Rect, b Capsule) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	if bb, ok := b.Bounds(); ok && !a.ContainsRect(bb) {
		return false
	}
	// A degenerate capsule (st == en) is just a circle.
	if b.st == b.en {
		return rectContainsCirc(a, b.StartCap())
	}

	// Both end caps must be inside the rect.
	if !rectContainsCirc(a, b.StartCap()) || !rectContainsCirc(a, b.EndCap()) {
		return false
	}
	// So must the left and right walls; the degenerate case was handled
	// above, so the walls exist.
	left, _ := b.LeftSeg()
	right, _ := b.RightSeg()
	return rectContainsSeg(a, left) && rectContainsSeg(a, right)
}

func rectContainsCirc(a Rect, b Circle) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	// The centre must be inside the rectangle:
	if !a.ContainsPoint(b.p) {
		return false
	}
	// The shortest distance to each wall must cover the radius.
	xDist := min(b.p.x-a.l, a.r-b.p.x)
	if numeric.Lt(xDist, b.r) {
		return false
	}
	yDist := min(b.p.y-a.b, a.t-b.p.y)
	return !numeric.Lt(yDist, b.r)
}

func rectContainsPath(a Rect, b Path) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	if bb, ok := b.Bounds(); ok && !a.ContainsRect(bb) {
		return false
	}
	for _, c := range b.Caps() {
		if !rectContainsCap(a, c) {
			return false
		}
	}
	return true
}

func rectContainsPoly(a Rect, b Polygon) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	if bb, ok := b.Bounds(); ok && !a.ContainsRect(bb) {
		return false
	}
	// Checking every outline point suffices for an axis-aligned container.
	for _, p := range b.pts {
		if !a.ContainsPoint(p) {
			return false
		}
	}
	return true
}

func rectContainsSeg(a Rect, b Segment) bool {
	if a.IsEmptySet() {
		return false
	}
	// Just need to check containment of both endpoints.
	return a.ContainsPoint(b.st) && a.ContainsPoint(b.en)
}

func rectContainsTri(a Rect, b Triangle) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	for _, p := range b.Pts() {
		if !a.ContainsPoint(p) {
			return false
		}
	}
	return true
}

func triContainsPoint(a Triangle, b Point) bool {
	if a.IsEmptySet() {
		return false
	}
	o0 := OrientationOf(NewLine(a.pts[0], a.pts[1]), b)
	o1 := OrientationOf(NewLine(a.pts[1], a.pts[2]), b)
	o2 := OrientationOf(NewLine(a.pts[2], a.pts[0]), b)
	lo := min(o0, o1, o2)
	hi := max(o0, o1, o2)
	if a.boundary == BoundaryExclude {
		return lo > 0 || hi < 0
	}
	return lo >= 0 || hi <= 0
}

func triContainsRect(a Triangle, b Rect) bool {
	if b.IsEmptySet() {
		return true
	}
	if a.IsEmptySet() {
		return false
	}
	for _, p := range b.Pts() {
		if !triContainsPoint(a, p) {
			return false
		}
	}
	return true
}
