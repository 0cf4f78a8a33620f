package primitive

import "github.com/mikenye/quadgeom/numeric"

// Pairwise distance functions. Every function returns 0 when the shapes
// intersect or one contains the other; the quadtree relies on that to mix
// distance results with intersection fast paths. ok is false iff either
// operand is the empty set.

// minDist folds candidate distances into a running minimum. add reports
// whether the fold can stop early because an (approximately) zero distance
// was reached.
type minDist struct {
	d  float64
	ok bool
}

func (m *minDist) add(d float64) bool {
	if !m.ok || d < m.d {
		m.d, m.ok = d, true
	}
	return numeric.Eq(d, 0)
}

func capCapDist(a, b Capsule) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	d := segSegDist(a.Seg(), b.Seg()) - a.r - b.r
	return max(d, 0), true
}

func capCircDist(a Capsule, b Circle) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	d := pointSegDist(b.p, a.Seg()) - a.r - b.r
	return max(d, 0), true
}

func capPathDist(a Capsule, b Path) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	var best minDist
	for _, c := range b.Caps() {
		if d, ok := capCapDist(a, c); ok && best.add(d) {
			break
		}
	}
	return best.d, best.ok
}

func capPointDist(a Capsule, b Point) (float64, bool) {
	if a.IsEmptySet() {
		return 0, false
	}
	d := pointSegDist(b, a.Seg()) - a.r
	return max(d, 0), true
}

func capPolyDist(a Capsule, b Polygon) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	if capIntersectsPoly(a, b) {
		return 0, true
	}
	var best minDist
	for _, e := range b.Edges() {
		if d, ok := capSegDist(a, NewSegment(e[0], e[1])); ok && best.add(d) {
			break
		}
	}
	return best.d, best.ok
}

func capRectDist(a Capsule, b Rect) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	d, ok := rectSegDist(b, a.Seg())
	if !ok {
		return 0, false
	}
	return max(d-a.r, 0), true
}

func capSegDist(a Capsule, b Segment) (float64, bool) {
	if a.IsEmptySet() {
		return 0, false
	}
	d := segSegDist(a.Seg(), b) - a.r
	return max(d, 0), true
}

func capTriDist(a Capsule, b Triangle) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	if capIntersectsTri(a, b) {
		return 0, true
	}
	var best minDist
	for _, seg := range b.Segs() {
		if d, ok := capSegDist(a, seg); ok && best.add(d) {
			break
		}
	}
	return best.d, best.ok
}

func circCircDist(a, b Circle) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	d := a.p.Dist(b.p) - a.r - b.r
	return max(d, 0), true
}

func circPathDist(a Circle, b Path) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	var best minDist
	for _, c := range b.Caps() {
		if d, ok := capCircDist(c, a); ok && best.add(d) {
			break
		}
	}
	return best.d, best.ok
}

func circPointDist(a Circle, b Point) (float64, bool) {
	if a.IsEmptySet() {
		return 0, false
	}
	return max(a.p.Dist(b)-a.r, 0), true
}

func circPolyDist(a Circle, b Polygon) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	if circIntersectsPoly(a, b) {
		return 0, true
	}
	d, ok := polyPointDist(b, a.p)
	if !ok {
		return 0, false
	}
	return max(d-a.r, 0), true
}

func circRectDist(a Circle, b Rect) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	if circIntersectsRect(a, b) {
		return 0, true
	}
	// Project the circle centre onto the rectangle:
	p := a.p.Clamp(b)
	return max(p.Dist(a.p)-a.r, 0), true
}

func circTriDist(a Circle, b Triangle) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	if circIntersectsTri(a, b) {
		return 0, true
	}
	var best minDist
	for _, seg := range b.Segs() {
		if best.add(pointSegDist(a.p, seg)) {
			break
		}
	}
	return max(best.d-a.r, 0), true
}

func lineLineDist(a, b Line) float64 {
	if lineIntersectsLine(a, b) {
		return 0
	}
	// Parallel (or a degenerate point off the other line): any anchor
	// realises the distance.
	if numeric.Eq(a.Dir().Mag2(), 0) {
		return linePointDist(b, a.st)
	}
	return linePointDist(a, b.st)
}

func linePointDist(a Line, b Point) float64 {
	return b.Dist(a.Project(b))
}

func pathPathDist(a, b Path) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	var best minDist
outer:
	for _, capA := range a.Caps() {
		for _, capB := range b.Caps() {
			if d, ok := capCapDist(capA, capB); ok && best.add(d) {
				break outer
			}
		}
	}
	return best.d, best.ok
}

func pathPointDist(a Path, b Point) (float64, bool) {
	if a.IsEmptySet() {
		return 0, false
	}
	var best minDist
	for _, c := range a.Caps() {
		if d, ok := capPointDist(c, b); ok && best.add(d) {
			break
		}
	}
	return best.d, best.ok
}

func pathPolyDist(a Path, b Polygon) (float64, bool) {
	if len(a.pts) == 0 || len(b.pts) == 0 {
		return 0, false
	}
	var best minDist
	for _, c := range a.Caps() {
		if d, ok := capPolyDist(c, b); ok && best.add(d) {
			break
		}
	}
	return best.d, best.ok
}

// polylinePointDist returns the distance from b to the outline traced by
// pts (with the seam edge included). ok is false for an empty outline.
func polylinePointDist(pts []Point, b Point) (float64, bool) {
	var best minDist
	for _, e := range edges(pts) {
		if best.add(pointSegDist(b, NewSegment(e[0], e[1]))) {
			break
		}
	}
	return best.d, best.ok
}

func polyPointDist(a Polygon, b Point) (float64, bool) {
	if a.IsEmptySet() {
		return 0, false
	}
	if polyContainsPoint(a, b) {
		return 0, true
	}
	return polylinePointDist(a.pts, b)
}

func polyRectDist(a Polygon, b Rect) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	if polyIntersectsRect(a, b) {
		return 0, true
	}
	var best minDist
	for _, e := range a.Edges() {
		if d, ok := rectSegDist(b, NewSegment(e[0], e[1])); ok && best.add(d) {
			break
		}
	}
	return best.d, best.ok
}

func pointRectDist(a Point, b Rect) (float64, bool) {
	if b.IsEmptySet() {
		return 0, false
	}
	if b.ContainsPoint(a) {
		return 0, true
	}
	// Project the point onto the rectangle:
	return a.Clamp(b).Dist(a), true
}

func pointSegDist(a Point, b Segment) float64 {
	stDist := a.Dist(b.st)
	enDist := a.Dist(b.en)
	project := b.Line().Project(a)
	dist := min(stDist, enDist)
	if b.ContainsPoint(project) {
		return min(dist, a.Dist(project))
	}
	return dist
}

func rectPathDist(a Rect, b Path) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	var best minDist
	for _, c := range b.Caps() {
		if d, ok := capRectDist(c, a); ok && best.add(d) {
			break
		}
	}
	return best.d, best.ok
}

// RectRectDistance returns the shortest distance between two rectangles, 0
// when they touch or overlap. ok is false iff either rectangle is the empty
// set. The quadtree uses this as the lower bound for its best-first distance
// descent.
func RectRectDistance(a, b Rect) (float64, bool) {
	return rectRectDist(a, b)
}

func rectRectDist(a, b Rect) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	// Shortest distance along each axis; at most one of the raw axis
	// differences can be positive.
	x := max(a.l-b.r, b.l-a.r, 0)
	y := max(a.b-b.t, b.b-a.t, 0)
	return NewPoint(x, y).Mag(), true
}

func rectSegDist(a Rect, b Segment) (float64, bool) {
	if a.IsEmptySet() {
		return 0, false
	}
	if rectIntersectsSeg(a, b) {
		return 0, true
	}
	// Closest distance from the segment to the rectangle's edges.
	var best minDist
	for _, seg := range a.Segs() {
		if best.add(segSegDist(seg, b)) {
			break
		}
	}
	return best.d, best.ok
}

func rectTriDist(a Rect, b Triangle) (float64, bool) {
	if a.IsEmptySet() || b.IsEmptySet() {
		return 0, false
	}
	if rectIntersectsTri(a, b) {
		return 0, true
	}
	var best minDist
	for _, seg := range b.Segs() {
		if d, ok := rectSegDist(a, seg); ok && best.add(d) {
			break
		}
	}
	return best.d, best.ok
}

func segSegDist(a, b Segment) float64 {
	// The closest distance is between an endpoint and a segment, unless the
	// segments cross, in which case it is zero.
	if segIntersectsSeg(a, b) {
		return 0
	}
	best := pointSegDist(a.st, b)
	best = min(best, pointSegDist(a.en, b))
	best = min(best, pointSegDist(b.st, a))
	best = min(best, pointSegDist(b.en, a))
	return best
}

func triPointDist(a Triangle, b Point) (float64, bool) {
	if a.IsEmptySet() {
		return 0, false
	}
	if triContainsPoint(a, b) {
		return 0, true
	}
	var best minDist
	for _, seg := range a.Segs() {
		if best.add(pointSegDist(b, seg)) {
			break
		}
	}
	return best.d, best.ok
}
