package primitive

import (
	"fmt"

	"github.com/mikenye/quadgeom/numeric"
)

// Path represents a poly-line thickened by a non-negative radius, modelled
// as a chain of capsules: one per consecutive pair of points, plus a single
// degenerate capsule when the path has exactly one point. Collinear runs are
// reduced at construction (without the polygon's seam wrap-around).
type Path struct {
	pts      []Point
	r        float64
	bounds   Rect
	hasBound bool
	boundary Boundary
}

// NewPath creates a closed path through pts with the given radius.
//
// Panics:
//   - If the radius is negative, NaN or infinite, or any coordinate is not
//     finite.
func NewPath(pts []Point, r float64) Path {
	return newPath(pts, r, BoundaryInclude)
}

// NewPathExcl creates an open path; see [NewPath]. An open path with zero
// radius is the empty set.
func NewPathExcl(pts []Point, r float64) Path {
	return newPath(pts, r, BoundaryExclude)
}

func newPath(pts []Point, r float64, boundary Boundary) Path {
	if !isFinite(r) || r < 0 {
		panic(fmt.Errorf("primitive: path radius must be finite and non-negative, got %v", r))
	}
	reduced := removeCollinear(pts, false)
	bounds, ok := ptCloudBounds(reduced)
	if ok {
		bounds = bounds.Inset(-r, -r)
	}
	return Path{pts: reduced, r: r, bounds: bounds, hasBound: ok, boundary: boundary}
}

// Pts returns the reduced path points.
func (p Path) Pts() []Point { return p.pts }

// R returns the radius.
func (p Path) R() float64 { return p.r }

// Boundary returns the path's boundary tag.
func (p Path) Boundary() Boundary { return p.boundary }

// Len returns the number of path points after collinear reduction.
func (p Path) Len() int { return len(p.pts) }

// Caps returns the capsule chain of the path: one capsule per consecutive
// pair of points, or a single degenerate capsule for a one-point path. The
// capsules carry the path's boundary tag.
func (p Path) Caps() []Capsule {
	if len(p.pts) == 1 {
		return []Capsule{newCapsule(p.pts[0], p.pts[0], p.r, p.boundary)}
	}
	caps := make([]Capsule, 0, max(len(p.pts)-1, 0))
	for i := 0; i+1 < len(p.pts); i++ {
		caps = append(caps, newCapsule(p.pts[i], p.pts[i+1], p.r, p.boundary))
	}
	return caps
}

// String returns the path formatted as "Path[p0 p1 ...]; r".
func (p Path) String() string {
	return fmt.Sprintf("Path%v; %v", p.pts, p.r)
}

// Bounds returns the bounding box of the path points inflated by the full
// radius on every side. ok is false for a path with no points.
func (p Path) Bounds() (Rect, bool) {
	return p.bounds, p.hasBound
}

// IsEmptySet returns true iff the path contains no points: it has no path
// points at all, or it is open with an approximately zero radius.
func (p Path) IsEmptySet() bool {
	if len(p.pts) == 0 {
		return true
	}
	if p.boundary == BoundaryInclude {
		return false
	}
	return numeric.Eq(p.r, 0)
}

// IntersectsShape returns true iff the path and s share a point.
func (p Path) IntersectsShape(s Shape) bool {
	switch o := s.(type) {
	case Capsule:
		return capIntersectsPath(o, p)
	case Circle:
		return circIntersectsPath(o, p)
	case Compound:
		return o.IntersectsShape(p)
	case Path:
		return pathIntersectsPath(p, o)
	case Polygon:
		return pathIntersectsPoly(p, o)
	case Rect:
		return pathIntersectsRect(p, o)
	default:
		return unsupportedPair("intersects", p, s)
	}
}

// ContainsShape returns true iff every point of s is a point of the path.
func (p Path) ContainsShape(s Shape) bool {
	if s.IsEmptySet() {
		return true
	}
	switch o := s.(type) {
	case Rect:
		return pathContainsRect(p, o)
	default:
		return unsupportedPair("contains", p, s)
	}
}

// DistanceToShape returns the shortest distance between the path and s.
func (p Path) DistanceToShape(s Shape) (float64, bool) {
	switch o := s.(type) {
	case Capsule:
		return capPathDist(o, p)
	case Circle:
		return circPathDist(o, p)
	case Compound:
		return o.DistanceToShape(p)
	case Path:
		return pathPathDist(p, o)
	case Point:
		return pathPointDist(p, o)
	case Polygon:
		return pathPolyDist(p, o)
	case Rect:
		return rectPathDist(o, p)
	default:
		_ = unsupportedPair("distance", p, s)
		return 0, false
	}
}
