package primitive

import "fmt"

// Triangle represents a triangle, normalised to counter-clockwise vertex
// order at construction. A triangle with collinear vertices is degenerate;
// when closed it still covers the segment its vertices span, and when open
// it is the empty set.
type Triangle struct {
	pts      [3]Point
	boundary Boundary
}

// NewTriangle creates a closed triangle from the three vertices, normalising
// them to counter-clockwise order.
func NewTriangle(a, b, c Point) Triangle {
	return newTriangle(a, b, c, BoundaryInclude)
}

// NewTriangleExcl creates an open triangle; see [NewTriangle].
func NewTriangleExcl(a, b, c Point) Triangle {
	return newTriangle(a, b, c, BoundaryExclude)
}

func newTriangle(a, b, c Point, boundary Boundary) Triangle {
	pts := []Point{a, b, c}
	ensureCCW(pts)
	return Triangle{pts: [3]Point{pts[0], pts[1], pts[2]}, boundary: boundary}
}

// Pts returns the vertices in counter-clockwise order.
func (t Triangle) Pts() [3]Point { return t.pts }

// Boundary returns the triangle's boundary tag.
func (t Triangle) Boundary() Boundary { return t.boundary }

// Segs returns the three edges in counter-clockwise order.
func (t Triangle) Segs() [3]Segment {
	return [3]Segment{
		NewSegment(t.pts[0], t.pts[1]),
		NewSegment(t.pts[1], t.pts[2]),
		NewSegment(t.pts[2], t.pts[0]),
	}
}

// IsDegenerate returns true iff the vertices are collinear.
func (t Triangle) IsDegenerate() bool {
	return isCollinear(t.pts[0], t.pts[1], t.pts[2])
}

// String returns the triangle formatted as "Tri[a, b, c]".
func (t Triangle) String() string {
	return fmt.Sprintf("Tri[%v, %v, %v]", t.pts[0], t.pts[1], t.pts[2])
}

// Bounds returns the bounding box of the vertices.
func (t Triangle) Bounds() (Rect, bool) {
	return ptCloudBounds(t.pts[:])
}

// IsEmptySet returns true iff the triangle contains no points: only an open
// degenerate triangle is empty.
func (t Triangle) IsEmptySet() bool {
	if t.boundary == BoundaryInclude {
		return false
	}
	return t.IsDegenerate()
}

// IntersectsShape returns true iff the triangle and s share a point.
func (t Triangle) IntersectsShape(s Shape) bool {
	switch o := s.(type) {
	case Capsule:
		return capIntersectsTri(o, t)
	case Circle:
		return circIntersectsTri(o, t)
	case Compound:
		return o.IntersectsShape(t)
	case Point:
		return triContainsPoint(t, o)
	case Rect:
		return rectIntersectsTri(o, t)
	default:
		return unsupportedPair("intersects", t, s)
	}
}

// ContainsShape returns true iff every point of s is a point of the
// triangle.
func (t Triangle) ContainsShape(s Shape) bool {
	if s.IsEmptySet() {
		return true
	}
	switch o := s.(type) {
	case Point:
		return triContainsPoint(t, o)
	case Rect:
		return triContainsRect(t, o)
	default:
		return unsupportedPair("contains", t, s)
	}
}

// DistanceToShape returns the shortest distance between the triangle and s.
func (t Triangle) DistanceToShape(s Shape) (float64, bool) {
	switch o := s.(type) {
	case Capsule:
		return capTriDist(o, t)
	case Circle:
		return circTriDist(o, t)
	case Compound:
		return o.DistanceToShape(t)
	case Point:
		return triPointDist(t, o)
	case Rect:
		return rectTriDist(o, t)
	default:
		_ = unsupportedPair("distance", t, s)
		return 0, false
	}
}
