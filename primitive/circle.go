package primitive

import (
	"fmt"

	"github.com/mikenye/quadgeom/numeric"
)

// Circle represents a disc: a centre point and a non-negative radius, with a
// [Boundary] tag selecting whether the bounding circle belongs to the point
// set.
type Circle struct {
	p        Point
	r        float64
	boundary Boundary
}

// NewCircle creates a closed circle with the given centre and radius.
//
// Panics:
//   - If the radius is negative, NaN or infinite.
func NewCircle(p Point, r float64) Circle {
	return newCircle(p, r, BoundaryInclude)
}

// NewCircleExcl creates an open circle; see [NewCircle] for the construction
// contract. An open circle with zero radius is the empty set.
func NewCircleExcl(p Point, r float64) Circle {
	return newCircle(p, r, BoundaryExclude)
}

func newCircle(p Point, r float64, boundary Boundary) Circle {
	if !isFinite(r) || r < 0 {
		panic(fmt.Errorf("primitive: circle radius must be finite and non-negative, got %v", r))
	}
	return Circle{p: p, r: r, boundary: boundary}
}

// P returns the centre of the circle.
func (c Circle) P() Point { return c.p }

// R returns the radius of the circle.
func (c Circle) R() float64 { return c.r }

// Boundary returns the circle's boundary tag.
func (c Circle) Boundary() Boundary { return c.boundary }

// String returns the circle formatted as "Circ[p; r]".
func (c Circle) String() string {
	return fmt.Sprintf("Circ[%v; %v]", c.p, c.r)
}

// Bounds returns the axis-aligned bounding box of the circle.
func (c Circle) Bounds() (Rect, bool) {
	return NewRect(c.p.x-c.r, c.p.y-c.r, c.p.x+c.r, c.p.y+c.r), true
}

// IsEmptySet returns true iff the circle contains no points. A closed circle
// is never empty (a zero radius leaves the centre point); an open circle is
// empty when the radius is approximately zero.
func (c Circle) IsEmptySet() bool {
	if c.boundary == BoundaryInclude {
		return false
	}
	return numeric.Eq(c.r, 0)
}

// IntersectsShape returns true iff the circle and s share a point.
func (c Circle) IntersectsShape(s Shape) bool {
	switch o := s.(type) {
	case Capsule:
		return capIntersectsCirc(o, c)
	case Circle:
		return circIntersectsCirc(c, o)
	case Compound:
		return o.IntersectsShape(c)
	case Path:
		return circIntersectsPath(c, o)
	case Point:
		return circContainsPoint(c, o)
	case Polygon:
		return circIntersectsPoly(c, o)
	case Rect:
		return circIntersectsRect(c, o)
	case Triangle:
		return circIntersectsTri(c, o)
	default:
		return unsupportedPair("intersects", c, s)
	}
}

// ContainsShape returns true iff every point of s is a point of the circle.
func (c Circle) ContainsShape(s Shape) bool {
	if s.IsEmptySet() {
		return true
	}
	switch o := s.(type) {
	case Point:
		return circContainsPoint(c, o)
	case Rect:
		return circContainsRect(c, o)
	default:
		return unsupportedPair("contains", c, s)
	}
}

// DistanceToShape returns the shortest distance between the circle and s.
func (c Circle) DistanceToShape(s Shape) (float64, bool) {
	switch o := s.(type) {
	case Capsule:
		return capCircDist(o, c)
	case Circle:
		return circCircDist(c, o)
	case Compound:
		return o.DistanceToShape(c)
	case Path:
		return circPathDist(c, o)
	case Point:
		return circPointDist(c, o)
	case Polygon:
		return circPolyDist(c, o)
	case Rect:
		return circRectDist(c, o)
	case Triangle:
		return circTriDist(c, o)
	default:
		_ = unsupportedPair("distance", c, s)
		return 0, false
	}
}
