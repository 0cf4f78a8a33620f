package primitive

import (
	"fmt"

	"github.com/mikenye/quadgeom/numeric"
)

// Capsule represents the Minkowski sum of a segment and a disc: every point
// within the radius of the spine segment. A degenerate capsule whose
// endpoints coincide is equivalent to a circle.
type Capsule struct {
	st       Point
	en       Point
	r        float64
	boundary Boundary
}

// NewCapsule creates a closed capsule with the given spine endpoints and
// radius.
//
// Panics:
//   - If the radius is negative, NaN or infinite.
func NewCapsule(st, en Point, r float64) Capsule {
	return newCapsule(st, en, r, BoundaryInclude)
}

// NewCapsuleExcl creates an open capsule; see [NewCapsule] for the
// construction contract. An open capsule with zero radius is the empty set.
func NewCapsuleExcl(st, en Point, r float64) Capsule {
	return newCapsule(st, en, r, BoundaryExclude)
}

func newCapsule(st, en Point, r float64, boundary Boundary) Capsule {
	if !isFinite(r) || r < 0 {
		panic(fmt.Errorf("primitive: capsule radius must be finite and non-negative, got %v", r))
	}
	return Capsule{st: st, en: en, r: r, boundary: boundary}
}

// St returns the start of the spine segment.
func (c Capsule) St() Point { return c.st }

// En returns the end of the spine segment.
func (c Capsule) En() Point { return c.en }

// R returns the radius.
func (c Capsule) R() float64 { return c.r }

// Boundary returns the capsule's boundary tag.
func (c Capsule) Boundary() Boundary { return c.boundary }

// Dir returns the direction vector of the spine.
func (c Capsule) Dir() Point {
	return c.en.Sub(c.st)
}

// Seg returns the spine segment.
func (c Capsule) Seg() Segment {
	return NewSegment(c.st, c.en)
}

// StartCap returns the circle capping the start of the capsule, carrying the
// capsule's boundary tag.
func (c Capsule) StartCap() Circle {
	return newCircle(c.st, c.r, c.boundary)
}

// EndCap returns the circle capping the end of the capsule, carrying the
// capsule's boundary tag.
func (c Capsule) EndCap() Circle {
	return newCircle(c.en, c.r, c.boundary)
}

// LeftSeg returns the left wall of the capsule. ok is false for degenerate
// capsules (st == en), which have no walls.
func (c Capsule) LeftSeg() (Segment, bool) {
	perp, ok := c.Dir().Perp()
	if !ok {
		return Segment{}, false
	}
	offset := perp.Negate().Scale(c.r)
	return NewSegment(c.st.Add(offset), c.en.Add(offset)), true
}

// RightSeg returns the right wall of the capsule. ok is false for degenerate
// capsules (st == en), which have no walls.
func (c Capsule) RightSeg() (Segment, bool) {
	perp, ok := c.Dir().Perp()
	if !ok {
		return Segment{}, false
	}
	offset := perp.Scale(c.r)
	return NewSegment(c.st.Add(offset), c.en.Add(offset)), true
}

// String returns the capsule formatted as "Cap[st, en; r]".
func (c Capsule) String() string {
	return fmt.Sprintf("Cap[%v, %v; %v]", c.st, c.en, c.r)
}

// Bounds returns the bounding box of the spine inflated by the radius.
func (c Capsule) Bounds() (Rect, bool) {
	return RectEnclosing(c.st, c.en).Inset(-c.r, -c.r), true
}

// IsEmptySet returns true iff the capsule contains no points. A closed
// capsule is never empty (a zero radius leaves the spine segment); an open
// capsule is empty when the radius is approximately zero.
func (c Capsule) IsEmptySet() bool {
	if c.boundary == BoundaryInclude {
		return false
	}
	return numeric.Eq(c.r, 0)
}

// IntersectsShape returns true iff the capsule and s share a point.
func (c Capsule) IntersectsShape(s Shape) bool {
	switch o := s.(type) {
	case Capsule:
		return capIntersectsCap(c, o)
	case Circle:
		return capIntersectsCirc(c, o)
	case Compound:
		return o.IntersectsShape(c)
	case Path:
		return capIntersectsPath(c, o)
	case Point:
		return capContainsPoint(c, o)
	case Polygon:
		return capIntersectsPoly(c, o)
	case Rect:
		return capIntersectsRect(c, o)
	case Triangle:
		return capIntersectsTri(c, o)
	default:
		return unsupportedPair("intersects", c, s)
	}
}

// ContainsShape returns true iff every point of s is a point of the capsule.
func (c Capsule) ContainsShape(s Shape) bool {
	if s.IsEmptySet() {
		return true
	}
	switch o := s.(type) {
	case Point:
		return capContainsPoint(c, o)
	case Rect:
		return capContainsRect(c, o)
	default:
		return unsupportedPair("contains", c, s)
	}
}

// DistanceToShape returns the shortest distance between the capsule and s.
func (c Capsule) DistanceToShape(s Shape) (float64, bool) {
	switch o := s.(type) {
	case Capsule:
		return capCapDist(c, o)
	case Circle:
		return capCircDist(c, o)
	case Compound:
		return o.DistanceToShape(c)
	case Path:
		return capPathDist(c, o)
	case Point:
		return capPointDist(c, o)
	case Polygon:
		return capPolyDist(c, o)
	case Rect:
		return capRectDist(c, o)
	case Segment:
		return capSegDist(c, o)
	case Triangle:
		return capTriDist(c, o)
	default:
		_ = unsupportedPair("distance", c, s)
		return 0, false
	}
}
