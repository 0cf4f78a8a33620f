package primitive

import (
	"fmt"

	"github.com/mikenye/quadgeom/numeric"
)

// Segment represents the finite line between two endpoints. A segment whose
// endpoints coincide is a "point segment" and is permitted.
type Segment struct {
	st Point
	en Point
}

// NewSegment creates a segment between the two endpoints.
func NewSegment(st, en Point) Segment {
	return Segment{st: st, en: en}
}

// St returns the start point.
func (s Segment) St() Point { return s.st }

// En returns the end point.
func (s Segment) En() Point { return s.en }

// Dir returns the direction vector from start to end.
func (s Segment) Dir() Point {
	return s.en.Sub(s.st)
}

// Line returns the infinite line through the segment's endpoints.
func (s Segment) Line() Line {
	return NewLine(s.st, s.en)
}

// ContainsPoint returns true iff p lies on the segment, within tolerance.
func (s Segment) ContainsPoint(p Point) bool {
	return RectEnclosing(s.st, s.en).ContainsPoint(p) && isCollinear(s.st, s.en, p)
}

// String returns the segment formatted as "Seg[st, en]".
func (s Segment) String() string {
	return fmt.Sprintf("Seg[%v, %v]", s.st, s.en)
}

// Bounds returns the smallest rectangle enclosing the segment.
func (s Segment) Bounds() (Rect, bool) {
	return RectEnclosing(s.st, s.en), true
}

// IsEmptySet returns false: a segment is never empty.
func (s Segment) IsEmptySet() bool {
	return false
}

// IntersectsShape returns true iff the segment and o share a point.
func (s Segment) IntersectsShape(o Shape) bool {
	switch t := o.(type) {
	case Rect:
		return rectIntersectsSeg(t, s)
	case Segment:
		return segIntersectsSeg(s, t)
	default:
		return unsupportedPair("intersects", s, o)
	}
}

// ContainsShape returns true iff every point of o lies on the segment: o is
// the empty set, or o is a zero-extent rectangle on the segment. The
// quadtree's push-down asks stored shapes whether they contain a node box,
// so the rectangle case must answer rather than flag.
func (s Segment) ContainsShape(o Shape) bool {
	if o.IsEmptySet() {
		return true
	}
	switch t := o.(type) {
	case Rect:
		return numeric.Eq(t.W(), 0) && numeric.Eq(t.H(), 0) && s.ContainsPoint(t.BL())
	default:
		return unsupportedPair("contains", s, o)
	}
}

// DistanceToShape returns the shortest distance between the segment and o.
func (s Segment) DistanceToShape(o Shape) (float64, bool) {
	switch t := o.(type) {
	case Capsule:
		return capSegDist(t, s)
	case Point:
		return pointSegDist(t, s), true
	case Rect:
		return rectSegDist(t, s)
	case Segment:
		return segSegDist(s, t), true
	default:
		_ = unsupportedPair("distance", s, o)
		return 0, false
	}
}
