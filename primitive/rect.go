package primitive

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mikenye/quadgeom/numeric"
)

// Rect represents an axis-aligned rectangle covering the range
// [l, r] x [b, t], with a [Boundary] tag selecting whether the edges belong
// to the point set.
//
// A rectangle with l == r or b == t has zero area but, when closed, still
// contains the points on its degenerate edge.
type Rect struct {
	l        float64
	b        float64
	r        float64
	t        float64
	boundary Boundary
}

// NewRect creates a closed axis-aligned rectangle from its left, bottom,
// right and top edges.
//
// Parameters:
//   - l, b (float64): The left edge and bottom edge.
//   - r, t (float64): The right edge and top edge.
//
// Returns:
//   - Rect: A new closed rectangle.
//
// Panics:
//   - If any edge is NaN or infinite, or if r < l or t < b.
func NewRect(l, b, r, t float64) Rect {
	return newRect(l, b, r, t, BoundaryInclude)
}

// NewRectExcl creates an open axis-aligned rectangle; see [NewRect] for the
// construction contract. The open rectangle excludes its edges, so it is the
// empty set whenever it has zero width or height.
func NewRectExcl(l, b, r, t float64) Rect {
	return newRect(l, b, r, t, BoundaryExclude)
}

func newRect(l, b, r, t float64, boundary Boundary) Rect {
	if !isFinite(l) || !isFinite(b) || !isFinite(r) || !isFinite(t) {
		panic(fmt.Errorf("primitive: rect edges must be finite, got (%v, %v, %v, %v)", l, b, r, t))
	}
	if r < l || t < b {
		panic(fmt.Errorf("primitive: malformed rect (%v, %v, %v, %v): need r >= l and t >= b", l, b, r, t))
	}
	return Rect{l: l, b: b, r: r, t: t, boundary: boundary}
}

// RectEnclosing returns the smallest closed rectangle containing both points.
func RectEnclosing(pa, pb Point) Rect {
	return NewRect(min(pa.x, pb.x), min(pa.y, pb.y), max(pa.x, pb.x), max(pa.y, pb.y))
}

// L returns the left edge.
func (r Rect) L() float64 { return r.l }

// B returns the bottom edge.
func (r Rect) B() float64 { return r.b }

// R returns the right edge.
func (r Rect) R() float64 { return r.r }

// T returns the top edge.
func (r Rect) T() float64 { return r.t }

// W returns the width of the rectangle.
func (r Rect) W() float64 { return r.r - r.l }

// H returns the height of the rectangle.
func (r Rect) H() float64 { return r.t - r.b }

// Boundary returns the rectangle's boundary tag.
func (r Rect) Boundary() Boundary { return r.boundary }

// BL returns the bottom-left corner.
func (r Rect) BL() Point { return NewPoint(r.l, r.b) }

// BR returns the bottom-right corner.
func (r Rect) BR() Point { return NewPoint(r.r, r.b) }

// TL returns the top-left corner.
func (r Rect) TL() Point { return NewPoint(r.l, r.t) }

// TR returns the top-right corner.
func (r Rect) TR() Point { return NewPoint(r.r, r.t) }

// Center returns the centre point of the rectangle.
func (r Rect) Center() Point {
	return NewPoint((r.l+r.r)/2, (r.b+r.t)/2)
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.W() * r.H()
}

// Pts returns the four corners in counter-clockwise order starting at the
// bottom-left.
func (r Rect) Pts() [4]Point {
	return [4]Point{r.BL(), r.BR(), r.TR(), r.TL()}
}

// Segs returns the four edges in counter-clockwise order starting with the
// bottom edge.
func (r Rect) Segs() [4]Segment {
	pts := r.Pts()
	return [4]Segment{
		NewSegment(pts[0], pts[1]),
		NewSegment(pts[1], pts[2]),
		NewSegment(pts[2], pts[3]),
		NewSegment(pts[3], pts[0]),
	}
}

// BLQuadrant returns the bottom-left quadrant of the rectangle.
func (r Rect) BLQuadrant() Rect {
	c := r.Center()
	return NewRect(r.l, r.b, c.x, c.y)
}

// BRQuadrant returns the bottom-right quadrant of the rectangle.
func (r Rect) BRQuadrant() Rect {
	c := r.Center()
	return NewRect(c.x, r.b, r.r, c.y)
}

// TLQuadrant returns the top-left quadrant of the rectangle.
func (r Rect) TLQuadrant() Rect {
	c := r.Center()
	return NewRect(r.l, c.y, c.x, r.t)
}

// TRQuadrant returns the top-right quadrant of the rectangle.
func (r Rect) TRQuadrant() Rect {
	c := r.Center()
	return NewRect(c.x, c.y, r.r, r.t)
}

// Inset shrinks the rectangle by dx on the left and right and dy on the
// bottom and top. Negative values grow the rectangle. Insetting a rectangle
// by more than its size produces the rectangle containing only its centre
// point.
func (r Rect) Inset(dx, dy float64) Rect {
	wsub := min(r.W(), 2*dx) / 2
	hsub := min(r.H(), 2*dy) / 2
	return newRect(r.l+wsub, r.b+hsub, r.r-wsub, r.t-hsub, r.boundary)
}

// United returns the smallest rectangle covering both r and o, keeping r's
// boundary tag.
func (r Rect) United(o Rect) Rect {
	return newRect(min(r.l, o.l), min(r.b, o.b), max(r.r, o.r), max(r.t, o.t), r.boundary)
}

// MatchAspect returns a rectangle with the same bottom-left corner and area
// as r whose aspect ratio matches o. Degenerate aspect rectangles collapse
// the matching axis.
func (r Rect) MatchAspect(o Rect) Rect {
	switch {
	case numeric.Eq(o.W(), 0):
		return newRect(r.l, r.b, r.l, r.t, r.boundary)
	case numeric.Eq(o.H(), 0):
		return newRect(r.l, r.b, r.r, r.b, r.boundary)
	default:
		aspect := math.Sqrt(o.W() / o.H())
		length := math.Sqrt(r.Area())
		return newRect(r.l, r.b, r.l+length*aspect, r.b+length/aspect, r.boundary)
	}
}

// ContainsPoint returns true iff p is a point of the rectangle, honouring
// the boundary tag: a closed rectangle includes its edges, an open one does
// not.
func (r Rect) ContainsPoint(p Point) bool {
	if r.boundary == BoundaryExclude {
		return numeric.Gt(p.x, r.l) && numeric.Gt(p.y, r.b) && numeric.Lt(p.x, r.r) && numeric.Lt(p.y, r.t)
	}
	return numeric.Ge(p.x, r.l) && numeric.Ge(p.y, r.b) && numeric.Le(p.x, r.r) && numeric.Le(p.y, r.t)
}

// ContainsRect returns true iff every point of o is a point of r. An open
// container demands strict interior of a boundary-including containee; an
// open containee only needs non-strict edge comparisons, so every rectangle
// contains itself.
func (r Rect) ContainsRect(o Rect) bool {
	if r.boundary == BoundaryExclude && o.boundary == BoundaryInclude {
		return numeric.Gt(o.l, r.l) && numeric.Lt(o.r, r.r) && numeric.Gt(o.b, r.b) && numeric.Lt(o.t, r.t)
	}
	return numeric.Ge(o.l, r.l) && numeric.Le(o.r, r.r) && numeric.Ge(o.b, r.b) && numeric.Le(o.t, r.t)
}

// Overlaps is the tolerant axis-overlap test used for bounding-box pruning.
// It ignores boundary tags; use the shape-level IntersectsShape for
// boundary-aware intersection.
func (r Rect) Overlaps(o Rect) bool {
	return numeric.Le(r.l, o.r) && numeric.Ge(r.r, o.l) && numeric.Le(r.b, o.t) && numeric.Ge(r.t, o.b)
}

// String returns the rectangle formatted as "(l, b, r, t)".
func (r Rect) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", r.l, r.b, r.r, r.t)
}

// MarshalJSON encodes the rectangle as {"l": ..., "b": ..., "r": ..., "t": ...}.
func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		L float64 `json:"l"`
		B float64 `json:"b"`
		R float64 `json:"r"`
		T float64 `json:"t"`
	}{r.l, r.b, r.r, r.t})
}

// UnmarshalJSON decodes a closed rectangle from {"l": ..., "b": ..., "r": ..., "t": ...}.
func (r *Rect) UnmarshalJSON(data []byte) error {
	var v struct {
		L float64 `json:"l"`
		B float64 `json:"b"`
		R float64 `json:"r"`
		T float64 `json:"t"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = NewRect(v.L, v.B, v.R, v.T)
	return nil
}

// Bounds returns the rectangle itself.
func (r Rect) Bounds() (Rect, bool) {
	return r, true
}

// IsEmptySet returns true iff the rectangle contains no points. A closed
// rectangle is never empty; an open one is empty when it has zero width or
// height.
func (r Rect) IsEmptySet() bool {
	if r.boundary == BoundaryInclude {
		return false
	}
	return numeric.Eq(r.W(), 0) || numeric.Eq(r.H(), 0)
}

// IntersectsShape returns true iff the rectangle and s share a point.
func (r Rect) IntersectsShape(s Shape) bool {
	switch o := s.(type) {
	case Capsule:
		return capIntersectsRect(o, r)
	case Circle:
		return circIntersectsRect(o, r)
	case Compound:
		return o.IntersectsShape(r)
	case Path:
		return pathIntersectsRect(o, r)
	case Point:
		if r.IsEmptySet() {
			return false
		}
		return r.ContainsPoint(o)
	case Polygon:
		return polyIntersectsRect(o, r)
	case Rect:
		return rectIntersectsRect(r, o)
	case Segment:
		return rectIntersectsSeg(r, o)
	case Triangle:
		return rectIntersectsTri(r, o)
	default:
		return unsupportedPair("intersects", r, s)
	}
}

// ContainsShape returns true iff every point of s is a point of the
// rectangle.
func (r Rect) ContainsShape(s Shape) bool {
	if s.IsEmptySet() {
		return true
	}
	switch o := s.(type) {
	case Capsule:
		return rectContainsCap(r, o)
	case Circle:
		return rectContainsCirc(r, o)
	case Path:
		return rectContainsPath(r, o)
	case Point:
		if r.IsEmptySet() {
			return false
		}
		return r.ContainsPoint(o)
	case Polygon:
		return rectContainsPoly(r, o)
	case Rect:
		if r.IsEmptySet() {
			return false
		}
		return r.ContainsRect(o)
	case Segment:
		return rectContainsSeg(r, o)
	case Triangle:
		return rectContainsTri(r, o)
	default:
		return unsupportedPair("contains", r, s)
	}
}

// DistanceToShape returns the shortest distance between the rectangle and s.
func (r Rect) DistanceToShape(s Shape) (float64, bool) {
	switch o := s.(type) {
	case Capsule:
		return capRectDist(o, r)
	case Circle:
		return circRectDist(o, r)
	case Compound:
		return o.DistanceToShape(r)
	case Path:
		return rectPathDist(r, o)
	case Point:
		return pointRectDist(o, r)
	case Polygon:
		return polyRectDist(o, r)
	case Rect:
		return rectRectDist(r, o)
	case Segment:
		return rectSegDist(r, o)
	case Triangle:
		return rectTriDist(r, o)
	default:
		_ = unsupportedPair("distance", r, s)
		return 0, false
	}
}

// RectInt is an axis-aligned rectangle with integer origin and size,
// disjoint from [Rect]. It does not participate in the shape predicate
// dispatch.
type RectInt struct {
	x int64
	y int64
	w int64
	h int64
}

// NewRectInt creates a RectInt anchored at (x, y) with the given size.
//
// Panics:
//   - If w or h is negative.
func NewRectInt(x, y, w, h int64) RectInt {
	if w < 0 || h < 0 {
		panic(fmt.Errorf("primitive: malformed RectInt size (%d, %d)", w, h))
	}
	return RectInt{x: x, y: y, w: w, h: h}
}

// RectIntEnclosing returns the smallest RectInt containing both points.
func RectIntEnclosing(pa, pb PointInt) RectInt {
	x := min(pa.x, pb.x)
	y := min(pa.y, pb.y)
	return NewRectInt(x, y, max(pa.x, pb.x)-x, max(pa.y, pb.y)-y)
}

// L returns the left edge.
func (r RectInt) L() int64 { return r.x }

// B returns the bottom edge.
func (r RectInt) B() int64 { return r.y }

// R returns the right edge.
func (r RectInt) R() int64 { return r.x + r.w }

// T returns the top edge.
func (r RectInt) T() int64 { return r.y + r.h }

// W returns the width.
func (r RectInt) W() int64 { return r.w }

// H returns the height.
func (r RectInt) H() int64 { return r.h }

// BL returns the bottom-left corner.
func (r RectInt) BL() PointInt { return NewPointInt(r.L(), r.B()) }

// BR returns the bottom-right corner.
func (r RectInt) BR() PointInt { return NewPointInt(r.R(), r.B()) }

// TL returns the top-left corner.
func (r RectInt) TL() PointInt { return NewPointInt(r.L(), r.T()) }

// TR returns the top-right corner.
func (r RectInt) TR() PointInt { return NewPointInt(r.R(), r.T()) }

// Inset shrinks the rectangle by dx on each side horizontally and dy
// vertically, clamping at zero size.
func (r RectInt) Inset(dx, dy int64) RectInt {
	wsub := min(2*dx, r.w)
	hsub := min(2*dy, r.h)
	return NewRectInt(r.x+wsub/2, r.y+hsub/2, r.w-wsub, r.h-hsub)
}

// Translate returns the rectangle moved by p.
func (r RectInt) Translate(p PointInt) RectInt {
	return RectInt{x: r.x + p.x, y: r.y + p.y, w: r.w, h: r.h}
}

// Scale returns the rectangle with origin and size scaled by k.
func (r RectInt) Scale(k int64) RectInt {
	return NewRectInt(r.x*k, r.y*k, r.w*k, r.h*k)
}

// String returns the rectangle formatted as "(x, y, w, h)".
func (r RectInt) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.x, r.y, r.w, r.h)
}
