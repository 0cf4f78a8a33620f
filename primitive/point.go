package primitive

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mikenye/quadgeom/numeric"
)

// Point represents a point in two-dimensional space with x and y coordinates
// of type float64. Point doubles as a 2D vector: it provides methods for
// common vector operations such as addition, subtraction, dot and cross
// products, and distance calculations.
type Point struct {
	x float64
	y float64
}

// NewPoint creates a new Point with the specified x and y coordinates.
//
// Parameters:
//   - x (float64): The x-coordinate of the point.
//   - y (float64): The y-coordinate of the point.
//
// Returns:
//   - Point: A new Point instance with the given coordinates.
//
// Panics:
//   - If either coordinate is NaN or infinite.
func NewPoint(x, y float64) Point {
	if !isFinite(x) || !isFinite(y) {
		panic(fmt.Errorf("primitive: point coordinates must be finite, got (%v, %v)", x, y))
	}
	return Point{x: x, y: y}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Origin returns the origin point (0,0) in the 2D coordinate system.
func Origin() Point {
	return Point{}
}

// X returns the x-coordinate of the point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point) Y() float64 {
	return p.y
}

// IsZero returns true if the point is the origin.
func (p Point) IsZero() bool {
	return p == Point{}
}

// Add returns the sum of two points as if they were vectors, performing
// component-wise addition.
func (p Point) Add(q Point) Point {
	return NewPoint(p.x+q.x, p.y+q.y)
}

// Sub returns the vector from q to p, performing component-wise subtraction.
func (p Point) Sub(q Point) Point {
	return NewPoint(p.x-q.x, p.y-q.y)
}

// Negate returns the point reflected through the origin.
func (p Point) Negate() Point {
	return NewPoint(-p.x, -p.y)
}

// Scale returns the point scaled by the scalar k.
func (p Point) Scale(k float64) Point {
	return NewPoint(p.x*k, p.y*k)
}

// Offset returns the point translated by (dx, dy).
func (p Point) Offset(dx, dy float64) Point {
	return NewPoint(p.x+dx, p.y+dy)
}

// Dot returns the dot product of the two points treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// Cross returns the z-component of the cross product of the two points
// treated as vectors. The sign indicates which side of p the vector q lies
// on: positive for counter-clockwise, negative for clockwise.
func (p Point) Cross(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// Mag returns the Euclidean length of the point treated as a vector.
func (p Point) Mag() float64 {
	return math.Sqrt(p.Mag2())
}

// Mag2 returns the squared Euclidean length of the point treated as a vector.
func (p Point) Mag2() float64 {
	return p.x*p.x + p.y*p.y
}

// Dist returns the Euclidean distance between the two points.
func (p Point) Dist(q Point) float64 {
	return q.Sub(p).Mag()
}

// Norm returns the unit vector in the direction of p. ok is false for the
// zero vector, which has no direction.
func (p Point) Norm() (Point, bool) {
	mag := p.Mag()
	if mag == 0 {
		return Point{}, false
	}
	return NewPoint(p.x/mag, p.y/mag), true
}

// Perp returns the normalised perpendicular of p, to the right of p's
// direction. ok is false for the zero vector.
func (p Point) Perp() (Point, bool) {
	return NewPoint(p.y, -p.x).Norm()
}

// Clamp restricts the point to lie within the rectangle r.
func (p Point) Clamp(r Rect) Point {
	return NewPoint(numeric.Clamp(p.x, r.l, r.r), numeric.Clamp(p.y, r.b, r.t))
}

// Eq checks approximate equality of the two points within [numeric.Epsilon].
// Exact equality is available through the == operator.
func (p Point) Eq(q Point) bool {
	return numeric.Eq(p.x, q.x) && numeric.Eq(p.y, q.y)
}

// String returns the point formatted as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// MarshalJSON encodes the point as {"x": ..., "y": ...}.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{p.x, p.y})
}

// UnmarshalJSON decodes a point from {"x": ..., "y": ...}.
func (p *Point) UnmarshalJSON(data []byte) error {
	var v struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = NewPoint(v.X, v.Y)
	return nil
}

// Bounds returns a degenerate rectangle covering exactly this point.
func (p Point) Bounds() (Rect, bool) {
	return NewRect(p.x, p.y, p.x, p.y), true
}

// IsEmptySet returns false: a point is never empty.
func (p Point) IsEmptySet() bool {
	return false
}

// IntersectsShape returns true iff this point is a point of s.
func (p Point) IntersectsShape(s Shape) bool {
	switch o := s.(type) {
	case Capsule:
		return capContainsPoint(o, p)
	case Circle:
		return circContainsPoint(o, p)
	case Compound:
		return o.IntersectsShape(p)
	case Polygon:
		return polyContainsPoint(o, p)
	case Rect:
		return o.ContainsPoint(p)
	case Triangle:
		return triContainsPoint(o, p)
	default:
		return unsupportedPair("intersects", p, s)
	}
}

// ContainsShape returns true iff s is a subset of the single point: s is the
// empty set, or s is a zero-extent rectangle sitting on the point. The
// quadtree's push-down asks stored shapes whether they contain a node box,
// so the rectangle case must answer rather than flag.
func (p Point) ContainsShape(s Shape) bool {
	if s.IsEmptySet() {
		return true
	}
	switch o := s.(type) {
	case Rect:
		return numeric.Eq(o.W(), 0) && numeric.Eq(o.H(), 0) && p.Eq(o.BL())
	default:
		return unsupportedPair("contains", p, s)
	}
}

// DistanceToShape returns the shortest distance from this point to s.
func (p Point) DistanceToShape(s Shape) (float64, bool) {
	switch o := s.(type) {
	case Capsule:
		return capPointDist(o, p)
	case Circle:
		return circPointDist(o, p)
	case Compound:
		return o.DistanceToShape(p)
	case Line:
		return linePointDist(o, p), true
	case Path:
		return pathPointDist(o, p)
	case Point:
		return p.Dist(o), true
	case Polygon:
		return polyPointDist(o, p)
	case Rect:
		return pointRectDist(p, o)
	case Segment:
		return pointSegDist(p, o), true
	case Triangle:
		return triPointDist(o, p)
	default:
		_ = unsupportedPair("distance", p, s)
		return 0, false
	}
}

// PointInt is a pair of signed 64-bit integer coordinates, used for lattice
// work. It does not participate in the shape predicate dispatch.
type PointInt struct {
	x int64
	y int64
}

// NewPointInt creates a new PointInt with the specified coordinates.
func NewPointInt(x, y int64) PointInt {
	return PointInt{x: x, y: y}
}

// X returns the x-coordinate of the point.
func (p PointInt) X() int64 {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p PointInt) Y() int64 {
	return p.y
}

// IsZero returns true if the point is the origin.
func (p PointInt) IsZero() bool {
	return p == PointInt{}
}

// Add performs component-wise addition.
func (p PointInt) Add(q PointInt) PointInt {
	return PointInt{x: p.x + q.x, y: p.y + q.y}
}

// Sub performs component-wise subtraction.
func (p PointInt) Sub(q PointInt) PointInt {
	return PointInt{x: p.x - q.x, y: p.y - q.y}
}

// Negate returns the point reflected through the origin.
func (p PointInt) Negate() PointInt {
	return PointInt{x: -p.x, y: -p.y}
}

// Scale returns the point scaled by the integer scalar k.
func (p PointInt) Scale(k int64) PointInt {
	return PointInt{x: p.x * k, y: p.y * k}
}

// Mag2 returns the squared Euclidean length.
func (p PointInt) Mag2() int64 {
	return p.x*p.x + p.y*p.y
}

// Mag returns the Euclidean length.
func (p PointInt) Mag() float64 {
	return math.Sqrt(float64(p.Mag2()))
}

// Dist returns the Euclidean distance between the two points.
func (p PointInt) Dist(q PointInt) float64 {
	return q.Sub(p).Mag()
}

// String returns the point formatted as "(x, y)".
func (p PointInt) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}
