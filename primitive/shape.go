// Package primitive defines the planar shape taxonomy of the quadgeom library
// and the full matrix of pairwise predicates between shapes.
//
// # Shape taxonomy
//
// The primitives are [Point], [Line], [Segment], [Rect], [Circle], [Capsule],
// [Triangle], [Polygon], [Path] and [Compound]. All of them implement the
// [Shape] interface, which is how heterogeneous shape populations are handled:
// predicate methods accept a Shape and dispatch on its concrete type.
//
// Shapes are immutable value types. Constructors validate their inputs
// (finite coordinates, non-negative radii, well-formed rectangles) and panic
// on contract violations; a shape that survived construction is always valid.
//
// # Boundary semantics
//
// Every shape with area ([Rect], [Circle], [Capsule], [Triangle], [Polygon],
// [Path]) carries a [Boundary] tag selecting whether the shape's boundary is
// part of the point set. The default constructors build closed shapes; the
// Excl constructors build open ones. Two shapes "touching" at distance zero
// intersect only when both include their boundary.
//
// # Predicate contract
//
// For any two shapes a and b:
//   - a.IntersectsShape(b) is true iff the two point sets share at least one
//     point. The empty set intersects nothing, including itself.
//   - a.ContainsShape(b) is true iff every point of b is a point of a. The
//     empty set is contained by everything and contains only the empty set.
//   - a.DistanceToShape(b) is the shortest Euclidean distance between any two
//     points of the sets, 0 whenever they intersect, and reports ok=false if
//     either operand is empty.
//
// Pairs of shapes for which a predicate is not implemented panic with the
// pair's name; they never silently return a wrong answer.
package primitive

import (
	"fmt"

	"github.com/mikenye/quadgeom/numeric"
)

// Boundary specifies whether a shape's boundary is included in or excluded
// from the shape's point set.
type Boundary uint8

// Valid values for Boundary.
const (
	// BoundaryInclude indicates the shape includes its boundary (closed set).
	BoundaryInclude Boundary = iota

	// BoundaryExclude indicates the shape excludes its boundary (open set).
	BoundaryExclude
)

// String converts a [Boundary] constant into its string representation.
func (b Boundary) String() string {
	switch b {
	case BoundaryInclude:
		return "BoundaryInclude"
	case BoundaryExclude:
		return "BoundaryExclude"
	default:
		panic(fmt.Errorf("unsupported Boundary: %d", b))
	}
}

// bothInclude reports whether two boundary tags both include their boundary.
// Touching at distance zero counts as intersection only in this case.
func bothInclude(a, b Boundary) bool {
	return a == BoundaryInclude && b == BoundaryInclude
}

// Shape is the capability interface implemented by every primitive in this
// package. It is the currency of the quadtree package: queries and stored
// shapes are exchanged as Shape values.
type Shape interface {
	// Bounds returns the shape's axis-aligned bounding box. ok is false
	// for shapes without finite extent (a Line) and for shapes with nothing
	// to bound (a Polygon or Path with no points, a Compound with no
	// bounded members).
	Bounds() (Rect, bool)

	// IsEmptySet returns true iff the shape contains no points.
	IsEmptySet() bool

	// IntersectsShape returns true iff the two shapes have at least one
	// point in common.
	IntersectsShape(s Shape) bool

	// ContainsShape returns true iff all points of s are contained within
	// this shape.
	ContainsShape(s Shape) bool

	// DistanceToShape returns the shortest distance between any pair of
	// points in the two shapes. ok is false if either shape is the empty
	// set.
	DistanceToShape(s Shape) (float64, bool)
}

// unsupportedPair panics, flagging a predicate pair that is not implemented.
func unsupportedPair(op string, a, b Shape) bool {
	panic(fmt.Errorf("primitive: %s not implemented for %T vs %T", op, a, b))
}

// Filled reinterprets a zero-radius path as the polygon traced by its points,
// carrying over the path's boundary tag. Any other shape is returned
// unchanged.
//
// Panics:
//   - If the shape is a path with a non-zero radius, since a thickened
//     outline does not describe a polygon.
func Filled(s Shape) Shape {
	p, ok := s.(Path)
	if !ok {
		return s
	}
	if numeric.Ne(p.R(), 0) {
		panic(fmt.Errorf("primitive: path width %v not supported for polygons", p.R()))
	}
	return newPolygon(p.Pts(), p.boundary)
}
