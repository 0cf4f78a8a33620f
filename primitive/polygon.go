package primitive

import (
	"fmt"

	"github.com/tchayen/triangolatte"
)

// Polygon represents a simple, possibly non-convex polygon. The outline is
// stored in counter-clockwise order with successive collinear points removed,
// including across the seam between the last and first points. An
// ear-clipping triangulation and a convexity flag are computed at
// construction and drive the non-point predicates.
type Polygon struct {
	pts      []Point
	tris     []Triangle
	convex   bool
	boundary Boundary
}

// NewPolygon creates a closed polygon from the outline pts. The outline is
// normalised to counter-clockwise order and reduced of collinear points.
// Inputs with fewer than three effective vertices are permitted and yield an
// empty triangulation.
//
// Panics:
//   - If any coordinate is NaN or infinite.
func NewPolygon(pts []Point) Polygon {
	return newPolygon(pts, BoundaryInclude)
}

// NewPolygonExcl creates an open polygon; see [NewPolygon]. An open polygon
// with no triangulation is the empty set.
func NewPolygonExcl(pts []Point) Polygon {
	return newPolygon(pts, BoundaryExclude)
}

func newPolygon(pts []Point, boundary Boundary) Polygon {
	reduced := removeCollinear(pts, true)
	ensureCCW(reduced)
	return Polygon{
		pts:      reduced,
		tris:     triangulate(reduced, boundary),
		convex:   len(reduced) >= 3 && isConvexCCW(reduced),
		boundary: boundary,
	}
}

// triangulate ear-clips the counter-clockwise outline into triangles
// carrying the polygon's boundary tag. Degenerate outlines produce no
// triangles.
func triangulate(pts []Point, boundary Boundary) []Triangle {
	if len(pts) < 3 {
		return nil
	}
	verts := make([]triangolatte.Point, len(pts))
	for i, p := range pts {
		verts[i] = triangolatte.Point{X: p.x, Y: p.y}
	}
	coords, err := triangolatte.Polygon(verts)
	if err != nil || len(coords)%6 != 0 {
		return nil
	}
	tris := make([]Triangle, 0, len(coords)/6)
	for i := 0; i+5 < len(coords); i += 6 {
		tris = append(tris, newTriangle(
			NewPoint(coords[i], coords[i+1]),
			NewPoint(coords[i+2], coords[i+3]),
			NewPoint(coords[i+4], coords[i+5]),
			boundary,
		))
	}
	return tris
}

// Pts returns the reduced counter-clockwise outline.
func (p Polygon) Pts() []Point { return p.pts }

// Triangles returns the ear-clipping triangulation of the outline. It is
// empty for outlines with fewer than three non-collinear vertices.
func (p Polygon) Triangles() []Triangle { return p.tris }

// IsConvex returns the convexity flag computed at construction.
func (p Polygon) IsConvex() bool { return p.convex }

// Boundary returns the polygon's boundary tag.
func (p Polygon) Boundary() Boundary { return p.boundary }

// Edges returns the directed outline edges, including the seam edge from the
// last point back to the first.
func (p Polygon) Edges() [][2]Point {
	return edges(p.pts)
}

// edges enumerates the directed edges of an outline, wrapping from the last
// point back to the first.
func edges(pts []Point) [][2]Point {
	out := make([][2]Point, 0, len(pts))
	for i := range pts {
		out = append(out, [2]Point{pts[i], pts[(i+1)%len(pts)]})
	}
	return out
}

// String returns the polygon formatted as "Poly[p0 p1 ...]".
func (p Polygon) String() string {
	return fmt.Sprintf("Poly%v", p.pts)
}

// Bounds returns the bounding box of the outline. ok is false for a polygon
// with no points.
func (p Polygon) Bounds() (Rect, bool) {
	return ptCloudBounds(p.pts)
}

// IsEmptySet returns true iff the polygon contains no points. A closed
// polygon is empty only when it has no points at all; an open polygon is
// empty whenever no triangulation was produced.
func (p Polygon) IsEmptySet() bool {
	if p.boundary == BoundaryInclude {
		return len(p.pts) == 0
	}
	return len(p.tris) == 0
}

// IntersectsShape returns true iff the polygon and s share a point.
func (p Polygon) IntersectsShape(s Shape) bool {
	switch o := s.(type) {
	case Capsule:
		return capIntersectsPoly(o, p)
	case Circle:
		return circIntersectsPoly(o, p)
	case Compound:
		return o.IntersectsShape(p)
	case Path:
		return pathIntersectsPoly(o, p)
	case Point:
		return polyContainsPoint(p, o)
	case Rect:
		return polyIntersectsRect(p, o)
	default:
		return unsupportedPair("intersects", p, s)
	}
}

// ContainsShape returns true iff every point of s is a point of the polygon.
func (p Polygon) ContainsShape(s Shape) bool {
	if s.IsEmptySet() {
		return true
	}
	switch o := s.(type) {
	case Capsule:
		return polyContainsCap(p, o)
	case Circle:
		return polyContainsCirc(p, o)
	case Path:
		return polyContainsPath(p, o)
	case Point:
		return polyContainsPoint(p, o)
	case Rect:
		return polyContainsRect(p, o)
	case Segment:
		return polyContainsSeg(p, o)
	default:
		return unsupportedPair("contains", p, s)
	}
}

// DistanceToShape returns the shortest distance between the polygon and s.
func (p Polygon) DistanceToShape(s Shape) (float64, bool) {
	switch o := s.(type) {
	case Capsule:
		return capPolyDist(o, p)
	case Circle:
		return circPolyDist(o, p)
	case Compound:
		return o.DistanceToShape(p)
	case Path:
		return pathPolyDist(o, p)
	case Point:
		return polyPointDist(p, o)
	case Rect:
		return polyRectDist(p, o)
	default:
		_ = unsupportedPair("distance", p, s)
		return 0, false
	}
}
