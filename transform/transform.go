// Package transform implements affine transforms of the plane and their
// application to the shapes of the primitive package.
//
// A [Transform] wraps a 3x3 row-major homogeneous matrix. Transforms compose
// with [Transform.Mul]; composition is "right applied first", so
// a.Mul(b).Point(p) equals a.Point(b.Point(p)).
//
// Radius-bearing shapes (capsules, circles, paths) only survive similarity
// transforms — compositions of uniform scale, rotation, translation and
// reflection — because anything else would turn their circular caps into
// ellipses. The shape application methods for those types report ok=false
// for non-similar transforms rather than producing a wrong shape.
package transform

import (
	"math"

	"github.com/mikenye/quadgeom/numeric"
	"github.com/mikenye/quadgeom/primitive"
	"gonum.org/v1/gonum/mat"
)

// Transform is an affine transform of the plane, stored as a 3x3 homogeneous
// matrix. The zero value is not useful; build transforms with the
// constructors in this package.
type Transform struct {
	m *mat.Dense
}

func fromElements(e [9]float64) Transform {
	return Transform{m: mat.NewDense(3, 3, e[:])}
}

// Identity returns the identity transform.
func Identity() Transform {
	return fromElements([9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// Scale returns a transform scaling x by p.X() and y by p.Y() about the
// origin.
func Scale(p primitive.Point) Transform {
	return fromElements([9]float64{
		p.X(), 0, 0,
		0, p.Y(), 0,
		0, 0, 1,
	})
}

// Translate returns a transform translating by the vector p.
func Translate(p primitive.Point) Transform {
	return fromElements([9]float64{
		1, 0, p.X(),
		0, 1, p.Y(),
		0, 0, 1,
	})
}

// Rotate returns a counter-clockwise rotation about the origin by the given
// angle in degrees.
func Rotate(degrees float64) Transform {
	rad := degrees / 180.0 * math.Pi
	sin, cos := math.Sincos(rad)
	return fromElements([9]float64{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	})
}

// Affine returns the translate-and-scale transform taking the rectangle from
// onto the rectangle to: from's corners map onto to's corners. ok is false
// when from has zero width or height, in which case no such transform
// exists.
func Affine(from, to primitive.Rect) (Transform, bool) {
	if numeric.Eq(from.W(), 0) || numeric.Eq(from.H(), 0) {
		return Transform{}, false
	}
	scale := Scale(primitive.NewPoint(to.W()/from.W(), to.H()/from.H()))
	offset := to.BL().Sub(scale.Point(from.BL()))
	return Translate(offset).Mul(scale), true
}

// At returns the matrix element at row i, column j.
func (t Transform) At(i, j int) float64 {
	return t.m.At(i, j)
}

// Mul composes two transforms. The right-hand transform applies first:
// a.Mul(b).Point(p) == a.Point(b.Point(p)).
func (t Transform) Mul(o Transform) Transform {
	var out mat.Dense
	out.Mul(t.m, o.m)
	return Transform{m: &out}
}

// Inverse returns the inverse transform. ok is false when the matrix is
// singular.
func (t Transform) Inverse() (Transform, bool) {
	var inv mat.Dense
	if err := inv.Inverse(t.m); err != nil {
		return Transform{}, false
	}
	return Transform{m: &inv}, true
}

// Eq checks approximate element-wise equality of two transforms.
func (t Transform) Eq(o Transform) bool {
	return mat.EqualApprox(t.m, o.m, numeric.Epsilon)
}

// IsSimilarity reports whether the transform is a similarity: a composition
// of uniform scale, rotation, translation and reflection. The matrix must
// have bottom row (0, 0, 1), opposite off-diagonal entries and diagonal
// entries of equal magnitude.
func (t Transform) IsSimilarity() bool {
	return numeric.Eq(t.m.At(2, 0), 0) &&
		numeric.Eq(t.m.At(2, 1), 0) &&
		numeric.Eq(t.m.At(2, 2), 1) &&
		numeric.Eq(math.Abs(t.m.At(0, 0)), math.Abs(t.m.At(1, 1))) &&
		numeric.Eq(t.m.At(0, 1), -t.m.At(1, 0))
}

// Length scales a length by the transform's uniform scale factor, the
// magnitude of the matrix's first column. ok is false for non-similar
// transforms, which have no single scale factor.
func (t Transform) Length(l float64) (float64, bool) {
	if !t.IsSimilarity() {
		return 0, false
	}
	return l * math.Hypot(t.m.At(0, 0), t.m.At(1, 0)), true
}

// Point applies the transform to a point.
func (t Transform) Point(p primitive.Point) primitive.Point {
	x := t.m.At(0, 0)*p.X() + t.m.At(0, 1)*p.Y() + t.m.At(0, 2)
	y := t.m.At(1, 0)*p.X() + t.m.At(1, 1)*p.Y() + t.m.At(1, 2)
	return primitive.NewPoint(x, y)
}

// Points applies the transform to each point.
func (t Transform) Points(pts []primitive.Point) []primitive.Point {
	out := make([]primitive.Point, len(pts))
	for i, p := range pts {
		out[i] = t.Point(p)
	}
	return out
}

// Segment applies the transform to a segment.
func (t Transform) Segment(s primitive.Segment) primitive.Segment {
	return primitive.NewSegment(t.Point(s.St()), t.Point(s.En()))
}

// Line applies the transform to a line.
func (t Transform) Line(l primitive.Line) primitive.Line {
	return primitive.NewLine(t.Point(l.St()), t.Point(l.En()))
}

// Capsule applies the transform to a capsule, scaling the radius by the
// uniform scale factor. ok is false for non-similar transforms.
func (t Transform) Capsule(c primitive.Capsule) (primitive.Capsule, bool) {
	r, ok := t.Length(c.R())
	if !ok {
		return primitive.Capsule{}, false
	}
	if c.Boundary() == primitive.BoundaryExclude {
		return primitive.NewCapsuleExcl(t.Point(c.St()), t.Point(c.En()), r), true
	}
	return primitive.NewCapsule(t.Point(c.St()), t.Point(c.En()), r), true
}

// Circle applies the transform to a circle, scaling the radius by the
// uniform scale factor. ok is false for non-similar transforms.
func (t Transform) Circle(c primitive.Circle) (primitive.Circle, bool) {
	r, ok := t.Length(c.R())
	if !ok {
		return primitive.Circle{}, false
	}
	if c.Boundary() == primitive.BoundaryExclude {
		return primitive.NewCircleExcl(t.Point(c.P()), r), true
	}
	return primitive.NewCircle(t.Point(c.P()), r), true
}

// Path applies the transform to a path, scaling the radius by the uniform
// scale factor. ok is false for non-similar transforms.
func (t Transform) Path(p primitive.Path) (primitive.Path, bool) {
	r, ok := t.Length(p.R())
	if !ok {
		return primitive.Path{}, false
	}
	if p.Boundary() == primitive.BoundaryExclude {
		return primitive.NewPathExcl(t.Points(p.Pts()), r), true
	}
	return primitive.NewPath(t.Points(p.Pts()), r), true
}

// Polygon applies the transform to a polygon by mapping each outline point
// and re-running the constructor, which restores counter-clockwise order and
// collinear reduction.
func (t Transform) Polygon(p primitive.Polygon) primitive.Polygon {
	if p.Boundary() == primitive.BoundaryExclude {
		return primitive.NewPolygonExcl(t.Points(p.Pts()))
	}
	return primitive.NewPolygon(t.Points(p.Pts()))
}

// Triangle applies the transform to a triangle, re-normalising it to
// counter-clockwise order.
func (t Transform) Triangle(tr primitive.Triangle) primitive.Triangle {
	pts := tr.Pts()
	if tr.Boundary() == primitive.BoundaryExclude {
		return primitive.NewTriangleExcl(t.Point(pts[0]), t.Point(pts[1]), t.Point(pts[2]))
	}
	return primitive.NewTriangle(t.Point(pts[0]), t.Point(pts[1]), t.Point(pts[2]))
}

// Rect applies the transform to a rectangle. Without shear or rotation the
// result stays an axis-aligned rectangle; otherwise the result is the
// polygon traced by the transformed corners. Either way the result keeps the
// rectangle's boundary tag.
func (t Transform) Rect(r primitive.Rect) primitive.Shape {
	if numeric.Eq(t.m.At(1, 0), 0) && numeric.Eq(t.m.At(0, 1), 0) {
		a := t.Point(r.BL())
		b := t.Point(r.TR())
		enclosing := primitive.RectEnclosing(a, b)
		if r.Boundary() == primitive.BoundaryExclude {
			return primitive.NewRectExcl(enclosing.L(), enclosing.B(), enclosing.R(), enclosing.T())
		}
		return enclosing
	}
	pts := r.Pts()
	mapped := t.Points(pts[:])
	if r.Boundary() == primitive.BoundaryExclude {
		return primitive.NewPolygonExcl(mapped)
	}
	return primitive.NewPolygon(mapped)
}

// Shape applies the transform to any shape, dispatching on its concrete
// type. ok is false for compounds (out of scope) and for radius-bearing
// shapes under non-similar transforms.
func (t Transform) Shape(s primitive.Shape) (primitive.Shape, bool) {
	switch o := s.(type) {
	case primitive.Capsule:
		return asShape(t.Capsule(o))
	case primitive.Circle:
		return asShape(t.Circle(o))
	case primitive.Compound:
		return nil, false
	case primitive.Line:
		return t.Line(o), true
	case primitive.Path:
		return asShape(t.Path(o))
	case primitive.Point:
		return t.Point(o), true
	case primitive.Polygon:
		return t.Polygon(o), true
	case primitive.Rect:
		return t.Rect(o), true
	case primitive.Segment:
		return t.Segment(o), true
	case primitive.Triangle:
		return t.Triangle(o), true
	default:
		return nil, false
	}
}

func asShape[S primitive.Shape](s S, ok bool) (primitive.Shape, bool) {
	if !ok {
		return nil, false
	}
	return s, true
}
