package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriContainsPoint(t *testing.T) {
	tr := NewTriangle(NewPoint(0, 0), NewPoint(2, 0), NewPoint(1, 2))

	t.Run("interior", func(t *testing.T) {
		assert.True(t, triContainsPoint(tr, NewPoint(1, 0.5)))
		assert.True(t, triContainsPoint(tr, NewPoint(1, 1)))
	})

	t.Run("boundary", func(t *testing.T) {
		// On edges.
		assert.True(t, triContainsPoint(tr, NewPoint(1, 0)))
		assert.True(t, triContainsPoint(tr, NewPoint(0.5, 1)))
		assert.True(t, triContainsPoint(tr, NewPoint(1.5, 1)))
		// At vertices.
		assert.True(t, triContainsPoint(tr, NewPoint(0, 0)))
		assert.True(t, triContainsPoint(tr, NewPoint(2, 0)))
		assert.True(t, triContainsPoint(tr, NewPoint(1, 2)))
	})

	t.Run("outside", func(t *testing.T) {
		assert.False(t, triContainsPoint(tr, NewPoint(1, -1)), "below")
		assert.False(t, triContainsPoint(tr, NewPoint(-1, 1)), "left")
		assert.False(t, triContainsPoint(tr, NewPoint(3, 1)), "right")
		assert.False(t, triContainsPoint(tr, NewPoint(1, 3)), "above")
	})

	t.Run("excluded boundary", func(t *testing.T) {
		open := NewTriangleExcl(NewPoint(0, 0), NewPoint(2, 0), NewPoint(1, 2))
		assert.True(t, triContainsPoint(open, NewPoint(1, 0.5)))
		assert.False(t, triContainsPoint(open, NewPoint(1, 0)))
		assert.False(t, triContainsPoint(open, NewPoint(0, 0)))
	})
}

func TestTriContainsRect(t *testing.T) {
	tr := NewTriangle(NewPoint(0, 0), NewPoint(4, 0), NewPoint(2, 4))
	assert.True(t, triContainsRect(tr, NewRect(1.5, 0.5, 2.5, 1.5)))
	assert.False(t, triContainsRect(tr, NewRect(0, 0, 4, 4)))
}

func TestPolyContainsPoint(t *testing.T) {
	square := NewPolygon([]Point{NewPoint(0, 0), NewPoint(10, 0), NewPoint(10, 10), NewPoint(0, 10)})
	assert.True(t, polyContainsPoint(square, NewPoint(5, 5)))
	assert.False(t, polyContainsPoint(square, NewPoint(15, 5)))
	assert.False(t, polyContainsPoint(square, NewPoint(-1, -1)))

	concave := NewPolygon([]Point{
		NewPoint(0, 0), NewPoint(4, 0), NewPoint(4, 4), NewPoint(2, 1), NewPoint(0, 4),
	})
	assert.True(t, polyContainsPoint(concave, NewPoint(0.5, 1)))
	assert.True(t, polyContainsPoint(concave, NewPoint(3.5, 1)))
	assert.False(t, polyContainsPoint(concave, NewPoint(2, 3)), "inside the notch")
}

func TestPolyContainsPointOpen(t *testing.T) {
	open := NewPolygonExcl([]Point{NewPoint(0, 0), NewPoint(10, 0), NewPoint(10, 10), NewPoint(0, 10)})
	assert.True(t, polyContainsPoint(open, NewPoint(5, 5)))
	// Points on the outline are excluded for the open polygon.
	assert.False(t, polyContainsPoint(open, NewPoint(10, 5)))
}

func TestPolyContainsShapes(t *testing.T) {
	square := NewPolygon([]Point{NewPoint(0, 0), NewPoint(10, 0), NewPoint(10, 10), NewPoint(0, 10)})

	t.Run("capsule", func(t *testing.T) {
		assert.True(t, polyContainsCap(square, NewCapsule(NewPoint(3, 5), NewPoint(7, 5), 1)))
		assert.False(t, polyContainsCap(square, NewCapsule(NewPoint(3, 5), NewPoint(15, 5), 1)))
	})

	t.Run("degenerate capsule is a circle", func(t *testing.T) {
		big := NewPolygon([]Point{NewPoint(-10, -10), NewPoint(10, -10), NewPoint(10, 10), NewPoint(-10, 10)})
		assert.True(t, polyContainsCap(big, NewCapsule(NewPoint(0, 0), NewPoint(0, 0), 1)))
	})

	t.Run("circle", func(t *testing.T) {
		assert.True(t, polyContainsCirc(square, NewCircle(NewPoint(5, 5), 3)))
		assert.False(t, polyContainsCirc(square, NewCircle(NewPoint(5, 5), 6)))
		assert.False(t, polyContainsCirc(square, NewCircle(NewPoint(20, 5), 1)))
	})

	t.Run("path", func(t *testing.T) {
		assert.True(t, polyContainsPath(square, NewPath([]Point{NewPoint(2, 5), NewPoint(8, 5)}, 1)))
		assert.False(t, polyContainsPath(square, NewPath([]Point{NewPoint(2, 5), NewPoint(12, 5)}, 1)))
	})

	t.Run("rect", func(t *testing.T) {
		assert.True(t, polyContainsRect(square, NewRect(1, 1, 9, 9)))
		assert.False(t, polyContainsRect(square, NewRect(5, 5, 11, 11)))
	})

	t.Run("segment in concave polygon", func(t *testing.T) {
		concave := NewPolygon([]Point{
			NewPoint(0, 0), NewPoint(4, 0), NewPoint(4, 4), NewPoint(2, 1), NewPoint(0, 4),
		})
		// Both endpoints inside but the segment crosses the notch.
		assert.False(t, polyContainsSeg(concave, NewSegment(NewPoint(0.5, 1), NewPoint(3.5, 1))))
		assert.True(t, polyContainsSeg(concave, NewSegment(NewPoint(0.2, 0.5), NewPoint(3.8, 0.5))))
	})
}

func TestRectContainsShapes(t *testing.T) {
	r := NewRect(-10, -10, 10, 10)

	t.Run("capsule", func(t *testing.T) {
		assert.True(t, rectContainsCap(r, NewCapsule(NewPoint(-5, 0), NewPoint(5, 0), 2)))
		assert.False(t, rectContainsCap(r, NewCapsule(NewPoint(-5, 0), NewPoint(11, 0), 2)))
	})

	t.Run("degenerate capsule is a circle", func(t *testing.T) {
		assert.True(t, rectContainsCap(r, NewCapsule(NewPoint(0, 0), NewPoint(0, 0), 1)))
	})

	t.Run("circle", func(t *testing.T) {
		assert.True(t, rectContainsCirc(r, NewCircle(NewPoint(0, 0), 10)))
		assert.False(t, rectContainsCirc(r, NewCircle(NewPoint(1, 0), 10)))
		assert.False(t, rectContainsCirc(r, NewCircle(NewPoint(20, 0), 1)))
	})

	t.Run("segment", func(t *testing.T) {
		assert.True(t, rectContainsSeg(r, NewSegment(NewPoint(-10, -10), NewPoint(10, 10))))
		assert.False(t, rectContainsSeg(r, NewSegment(NewPoint(0, 0), NewPoint(0, 11))))
	})

	t.Run("triangle", func(t *testing.T) {
		assert.True(t, rectContainsTri(r, NewTriangle(NewPoint(0, 0), NewPoint(5, 0), NewPoint(0, 5))))
		assert.False(t, rectContainsTri(r, NewTriangle(NewPoint(0, 0), NewPoint(15, 0), NewPoint(0, 5))))
	})

	t.Run("polygon", func(t *testing.T) {
		assert.True(t, rectContainsPoly(r, NewPolygon([]Point{NewPoint(0, 0), NewPoint(5, 0), NewPoint(0, 5)})))
		assert.False(t, rectContainsPoly(r, NewPolygon([]Point{NewPoint(0, 0), NewPoint(15, 0), NewPoint(0, 5)})))
	})

	t.Run("path", func(t *testing.T) {
		assert.True(t, rectContainsPath(r, NewPath([]Point{NewPoint(-5, 0), NewPoint(5, 0)}, 1)))
		assert.False(t, rectContainsPath(r, NewPath([]Point{NewPoint(-5, 0), NewPoint(5, 10)}, 1)))
	})
}

func TestCapCircContainsPoint(t *testing.T) {
	c := NewCapsule(NewPoint(0, 0), NewPoint(4, 0), 1)
	assert.True(t, capContainsPoint(c, NewPoint(2, 0.5)))
	assert.True(t, capContainsPoint(c, NewPoint(2, 1)), "boundary of closed capsule")
	assert.True(t, capContainsPoint(c, NewPoint(-1, 0)), "end cap")
	assert.False(t, capContainsPoint(c, NewPoint(2, 1.5)))

	open := NewCapsuleExcl(NewPoint(0, 0), NewPoint(4, 0), 1)
	assert.True(t, capContainsPoint(open, NewPoint(2, 0.5)))
	assert.False(t, capContainsPoint(open, NewPoint(2, 1)), "boundary of open capsule")

	circ := NewCircle(NewPoint(0, 0), 1)
	assert.True(t, circContainsPoint(circ, NewPoint(0, 1)))
	assert.False(t, circContainsPoint(NewCircleExcl(NewPoint(0, 0), 1), NewPoint(0, 1)))
}

func TestContainmentImpliesIntersection(t *testing.T) {
	square := NewPolygon([]Point{NewPoint(0, 0), NewPoint(10, 0), NewPoint(10, 10), NewPoint(0, 10)})
	r := NewRect(-1, -1, 11, 11)
	shapes := []Shape{
		NewCircle(NewPoint(5, 5), 2),
		NewCapsule(NewPoint(2, 5), NewPoint(8, 5), 1),
		NewPath([]Point{NewPoint(2, 2), NewPoint(8, 8)}, 0.5),
		NewRect(1, 1, 9, 9),
	}
	for _, s := range shapes {
		if assert.True(t, square.ContainsShape(s), "square contains %v", s) {
			assert.True(t, square.IntersectsShape(s), "containment implies intersection for %v", s)
		}
		if assert.True(t, r.ContainsShape(s), "rect contains %v", s) {
			assert.True(t, r.IntersectsShape(s), "containment implies intersection for %v", s)
		}
	}
}
