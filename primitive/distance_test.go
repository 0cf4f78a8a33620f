package primitive

import (
	"math"
	"testing"

	"github.com/mikenye/quadgeom/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircCircDist(t *testing.T) {
	circ1 := NewCircle(NewPoint(0, 0), 0.4)
	d, ok := circCircDist(circ1, circ1)
	require.True(t, ok)
	assert.InDelta(t, 0.0, d, numeric.Epsilon)

	d, ok = circCircDist(NewCircle(NewPoint(111.6414, -70.632), 0.762), circ1)
	require.True(t, ok)
	assert.InDelta(t, 130.94659781997535, d, 1e-9)
}

func TestCapCapDist(t *testing.T) {
	cap1 := NewCapsule(NewPoint(47, -119.4), NewPoint(47.8, -118.6), 0.125)
	cap2 := NewCapsule(NewPoint(47, -119.8), NewPoint(46.6, -120.2), 0.125)

	d, ok := capCapDist(cap1, cap2)
	require.True(t, ok)
	assert.InDelta(t, 0.15, d, numeric.Epsilon)
}

func TestCapCircDist(t *testing.T) {
	c := NewCapsule(NewPoint(19.8, -100.6), NewPoint(35.8, -100.6), 0.125)
	circ := NewCircle(NewPoint(24.5, -98.25), 2.05)

	d, ok := capCircDist(c, circ)
	require.True(t, ok)
	assert.InDelta(t, 0.175, d, numeric.Epsilon)
}

func TestRectRectDist(t *testing.T) {
	rt1 := NewRect(0, 0, 1, 1)

	tests := map[string]struct {
		a, b     Rect
		expected float64
	}{
		"same rect":              {a: rt1, b: rt1, expected: 0},
		"touching at corner":     {a: NewRect(1, 1, 2, 2), b: rt1, expected: 0},
		"separated horizontally": {a: NewRect(2, 0.5, 2, 2), b: rt1, expected: 1},
		"separated to the left":  {a: NewRect(-2, 0.5, -1, 2), b: rt1, expected: 1},
		"diagonal separation":    {a: NewRect(2, 2, 3, 3), b: rt1, expected: math.Sqrt2},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d, ok := rectRectDist(tc.a, tc.b)
			require.True(t, ok)
			assert.InDelta(t, tc.expected, d, numeric.Epsilon)

			d, ok = RectRectDistance(tc.b, tc.a)
			require.True(t, ok)
			assert.InDelta(t, tc.expected, d, numeric.Epsilon, "symmetry")
		})
	}
}

func TestLinePointDist(t *testing.T) {
	t.Run("degenerate line", func(t *testing.T) {
		l := NewLine(NewPoint(1, 2), NewPoint(1, 2))
		assert.InDelta(t, 1.0, linePointDist(l, NewPoint(2, 2)), numeric.Epsilon)
	})

	t.Run("projection", func(t *testing.T) {
		l := NewLine(NewPoint(1, 1), NewPoint(3, 5))
		p := l.Project(NewPoint(3, 3))
		assert.InDelta(t, 2.2, p.X(), 1e-9)
		assert.InDelta(t, 3.4, p.Y(), 1e-9)
	})

	t.Run("horizontal line", func(t *testing.T) {
		l := NewLine(NewPoint(0, 1), NewPoint(10, 1))
		assert.InDelta(t, 2.0, linePointDist(l, NewPoint(5, 3)), numeric.Epsilon)
	})
}

func TestLineLineDist(t *testing.T) {
	assert.InDelta(t, 0.0, lineLineDist(
		NewLine(NewPoint(0, 0), NewPoint(1, 1)),
		NewLine(NewPoint(0, 1), NewPoint(1, 0)),
	), numeric.Epsilon)
	assert.InDelta(t, 1.0, lineLineDist(
		NewLine(NewPoint(0, 0), NewPoint(1, 0)),
		NewLine(NewPoint(0, 1), NewPoint(1, 1)),
	), numeric.Epsilon)
	assert.InDelta(t, 1.0, lineLineDist(
		NewLine(NewPoint(5, 1), NewPoint(5, 1)),
		NewLine(NewPoint(0, 0), NewPoint(1, 0)),
	), numeric.Epsilon)
}

func TestCircRectDist(t *testing.T) {
	t.Run("never negative when touching", func(t *testing.T) {
		c := NewCircle(NewPoint(0, 0), 1)
		r := NewRect(1, -1, 2, 1)
		d, ok := circRectDist(c, r)
		require.True(t, ok)
		assert.GreaterOrEqual(t, d, 0.0)
	})

	t.Run("separated", func(t *testing.T) {
		c := NewCircle(NewPoint(0, 0), 1)
		r := NewRect(3, 0, 4, 1)
		d, ok := circRectDist(c, r)
		require.True(t, ok)
		assert.InDelta(t, 2.0, d, numeric.Epsilon)
	})
}

func TestPolyScenarios(t *testing.T) {
	poly := NewPolygon([]Point{NewPoint(1, 2), NewPoint(5, 2), NewPoint(4, 5)})

	assert.True(t, poly.ContainsShape(NewPoint(3, 3)))

	d, ok := poly.DistanceToShape(NewRect(3, 3, 4, 4))
	require.True(t, ok)
	assert.InDelta(t, 0.0, d, numeric.Epsilon)

	d, ok = poly.DistanceToShape(NewPoint(5, 1))
	require.True(t, ok)
	assert.InDelta(t, 1.0, d, numeric.Epsilon)
}

func TestPointDistances(t *testing.T) {
	p := NewPoint(0, 0)
	tests := map[string]struct {
		s        Shape
		expected float64
	}{
		"point":            {s: NewPoint(3, 4), expected: 5},
		"segment":          {s: NewSegment(NewPoint(0, 2), NewPoint(4, 2)), expected: 2},
		"rect":             {s: NewRect(3, 4, 5, 6), expected: 5},
		"circle":           {s: NewCircle(NewPoint(0, 3), 1), expected: 2},
		"capsule":          {s: NewCapsule(NewPoint(2, 0), NewPoint(4, 0), 1), expected: 1},
		"triangle":         {s: NewTriangle(NewPoint(2, -1), NewPoint(2, 1), NewPoint(4, 0)), expected: 2},
		"path":             {s: NewPath([]Point{NewPoint(0, 4), NewPoint(4, 4)}, 1), expected: 3},
		"polygon":          {s: NewPolygon([]Point{NewPoint(1, 2), NewPoint(5, 2), NewPoint(4, 5)}), expected: math.Sqrt(5)},
		"containing shape": {s: NewRect(-1, -1, 1, 1), expected: 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d, ok := p.DistanceToShape(tc.s)
			require.True(t, ok)
			assert.InDelta(t, tc.expected, d, numeric.Epsilon)

			// Distance is symmetric for every implemented pair.
			d, ok = tc.s.DistanceToShape(p)
			require.True(t, ok)
			assert.InDelta(t, tc.expected, d, numeric.Epsilon)
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	shapes := []Shape{
		NewRect(0, 0, 1, 1),
		NewCircle(NewPoint(5, 5), 1),
		NewCapsule(NewPoint(-3, 0), NewPoint(-3, 4), 0.5),
		NewPath([]Point{NewPoint(8, 0), NewPoint(10, 2)}, 0.25),
	}
	for i, a := range shapes {
		for j, b := range shapes {
			da, aok := a.DistanceToShape(b)
			db, bok := b.DistanceToShape(a)
			require.Equal(t, aok, bok, "ok symmetry (%d, %d)", i, j)
			assert.InDelta(t, da, db, numeric.Epsilon, "distance symmetry (%d, %d)", i, j)
		}
	}
}

func TestEmptySetDistance(t *testing.T) {
	empty := NewCircleExcl(NewPoint(0, 0), 0)
	full := NewCircle(NewPoint(0, 0), 1)

	_, ok := empty.DistanceToShape(full)
	assert.False(t, ok, "distance from the empty set is undefined")
	_, ok = full.DistanceToShape(empty)
	assert.False(t, ok, "distance to the empty set is undefined")
	_, ok = empty.DistanceToShape(empty)
	assert.False(t, ok)
}
