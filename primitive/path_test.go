package primitive

import (
	"testing"

	"github.com/mikenye/quadgeom/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathBoundsIncludesFullRadius(t *testing.T) {
	// A horizontal path from (0,0) to (10,0) with radius 2: the bounds
	// extend by the full radius on every side, from (-2,-2) to (12,2).
	p := NewPath([]Point{NewPoint(0, 0), NewPoint(10, 0)}, 2)
	b, ok := p.Bounds()
	require.True(t, ok)

	assert.InDelta(t, -2.0, b.L(), numeric.Epsilon)
	assert.InDelta(t, 12.0, b.R(), numeric.Epsilon)
	assert.InDelta(t, -2.0, b.B(), numeric.Epsilon)
	assert.InDelta(t, 2.0, b.T(), numeric.Epsilon)
}

func TestPathBoundsSingletonPoint(t *testing.T) {
	// A single-point path at (5,5) with radius 3 has bounds (2,2)-(8,8).
	p := NewPath([]Point{NewPoint(5, 5)}, 3)
	b, ok := p.Bounds()
	require.True(t, ok)

	assert.InDelta(t, 2.0, b.L(), numeric.Epsilon)
	assert.InDelta(t, 8.0, b.R(), numeric.Epsilon)
	assert.InDelta(t, 2.0, b.B(), numeric.Epsilon)
	assert.InDelta(t, 8.0, b.T(), numeric.Epsilon)
}

func TestPathCaps(t *testing.T) {
	t.Run("empty path has no capsules", func(t *testing.T) {
		assert.Empty(t, NewPath(nil, 1).Caps())
		_, ok := NewPath(nil, 1).Bounds()
		assert.False(t, ok)
	})

	t.Run("singleton path is one degenerate capsule", func(t *testing.T) {
		caps := NewPath([]Point{NewPoint(1, 1)}, 2).Caps()
		require.Len(t, caps, 1)
		assert.Equal(t, caps[0].St(), caps[0].En())
		assert.Equal(t, 2.0, caps[0].R())
	})

	t.Run("chain has one capsule per consecutive pair", func(t *testing.T) {
		caps := NewPath([]Point{NewPoint(0, 0), NewPoint(1, 0), NewPoint(1, 1), NewPoint(2, 1)}, 0.5).Caps()
		assert.Len(t, caps, 3)
	})

	t.Run("capsules carry the path boundary", func(t *testing.T) {
		caps := NewPathExcl([]Point{NewPoint(0, 0), NewPoint(1, 0)}, 0.5).Caps()
		require.Len(t, caps, 1)
		assert.Equal(t, BoundaryExclude, caps[0].Boundary())
	})
}

func TestPathEmptySet(t *testing.T) {
	assert.True(t, NewPath(nil, 1).IsEmptySet(), "no points")
	assert.True(t, NewPathExcl([]Point{NewPoint(0, 0)}, 0).IsEmptySet(), "open with zero radius")
	assert.False(t, NewPath([]Point{NewPoint(0, 0)}, 0).IsEmptySet(), "closed keeps its points")
	assert.False(t, NewPathExcl([]Point{NewPoint(0, 0)}, 1).IsEmptySet())
}
