package quadtree

import (
	"testing"

	"github.com/mikenye/quadgeom/numeric"
	"github.com/mikenye/quadgeom/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundShapeOps(t *testing.T) {
	c, err := NewCompound([]ShapeInfo{
		Anon(rt(0, 0, 1, 1)),
		Anon(primitive.NewCircle(pt(5, 5), 1)),
	})
	require.NoError(t, err)

	assert.False(t, c.IsEmptySet())

	b, ok := c.Bounds()
	require.True(t, ok)
	assert.Equal(t, rt(0, 0, 6, 6), b)

	assert.True(t, c.IntersectsShape(pt(0.5, 0.5)))
	assert.True(t, c.IntersectsShape(pt(5, 5)))
	assert.False(t, c.IntersectsShape(pt(3, 3)))

	// Containment is per member shape.
	assert.True(t, c.ContainsShape(pt(0.5, 0.5)))
	assert.False(t, c.ContainsShape(rt(0, 0, 6, 6)))

	d, ok := c.DistanceToShape(pt(3, 5))
	require.True(t, ok)
	assert.InDelta(t, 1.0, d, numeric.Epsilon)
}

func TestCompoundEmpty(t *testing.T) {
	c, err := NewCompound(nil)
	require.NoError(t, err)
	assert.True(t, c.IsEmptySet())
	assert.False(t, c.IntersectsShape(pt(0, 0)))
	_, ok := c.DistanceToShape(pt(0, 0))
	assert.False(t, ok)

	var zero primitive.Compound
	assert.True(t, zero.IsEmptySet())
	assert.False(t, zero.IntersectsShape(pt(0, 0)))
	assert.True(t, zero.ContainsShape(NewEmptyShapeForTest()))
}

// NewEmptyShapeForTest returns a shape that is the empty set.
func NewEmptyShapeForTest() primitive.Shape {
	return primitive.NewCircleExcl(primitive.NewPoint(0, 0), 0)
}

func TestCompoundDecomposesOnInsert(t *testing.T) {
	c, err := NewCompound([]ShapeInfo{
		Anon(rt(0, 0, 1, 1)),
		Anon(rt(2, 2, 3, 3)),
	})
	require.NoError(t, err)

	qt := WithBounds(rt(-10, -10, 10, 10))
	handles, err := qt.AddShape(NewShapeInfo(c, 7, 0))
	require.NoError(t, err)
	assert.Len(t, handles, 2, "compound flattens into its members")

	// The members carry the outer info's tag.
	for _, info := range qt.Infos() {
		assert.Equal(t, Tag(7), info.Tag())
	}

	// No stored shape is a compound.
	for _, s := range qt.Shapes() {
		_, isCompound := s.(primitive.Compound)
		assert.False(t, isCompound)
	}

	assert.True(t, qt.Intersects(pt(0.5, 0.5), All))
	assert.True(t, qt.Intersects(pt(2.5, 2.5), All))
	assert.False(t, qt.Intersects(pt(5, 5), All))
}

func TestCompoundAgainstShapePredicates(t *testing.T) {
	c, err := NewCompound([]ShapeInfo{Anon(primitive.NewCircle(pt(0, 0), 1))})
	require.NoError(t, err)

	// Shape-side dispatch delegates to the compound.
	circ := primitive.NewCircle(pt(3, 0), 1)
	d, ok := circ.DistanceToShape(c)
	require.True(t, ok)
	assert.InDelta(t, 1.0, d, numeric.Epsilon)

	r := rt(0, 0, 2, 2)
	assert.True(t, r.IntersectsShape(c))
}

func TestCompoundTree(t *testing.T) {
	c := CompoundWithBounds(rt(0, 0, 10, 10))
	qt := CompoundTree(c)
	require.NotNil(t, qt)

	_, err := qt.AddShape(Anon(rt(1, 1, 2, 2)))
	require.NoError(t, err)
	assert.True(t, c.IntersectsShape(pt(1.5, 1.5)))
}
