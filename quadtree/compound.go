package quadtree

import "github.com/mikenye/quadgeom/primitive"

// NewCompound builds a [primitive.Compound] backed by a quadtree over the
// given shapes. Returns [ErrNoBounds] if any shape has no finite bounding
// box.
//
// The compound's predicate methods mutate the backing tree's bookkeeping, so
// a compound is not safe for concurrent use either.
func NewCompound(infos []ShapeInfo) (primitive.Compound, error) {
	qt, err := New(infos)
	if err != nil {
		return primitive.Compound{}, err
	}
	return primitive.NewCompound(qt), nil
}

// CompoundWithBounds builds an empty quadtree-backed compound with fixed
// initial bounds. Use [CompoundTree] to add shapes to it.
func CompoundWithBounds(r primitive.Rect) primitive.Compound {
	return primitive.NewCompound(WithBounds(r))
}

// CompoundTree returns the quadtree backing a compound built by this
// package, or nil for compounds over other index implementations.
func CompoundTree(c primitive.Compound) *QuadTree {
	qt, _ := c.Index().(*QuadTree)
	return qt
}
