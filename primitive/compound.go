package primitive

// SpatialIndex is the capability a [Compound] needs from its backing index.
// It is implemented by the quadtree package's QuadTree; defining the
// interface here keeps this package free of a dependency on the index
// implementation.
//
// Index queries are allowed to mutate internal bookkeeping (test counters,
// lazy subdivision), so implementations are not safe for concurrent use.
type SpatialIndex interface {
	// Bounds returns the bounding box covering every indexed shape. ok is
	// false for an index with no bounds.
	Bounds() (Rect, bool)

	// Shapes returns the live shapes held by the index.
	Shapes() []Shape

	// IntersectsShape reports whether any indexed shape intersects s.
	IntersectsShape(s Shape) bool

	// ContainsShape reports whether any single indexed shape contains s.
	ContainsShape(s Shape) bool

	// DistanceToShape returns the shortest distance from any indexed shape
	// to s. ok is false if the index is empty or s is the empty set.
	DistanceToShape(s Shape) (float64, bool)
}

// Compound is a shape that is a collection of shapes, backed by a spatial
// index. It represents rigid assemblies: the compound's point set is the
// union of its members' point sets.
//
// Compounds are never stored directly inside a spatial index; insertion
// flattens them into their member shapes first.
type Compound struct {
	index SpatialIndex
}

// NewCompound creates a compound over the given backing index. The quadtree
// package provides constructors that build the index from a shape list.
func NewCompound(index SpatialIndex) Compound {
	return Compound{index: index}
}

// Index returns the backing spatial index, or nil for the zero Compound.
func (c Compound) Index() SpatialIndex {
	return c.index
}

// Bounds returns the bounding box covering every member shape.
func (c Compound) Bounds() (Rect, bool) {
	if c.index == nil {
		return Rect{}, false
	}
	return c.index.Bounds()
}

// IsEmptySet returns true iff every member shape is empty (vacuously true
// for a compound with no members).
func (c Compound) IsEmptySet() bool {
	if c.index == nil {
		return true
	}
	for _, s := range c.index.Shapes() {
		if !s.IsEmptySet() {
			return false
		}
	}
	return true
}

// IntersectsShape returns true iff any member shape intersects s.
func (c Compound) IntersectsShape(s Shape) bool {
	if c.index == nil {
		return false
	}
	return c.index.IntersectsShape(s)
}

// ContainsShape returns true iff any single member shape contains s. If s is
// covered only by several members together that is not detected.
func (c Compound) ContainsShape(s Shape) bool {
	if s.IsEmptySet() {
		return true
	}
	if c.index == nil {
		return false
	}
	return c.index.ContainsShape(s)
}

// DistanceToShape returns the shortest distance from any member shape to s.
func (c Compound) DistanceToShape(s Shape) (float64, bool) {
	if c.index == nil {
		return 0, false
	}
	return c.index.DistanceToShape(s)
}
