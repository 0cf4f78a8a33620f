// Package quadtree implements the spatial index of the quadgeom library: an
// adaptive, lazily subdivided quadtree over a mutable population of shapes.
//
// The index answers three filtered queries — [QuadTree.Intersects],
// [QuadTree.Contains] and [QuadTree.Dist] — against the stored shapes,
// pruning by axis-aligned bounding boxes and memoising per-query pairwise
// predicate results so no stored shape is tested twice within one query.
//
// # Structure
//
// Nodes live in a contiguous array; index 0 is the "no node" sentinel and
// index 1 is the root. A node's bounds are not stored: they derive from the
// node's path in the tree, halving the root bounds per level. Each node
// keeps the shapes whose bounds intersect it, together with a counter of how
// often the shape was tested there; when a counter reaches [TestThreshold]
// the node subdivides (up to [MaxDepth]) and pushes ripe shapes into the
// children they intersect. A shape that fully covers a child's box also
// lands on the child's "contain" fast list, which lets queries match without
// a pairwise test.
//
// # Mutation by queries
//
// Queries mutate the tree: counters advance, nodes subdivide and caches
// fill. A QuadTree is therefore not safe for concurrent use, including
// concurrent read-only queries; callers must serialise access per tree.
// Independent trees are fine to use from different goroutines.
package quadtree

import (
	"slices"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/google/btree"
	"github.com/mikenye/quadgeom/primitive"
)

// Tunable constants of the lazy subdivision scheme. They are constants of
// the implementation, not invariants: tests pin them explicitly.
const (
	// TestThreshold is the number of direct tests a shape endures in one
	// node before the node subdivides and pushes the shape down.
	TestThreshold = 4

	// MaxDepth is the maximum subdivision depth of the tree.
	MaxDepth = 7
)

// Handle is a stable integer identifier for a shape stored in a quadtree.
// Handles survive rebuilds and are reused after removal.
type Handle int

type nodeIdx int

// noNode marks an absent child; node index 0 is reserved as the sentinel.
const noNode nodeIdx = 0

// intersectEntry tracks a shape stored in a node and how many times it was
// tested there directly.
type intersectEntry struct {
	handle Handle
	tests  int
}

// node is one quadtree cell. intersect lists the shapes whose bounds touch
// the cell; contain lists shapes known to cover the cell's entire box.
type node struct {
	intersect []intersectEntry
	contain   []Handle
	bl        nodeIdx
	br        nodeIdx
	tr        nodeIdx
	tl        nodeIdx
}

// QuadTree is the spatial index. Build one with [New] or [WithBounds]; the
// zero value is not usable.
type QuadTree struct {
	shapes []*ShapeInfo
	free   *arraystack.Stack
	nodes  []node

	bounds    primitive.Rect
	hasBounds bool

	tags *btree.BTreeG[tagEntry]

	intersectCache map[Handle]bool
	containCache   map[Handle]bool
	distCache      map[Handle]distResult
}

// New creates a quadtree over the given shapes. The shapes are decomposed as
// in [QuadTree.AddShape] (compounds into their members, paths into their
// capsule chain) and seeded at the root; the world bounds become the union
// of their bounds.
//
// Returns [ErrNoBounds] if any shape has no finite bounding box.
func New(infos []ShapeInfo) (*QuadTree, error) {
	var parts []ShapeInfo
	for _, info := range infos {
		parts = append(parts, decompose(info)...)
	}
	infos = parts
	qt := &QuadTree{
		free:           arraystack.New(),
		tags:           newTagIndex(),
		intersectCache: map[Handle]bool{},
		containCache:   map[Handle]bool{},
		distCache:      map[Handle]distResult{},
	}
	root := node{}
	for i, info := range infos {
		b, ok := info.shape.Bounds()
		if !ok {
			return nil, ErrNoBounds
		}
		if qt.hasBounds {
			qt.bounds = qt.bounds.United(b)
		} else {
			qt.bounds, qt.hasBounds = b, true
		}
		root.intersect = append(root.intersect, intersectEntry{handle: Handle(i)})
	}
	qt.shapes = make([]*ShapeInfo, len(infos))
	for i := range infos {
		info := infos[i]
		qt.shapes[i] = &info
		qt.indexTag(info.tag, Handle(i))
	}
	qt.nodes = []node{{}, root}
	return qt, nil
}

// WithBounds creates an empty quadtree with a fixed initial world bounds.
// Shapes inserted within the bounds do not trigger rebuilds.
func WithBounds(r primitive.Rect) *QuadTree {
	return &QuadTree{
		free:           arraystack.New(),
		tags:           newTagIndex(),
		nodes:          []node{{}, {}},
		bounds:         r,
		hasBounds:      true,
		intersectCache: map[Handle]bool{},
		containCache:   map[Handle]bool{},
		distCache:      map[Handle]distResult{},
	}
}

// Bounds returns the world bounds covering every live shape. ok is false for
// a tree that has never held a shape or explicit bounds.
func (qt *QuadTree) Bounds() (primitive.Rect, bool) {
	return qt.bounds, qt.hasBounds
}

// Infos returns the live shape infos in handle order.
func (qt *QuadTree) Infos() []ShapeInfo {
	out := make([]ShapeInfo, 0, len(qt.shapes))
	for _, s := range qt.shapes {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// Shapes returns the live shapes in handle order. Together with the query
// methods this makes *QuadTree a [primitive.SpatialIndex].
func (qt *QuadTree) Shapes() []primitive.Shape {
	out := make([]primitive.Shape, 0, len(qt.shapes))
	for _, s := range qt.shapes {
		if s != nil {
			out = append(out, s.shape)
		}
	}
	return out
}

// Rts returns the bounds of every materialised node, for debugging and
// visualisation of the tree's shape.
func (qt *QuadTree) Rts() []primitive.Rect {
	var rts []primitive.Rect
	if qt.hasBounds {
		qt.rts(1, qt.bounds, &rts)
	}
	return rts
}

func (qt *QuadTree) rts(idx nodeIdx, r primitive.Rect, out *[]primitive.Rect) {
	if idx == noNode {
		return
	}
	*out = append(*out, r)
	qt.rts(qt.nodes[idx].bl, r.BLQuadrant(), out)
	qt.rts(qt.nodes[idx].br, r.BRQuadrant(), out)
	qt.rts(qt.nodes[idx].tr, r.TRQuadrant(), out)
	qt.rts(qt.nodes[idx].tl, r.TLQuadrant(), out)
}

// AddShape registers a shape with the index and returns a handle per stored
// constituent: compounds expand into their members, paths into their capsule
// chain, everything else is a single constituent.
//
// If the constituents fit the current world bounds they are seeded at the
// root; otherwise the bounds grow to the union and the node tree is rebuilt
// from scratch (previously removed shapes stay removed). Returns
// [ErrNoBounds], leaving the tree unchanged, if any constituent has no
// finite bounding box.
func (qt *QuadTree) AddShape(s ShapeInfo) ([]Handle, error) {
	constituents := decompose(s)

	newBounds, newHas := qt.bounds, qt.hasBounds
	for _, c := range constituents {
		b, ok := c.shape.Bounds()
		if !ok {
			return nil, ErrNoBounds
		}
		if newHas {
			newBounds = newBounds.United(b)
		} else {
			newBounds, newHas = b, true
		}
	}

	boundsChanged := newHas != qt.hasBounds || newBounds != qt.bounds
	handles := make([]Handle, 0, len(constituents))

	for _, c := range constituents {
		c := c
		var h Handle
		if v, ok := qt.free.Pop(); ok {
			h = v.(Handle)
			qt.shapes[h] = &c
		} else {
			h = Handle(len(qt.shapes))
			qt.shapes = append(qt.shapes, &c)
		}
		qt.indexTag(c.tag, h)
		handles = append(handles, h)
		if !boundsChanged {
			qt.nodes[1].intersect = append(qt.nodes[1].intersect, intersectEntry{handle: h})
		}
	}

	if boundsChanged {
		logDebugf("bounds grew to %v, rebuilding %d nodes", newBounds, len(qt.nodes))
		qt.bounds, qt.hasBounds = newBounds, newHas
		qt.rebuildNodes()
	}

	return handles, nil
}

// RemoveShape deletes the shape behind the handle. The handle becomes free
// for reuse by a later AddShape; removing an unknown or already removed
// handle is a no-op. Removed shapes do not reappear after later rebuilds.
func (qt *QuadTree) RemoveShape(h Handle) {
	if h < 0 || int(h) >= len(qt.shapes) || qt.shapes[h] == nil {
		return
	}
	qt.unindexTag(qt.shapes[h].tag, h)
	qt.shapes[h] = nil

	// Remove everything referencing this shape.
	for i := range qt.nodes {
		qt.nodes[i].intersect = slices.DeleteFunc(qt.nodes[i].intersect, func(e intersectEntry) bool {
			return e.handle == h
		})
		qt.nodes[i].contain = slices.DeleteFunc(qt.nodes[i].contain, func(c Handle) bool {
			return c == h
		})
	}
	qt.free.Push(h)
}

// rebuildNodes resets the node tree: every live shape is re-seeded at the
// root with a fresh test counter, the free list is rebuilt from the table
// holes and the per-query caches are dropped.
func (qt *QuadTree) rebuildNodes() {
	root := node{}
	for i, s := range qt.shapes {
		if s != nil {
			root.intersect = append(root.intersect, intersectEntry{handle: Handle(i)})
		}
	}
	qt.nodes = []node{{}, root}
	qt.free.Clear()
	for i, s := range qt.shapes {
		if s == nil {
			qt.free.Push(Handle(i))
		}
	}
	qt.resetCaches()
}

func (qt *QuadTree) resetCaches() {
	clear(qt.intersectCache)
	clear(qt.containCache)
	clear(qt.distCache)
}

// Intersects reports whether any stored shape matching the query filter
// intersects s.
func (qt *QuadTree) Intersects(s primitive.Shape, q Query) bool {
	qt.resetCaches()
	if !qt.hasBounds {
		return false
	}
	return qt.inter(s, q, 1, qt.bounds, 0)
}

// Contains reports whether any single stored shape matching the query filter
// contains s. Coverage split across several stored shapes is not detected.
func (qt *QuadTree) Contains(s primitive.Shape, q Query) bool {
	qt.resetCaches()
	if !qt.hasBounds {
		return false
	}
	return qt.contain(s, q, 1, qt.bounds, 0)
}

// Dist returns the shortest distance from s to any stored shape matching the
// query filter, 0 when something intersects s. ok is false when no matching
// non-empty shape exists or the tree is empty.
func (qt *QuadTree) Dist(s primitive.Shape, q Query) (float64, bool) {
	qt.resetCaches()
	if !qt.hasBounds {
		return 0, false
	}
	return qt.distance(s, q, 1, qt.bounds, 0, false, 0)
}

// IntersectsShape implements [primitive.SpatialIndex] with an unfiltered
// intersection query.
func (qt *QuadTree) IntersectsShape(s primitive.Shape) bool {
	return qt.Intersects(s, All)
}

// ContainsShape implements [primitive.SpatialIndex] with an unfiltered
// containment query.
func (qt *QuadTree) ContainsShape(s primitive.Shape) bool {
	return qt.Contains(s, All)
}

// DistanceToShape implements [primitive.SpatialIndex] with an unfiltered
// distance query.
func (qt *QuadTree) DistanceToShape(s primitive.Shape) (float64, bool) {
	return qt.Dist(s, All)
}

func (qt *QuadTree) inter(s primitive.Shape, q Query, idx nodeIdx, r primitive.Rect, depth int) bool {
	// No intersection in this node if we don't intersect its bounds.
	if !s.IntersectsShape(r) {
		return false
	}

	// Any shape containing this node must intersect |s|, since |s|
	// intersects the node bounds.
	for _, h := range qt.nodes[idx].contain {
		if q.matches(*qt.shapes[h]) {
			return true
		}
	}

	// Check children first: traversing the tree is expected to be faster
	// than pairwise shape tests.
	if c := qt.nodes[idx].bl; c != noNode && qt.inter(s, q, c, r.BLQuadrant(), depth+1) {
		return true
	}
	if c := qt.nodes[idx].br; c != noNode && qt.inter(s, q, c, r.BRQuadrant(), depth+1) {
		return true
	}
	if c := qt.nodes[idx].tr; c != noNode && qt.inter(s, q, c, r.TRQuadrant(), depth+1) {
		return true
	}
	if c := qt.nodes[idx].tl; c != noNode && qt.inter(s, q, c, r.TLQuadrant(), depth+1) {
		return true
	}

	// Check shapes stored in this node:
	hadIntersection := false
	for i := range qt.nodes[idx].intersect {
		e := &qt.nodes[idx].intersect[i]
		e.tests++
		if cachedIntersects(qt.intersectCache, e.handle, *qt.shapes[e.handle], s, q) {
			hadIntersection = true
			break
		}
	}
	qt.maybePushDown(idx, r, depth)

	return hadIntersection
}

func (qt *QuadTree) contain(s primitive.Shape, q Query, idx nodeIdx, r primitive.Rect, depth int) bool {
	// No containment of |s| if the node bounds don't intersect |s|.
	if !r.IntersectsShape(s) {
		return false
	}

	// If the node bounds contain |s| and some shape contains the node
	// bounds, that shape contains |s|.
	if r.ContainsShape(s) {
		for _, h := range qt.nodes[idx].contain {
			if q.matches(*qt.shapes[h]) {
				return true
			}
		}
	}

	// Check children first.
	if c := qt.nodes[idx].bl; c != noNode && qt.contain(s, q, c, r.BLQuadrant(), depth+1) {
		return true
	}
	if c := qt.nodes[idx].br; c != noNode && qt.contain(s, q, c, r.BRQuadrant(), depth+1) {
		return true
	}
	if c := qt.nodes[idx].tr; c != noNode && qt.contain(s, q, c, r.TRQuadrant(), depth+1) {
		return true
	}
	if c := qt.nodes[idx].tl; c != noNode && qt.contain(s, q, c, r.TLQuadrant(), depth+1) {
		return true
	}

	// Check shapes stored in this node:
	hadContainment := false
	for i := range qt.nodes[idx].intersect {
		e := &qt.nodes[idx].intersect[i]
		e.tests++
		if cachedContains(qt.containCache, e.handle, *qt.shapes[e.handle], s, q) {
			hadContainment = true
			break
		}
	}
	qt.maybePushDown(idx, r, depth)

	return hadContainment
}

func minOpt(a float64, aok bool, b float64, bok bool) (float64, bool) {
	switch {
	case !aok:
		return b, bok
	case !bok:
		return a, aok
	default:
		return min(a, b), true
	}
}

func (qt *QuadTree) distance(s primitive.Shape, q Query, idx nodeIdx, r primitive.Rect, best float64, bestOk bool, depth int) (float64, bool) {
	sb, sbOk := s.Bounds()

	// If the node's lower-bound distance cannot improve the best, skip the
	// whole subtree.
	if sbOk && bestOk {
		if lower, ok := primitive.RectRectDistance(r, sb); ok && lower >= best {
			return best, bestOk
		}
	}

	// If the node bounds contain |s|'s bounds and some shape covers the
	// node bounds, that shape intersects |s|: distance zero.
	if sbOk && r.ContainsRect(sb) {
		for _, h := range qt.nodes[idx].contain {
			if q.matches(*qt.shapes[h]) {
				return 0, true
			}
		}
	}

	// Traverse children in order of shortest AABB distance, pruning any
	// child whose lower bound cannot beat the current best. This optimises
	// the common case of a small query near its closest shapes.
	type childEntry struct {
		lower float64
		idx   nodeIdx
		r     primitive.Rect
	}
	childDist := func(childRt primitive.Rect) float64 {
		if !sbOk {
			return 0
		}
		d, _ := primitive.RectRectDistance(childRt, sb)
		return d
	}
	children := make([]childEntry, 0, 4)
	if c := qt.nodes[idx].bl; c != noNode {
		childRt := r.BLQuadrant()
		children = append(children, childEntry{childDist(childRt), c, childRt})
	}
	if c := qt.nodes[idx].br; c != noNode {
		childRt := r.BRQuadrant()
		children = append(children, childEntry{childDist(childRt), c, childRt})
	}
	if c := qt.nodes[idx].tr; c != noNode {
		childRt := r.TRQuadrant()
		children = append(children, childEntry{childDist(childRt), c, childRt})
	}
	if c := qt.nodes[idx].tl; c != noNode {
		childRt := r.TLQuadrant()
		children = append(children, childEntry{childDist(childRt), c, childRt})
	}
	slices.SortFunc(children, func(a, b childEntry) int {
		switch {
		case a.lower < b.lower:
			return -1
		case a.lower > b.lower:
			return 1
		default:
			return 0
		}
	})

	for _, child := range children {
		// Sorted by lower bound, so the first unbeatable child ends the
		// loop.
		if bestOk && best < child.lower {
			break
		}
		d, ok := qt.distance(s, q, child.idx, child.r, best, bestOk, depth+1)
		best, bestOk = minOpt(best, bestOk, d, ok)
	}

	// Check shapes stored in this node:
	for i := range qt.nodes[idx].intersect {
		e := &qt.nodes[idx].intersect[i]
		e.tests++
		d, ok := cachedDist(qt.distCache, e.handle, *qt.shapes[e.handle], s, q)
		best, bestOk = minOpt(best, bestOk, d, ok)
	}
	qt.maybePushDown(idx, r, depth)

	return best, bestOk
}

// maybePushDown subdivides the node if any of its shapes has been tested
// [TestThreshold] times, pushing ripe shapes into the children they
// intersect.
func (qt *QuadTree) maybePushDown(idx nodeIdx, r primitive.Rect, depth int) {
	if depth > MaxDepth {
		return
	}
	var ripe []intersectEntry
	kept := qt.nodes[idx].intersect[:0]
	for _, e := range qt.nodes[idx].intersect {
		if e.tests >= TestThreshold {
			ripe = append(ripe, e)
		} else {
			kept = append(kept, e)
		}
	}
	qt.nodes[idx].intersect = kept
	if len(ripe) == 0 {
		return
	}
	logDebugf("pushing %d shapes down from node %d at depth %d", len(ripe), idx, depth)
	qt.ensureChildren(idx)

	quads := [4]struct {
		r   primitive.Rect
		idx nodeIdx
	}{
		{r.BLQuadrant(), qt.nodes[idx].bl},
		{r.BRQuadrant(), qt.nodes[idx].br},
		{r.TRQuadrant(), qt.nodes[idx].tr},
		{r.TLQuadrant(), qt.nodes[idx].tl},
	}
	for _, e := range ripe {
		shape := qt.shapes[e.handle].shape
		// Put the shape into every child it intersects.
		for _, quad := range quads {
			if shape.IntersectsShape(quad.r) {
				qt.nodes[quad.idx].intersect = append(qt.nodes[quad.idx].intersect, intersectEntry{handle: e.handle})

				if shape.ContainsShape(quad.r) {
					qt.nodes[quad.idx].contain = append(qt.nodes[quad.idx].contain, e.handle)
				}
			}
		}
	}
}

// ensureChildren materialises the four children of a node, allocated as a
// run of four consecutive node slots.
func (qt *QuadTree) ensureChildren(idx nodeIdx) {
	if qt.nodes[idx].bl != noNode {
		return
	}
	qt.nodes[idx].bl = nodeIdx(len(qt.nodes))
	qt.nodes = append(qt.nodes, node{})
	qt.nodes[idx].br = nodeIdx(len(qt.nodes))
	qt.nodes = append(qt.nodes, node{})
	qt.nodes[idx].tr = nodeIdx(len(qt.nodes))
	qt.nodes = append(qt.nodes, node{})
	qt.nodes[idx].tl = nodeIdx(len(qt.nodes))
	qt.nodes = append(qt.nodes, node{})
}
