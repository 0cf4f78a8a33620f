package quadtree

import (
	"math"

	"github.com/mikenye/quadgeom/primitive"
)

// Tag is an opaque integer identifying the application-level owner of a
// shape in the index. Filters can select or exclude a tag.
type Tag uint64

// NoTag marks a shape without an owner. Anonymous shapes match every tag
// filter except an explicit Tag selection, and are not entered into the tag
// index.
const NoTag Tag = math.MaxUint64

// Kinds is a bitmask of categorical flags attached to a shape for query
// filtering. Two masks have a kind in common when their AND is non-zero.
type Kinds uint64

// HasCommon reports whether the two masks share at least one kind.
func (k Kinds) HasCommon(o Kinds) bool {
	return k&o != 0
}

// tagQueryMode discriminates the TagQuery variants.
type tagQueryMode uint8

const (
	tagQueryAll tagQueryMode = iota
	tagQueryTag
	tagQueryExcept
)

// TagQuery is the tag half of a [Query]: match all tags, one tag, or all but
// one tag.
type TagQuery struct {
	mode tagQueryMode
	tag  Tag
}

// AllTags matches every shape regardless of tag.
func AllTags() TagQuery {
	return TagQuery{mode: tagQueryAll}
}

// WithTag matches only shapes carrying the given tag.
func WithTag(t Tag) TagQuery {
	return TagQuery{mode: tagQueryTag, tag: t}
}

// ExceptTag matches every shape except those carrying the given tag.
func ExceptTag(t Tag) TagQuery {
	return TagQuery{mode: tagQueryExcept, tag: t}
}

func (q TagQuery) matches(t Tag) bool {
	switch q.mode {
	case tagQueryTag:
		return q.tag == t
	case tagQueryExcept:
		return q.tag != t
	default:
		return true
	}
}

// KindsQuery is the kinds half of a [Query]: match all shapes, or only
// shapes sharing a kind with a mask.
type KindsQuery struct {
	hasCommon bool
	kinds     Kinds
}

// AllKinds matches every shape regardless of kinds.
func AllKinds() KindsQuery {
	return KindsQuery{}
}

// HasCommonKinds matches shapes whose kinds mask shares at least one bit
// with the given mask.
func HasCommonKinds(k Kinds) KindsQuery {
	return KindsQuery{hasCommon: true, kinds: k}
}

func (q KindsQuery) matches(k Kinds) bool {
	if !q.hasCommon {
		return true
	}
	return q.kinds.HasCommon(k)
}

// Query filters the shapes a quadtree query may match. A shape matches iff
// both the tag and the kinds sub-queries match.
type Query struct {
	Tags  TagQuery
	Kinds KindsQuery
}

// All matches every shape.
var All = Query{Tags: AllTags(), Kinds: AllKinds()}

func (q Query) matches(info ShapeInfo) bool {
	return q.Tags.matches(info.tag) && q.Kinds.matches(info.kinds)
}

// ShapeInfo bundles a shape with its tag and kinds mask for insertion into a
// quadtree.
type ShapeInfo struct {
	shape primitive.Shape
	tag   Tag
	kinds Kinds
}

// NewShapeInfo creates a ShapeInfo with the given tag and kinds.
func NewShapeInfo(shape primitive.Shape, tag Tag, kinds Kinds) ShapeInfo {
	return ShapeInfo{shape: shape, tag: tag, kinds: kinds}
}

// Anon creates a ShapeInfo with no tag and no kinds.
func Anon(shape primitive.Shape) ShapeInfo {
	return ShapeInfo{shape: shape, tag: NoTag}
}

// Shape returns the shape.
func (s ShapeInfo) Shape() primitive.Shape {
	return s.shape
}

// Tag returns the tag.
func (s ShapeInfo) Tag() Tag {
	return s.tag
}

// Kinds returns the kinds mask.
func (s ShapeInfo) Kinds() Kinds {
	return s.kinds
}

// decompose splits a ShapeInfo into the constituents actually stored in the
// index: compounds expand into their member shapes, paths into their capsule
// chain (so their pieces spread across the tree), and everything else is a
// singleton. The constituents inherit the info's tag and kinds.
func decompose(s ShapeInfo) []ShapeInfo {
	var shapes []primitive.Shape
	switch o := s.shape.(type) {
	case primitive.Compound:
		if o.Index() != nil {
			shapes = o.Index().Shapes()
		}
	case primitive.Path:
		for _, c := range o.Caps() {
			shapes = append(shapes, c)
		}
	default:
		shapes = []primitive.Shape{s.shape}
	}
	out := make([]ShapeInfo, len(shapes))
	for i, shape := range shapes {
		out[i] = ShapeInfo{shape: shape, tag: s.tag, kinds: s.kinds}
	}
	return out
}

// distResult is the memoised outcome of a distance test.
type distResult struct {
	d  float64
	ok bool
}

// The cached predicate helpers re-check the filter on every hit before
// consulting the cache, so a filter rejection never populates the cache and
// filter changes between queries cannot leak stale entries.

func cachedIntersects(cache map[Handle]bool, h Handle, info ShapeInfo, s primitive.Shape, q Query) bool {
	if !q.matches(info) {
		return false
	}
	if res, ok := cache[h]; ok {
		return res
	}
	res := info.shape.IntersectsShape(s)
	cache[h] = res
	return res
}

func cachedContains(cache map[Handle]bool, h Handle, info ShapeInfo, s primitive.Shape, q Query) bool {
	if !q.matches(info) {
		return false
	}
	if res, ok := cache[h]; ok {
		return res
	}
	res := info.shape.ContainsShape(s)
	cache[h] = res
	return res
}

func cachedDist(cache map[Handle]distResult, h Handle, info ShapeInfo, s primitive.Shape, q Query) (float64, bool) {
	if !q.matches(info) {
		return 0, false
	}
	if res, ok := cache[h]; ok {
		return res.d, res.ok
	}
	d, ok := info.shape.DistanceToShape(s)
	cache[h] = distResult{d: d, ok: ok}
	return d, ok
}
