package quadtree

import "github.com/google/btree"

// The tag index is an ordered (tag, handle) set over the live shapes,
// maintained on every add and remove. It gives tag-scoped iteration and bulk
// removal without sweeping the whole shape table. Anonymous shapes (NoTag)
// are not indexed.

type tagEntry struct {
	tag    Tag
	handle Handle
}

func tagEntryLess(a, b tagEntry) bool {
	if a.tag != b.tag {
		return a.tag < b.tag
	}
	return a.handle < b.handle
}

func newTagIndex() *btree.BTreeG[tagEntry] {
	return btree.NewG(2, tagEntryLess)
}

func (qt *QuadTree) indexTag(t Tag, h Handle) {
	if t == NoTag {
		return
	}
	qt.tags.ReplaceOrInsert(tagEntry{tag: t, handle: h})
}

func (qt *QuadTree) unindexTag(t Tag, h Handle) {
	if t == NoTag {
		return
	}
	qt.tags.Delete(tagEntry{tag: t, handle: h})
}

// ShapesWithTag returns the handles of every live shape carrying the given
// tag, in handle order. The anonymous tag is never indexed, so
// ShapesWithTag(NoTag) returns nil.
func (qt *QuadTree) ShapesWithTag(t Tag) []Handle {
	if t == NoTag {
		return nil
	}
	var handles []Handle
	qt.tags.AscendGreaterOrEqual(tagEntry{tag: t}, func(e tagEntry) bool {
		if e.tag != t {
			return false
		}
		handles = append(handles, e.handle)
		return true
	})
	return handles
}

// RemoveShapesWithTag removes every live shape carrying the given tag and
// returns how many were removed.
func (qt *QuadTree) RemoveShapesWithTag(t Tag) int {
	handles := qt.ShapesWithTag(t)
	for _, h := range handles {
		qt.RemoveShape(h)
	}
	return len(handles)
}
