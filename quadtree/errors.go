package quadtree

import "errors"

// ErrNoBounds is returned when a shape without a finite bounding box (an
// infinite line, or a compound member without bounds) is registered with a
// quadtree. The tree is left unchanged by the failed call.
var ErrNoBounds = errors.New("quadtree: shape has no bounds")
