//go:build !debug

package quadtree

// logDebugf is a no-op unless the build has the debug tag.
func logDebugf(_ string, _ ...interface{}) {}
