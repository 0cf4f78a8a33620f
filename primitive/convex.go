package primitive

// removeCollinear drops interior points that are collinear with their
// neighbours. With wrapAround set, the seam between the last and first
// points is reduced as well (polygon outlines); without it the endpoints are
// preserved (paths).
func removeCollinear(pts []Point, wrapAround bool) []Point {
	if len(pts) <= 2 {
		out := make([]Point, len(pts))
		copy(out, pts)
		return out
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0], pts[1])
	for _, p := range pts[2:] {
		l := len(out)
		if isCollinear(out[l-2], out[l-1], p) {
			out = out[:l-1]
		}
		out = append(out, p)
	}
	if wrapAround && len(out) >= 3 {
		// Track how many elements to skip from the front instead of
		// removing them (O(n)).
		start := 0
		// Check wrap-around: last, first, second.
		for len(out)-start >= 3 && isCollinear(out[len(out)-1], out[start], out[start+1]) {
			start++
		}
		// Check wrap-around: second-to-last, last, first.
		for len(out)-start >= 3 && isCollinear(out[len(out)-2], out[len(out)-1], out[start]) {
			out = out[:len(out)-1]
		}
		if start > 0 {
			out = out[start:]
		}
	}
	return out
}

// ensureCCW reverses pts in place if the first three points turn clockwise,
// so that a simple outline ends up in counter-clockwise order. Collinear
// leading points are left untouched.
func ensureCCW(pts []Point) {
	if len(pts) > 2 && !isLeftOf(NewLine(pts[0], pts[1]), pts[2]) {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
}

// isConvexCCW tests whether the counter-clockwise outline pts is strictly
// convex.
func isConvexCCW(pts []Point) bool {
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		c := pts[(i+2)%len(pts)]
		if !isStrictlyLeftOf(NewLine(a, b), c) {
			return false
		}
	}
	return true
}

// ptCloudBounds returns the bounding box of a point cloud; ok is false for
// an empty cloud.
func ptCloudBounds(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	l, b := pts[0].x, pts[0].y
	r, t := pts[0].x, pts[0].y
	for _, p := range pts[1:] {
		l = min(l, p.x)
		b = min(b, p.y)
		r = max(r, p.x)
		t = max(t, p.y)
	}
	return NewRect(l, b, r, t), true
}
