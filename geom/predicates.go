package geom

// SignedArea returns twice the signed area of triangle a, b, c:
// > 0 when c is left of the directed line a→b, < 0 when right, 0 when the
// three points are collinear.
func SignedArea(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// ProperIntersect returns the point where s1 and s2 cross, if that point is
// interior to both segments. It returns false for parallel, collinear,
// disjoint and endpoint-touching pairs, and for degenerate input.
func ProperIntersect(s1, s2 Segment) (Point, bool) {
	if s1.Degenerate() || s2.Degenerate() {
		return Point{}, false
	}

	// Orientation of each endpoint against the other segment's line.
	d1 := SignedArea(s2.P1, s2.P2, s1.P1)
	d2 := SignedArea(s2.P1, s2.P2, s1.P2)
	d3 := SignedArea(s1.P1, s1.P2, s2.P1)
	d4 := SignedArea(s1.P1, s1.P2, s2.P2)

	// Any zero means an endpoint sits on the other line: touch or collinear.
	if d1 == 0 || d2 == 0 || d3 == 0 || d4 == 0 {
		return Point{}, false
	}
	if (d1 > 0) == (d2 > 0) || (d3 > 0) == (d4 > 0) {
		return Point{}, false
	}

	t := d1 / (d1 - d2)

	return s1.P1.Add(s1.P2.Sub(s1.P1).Mul(t)), true
}

// Intersects reports whether s1 and s2 properly intersect.
func Intersects(s1, s2 Segment) bool {
	_, ok := ProperIntersect(s1, s2)

	return ok
}

// IsOnSegment reports whether p lies on the closed segment s, endpoints
// included. For a degenerate s it reports p == s.P1.
func IsOnSegment(s Segment, p Point) bool {
	if SignedArea(s.P1, s.P2, p) != 0 {
		return false
	}

	return between(s.P1.X, s.P2.X, p.X) && between(s.P1.Y, s.P2.Y, p.Y)
}

// IsInsideSegment reports whether p lies on s but is not one of its endpoints.
func IsInsideSegment(s Segment, p Point) bool {
	return !s.HasEndpoint(p) && IsOnSegment(s, p)
}

func between(a, b, v float64) bool {
	if a > b {
		a, b = b, a
	}

	return a <= v && v <= b
}
