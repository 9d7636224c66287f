package tour

import (
	"fmt"

	"github.com/katalvlaran/longtour/geom"
	"github.com/katalvlaran/longtour/sweep"
)

// Validate checks that segments form a simple open path through points:
//   - exactly len(points)−1 non-degenerate segments between input points;
//   - every point has degree 1 or 2 and the path is connected;
//   - no two segments properly intersect;
//   - no point lies on a segment it is not an endpoint of.
//
// Points must be distinct. Failures wrap ErrInvalidTour.
func Validate(points []geom.Point, segments []geom.Segment) error {
	n := len(points)
	if n == 0 {
		return ErrNoPoints
	}

	// 1. Index points.
	index := make(map[geom.Point]int, n)
	for i, p := range points {
		if _, dup := index[p]; dup {
			return fmt.Errorf("%w: point %v appears more than once", ErrInvalidTour, p)
		}
		index[p] = i
	}
	if len(segments) != n-1 {
		return fmt.Errorf("%w: %d segments for %d points, want %d", ErrInvalidTour, len(segments), n, n-1)
	}

	// 2. Degrees and adjacency.
	adj := make([][]int, n)
	for k, s := range segments {
		if s.Degenerate() {
			return fmt.Errorf("%w: segment %d is degenerate", ErrInvalidTour, k)
		}
		i, ok1 := index[s.P1]
		j, ok2 := index[s.P2]
		if !ok1 || !ok2 {
			return fmt.Errorf("%w: segment %d does not join two input points", ErrInvalidTour, k)
		}
		adj[i] = append(adj[i], j)
		adj[j] = append(adj[j], i)
		if len(adj[i]) > 2 || len(adj[j]) > 2 {
			return fmt.Errorf("%w: segment %d gives a point degree > 2", ErrInvalidTour, k)
		}
	}

	// 3. Connectivity: n−1 edges, degree ≤ 2 and connected is a simple path.
	if reached := reach(adj, 0); reached != n {
		return fmt.Errorf("%w: path reaches %d of %d points", ErrInvalidTour, reached, n)
	}

	// 4. Crossings.
	if res, ok := sweep.FindFirstIntersection(segments); ok {
		return fmt.Errorf("%w: segments %d and %d cross at %v", ErrInvalidTour, res.First, res.Second, res.Point)
	}

	// 5. Points resting on segments.
	for k, s := range segments {
		for _, p := range points {
			if geom.IsInsideSegment(s, p) {
				return fmt.Errorf("%w: point %v lies on segment %d", ErrInvalidTour, p, k)
			}
		}
	}

	return nil
}

// Validate checks t against its own points; see the package-level Validate.
func (t Tour) Validate() error {
	return Validate(t.Order, t.Segments)
}

// reach counts the vertices reachable from start.
func reach(adj [][]int, start int) int {
	seen := make([]bool, len(adj))
	stack := []int{start}
	seen[start] = true
	count := 0
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, u := range adj[v] {
			if !seen[u] {
				seen[u] = true
				stack = append(stack, u)
			}
		}
	}

	return count
}
