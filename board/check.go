package board

import (
	"github.com/katalvlaran/longtour"
	"github.com/katalvlaran/longtour/geom"
)

// Check decides whether the drawn segments form an accepted tour whose
// length reaches reference. The first failing rule is reported.
// Complexity: O(n·m) for the point-on-segment rule, O(m log m) otherwise.
func (b *Board) Check(reference float64) Verdict {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v := b.check(reference)
	longtour.Logger().Debug("board: check",
		"valid", v.Valid,
		"reason", v.Reason.String(),
		"segments", len(b.edges),
		"length", v.Length,
		"reference", reference,
	)

	return v
}

func (b *Board) check(reference float64) Verdict {
	edges := b.segmentsLocked()
	v := Verdict{Reference: reference}
	for _, e := range edges {
		v.Length += e.Segment.Length()
	}

	n := len(b.points)
	if n == 0 {
		v.Reason = ReasonEmpty
		return v
	}

	// 1. Edge count.
	if len(edges) != n-1 {
		v.Reason = ReasonEdgeCount
		return v
	}

	// 2. Degrees. A lone point needs no edge.
	if n > 1 {
		for i, nb := range b.adj {
			if d := len(nb); d == 0 || d > 2 {
				v.Reason = ReasonDegree
				v.Point = b.points[i]
				v.IDs = incident(nb)
				return v
			}
		}
	}

	// 3. Crossings.
	if c, ok := firstCrossing(edges); ok {
		v.Reason = ReasonIntersection
		v.Point = c.Point
		v.IDs = c.IDs[:]
		return v
	}

	// 4. Points resting on segments they do not end.
	for _, e := range edges {
		for _, p := range b.points {
			if e.Segment.HasEndpoint(p) {
				continue
			}
			if geom.IsOnSegment(e.Segment, p) {
				v.Reason = ReasonPointOnEdge
				v.Point = p
				v.IDs = []string{e.ID}
				return v
			}
		}
	}

	// 5. One connected path.
	if b.reach(0) != n {
		v.Reason = ReasonDisconnected
		return v
	}

	// 6. Length.
	if v.Length < reference-lengthTolerance {
		v.Reason = ReasonTooShort
		return v
	}

	v.Valid = true

	return v
}

// reach counts the vertices connected to start.
func (b *Board) reach(start int) int {
	seen := make([]bool, len(b.points))
	queue := []int{start}
	seen[start] = true
	count := 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		count++
		for u := range b.adj[v] {
			if !seen[u] {
				seen[u] = true
				queue = append(queue, u)
			}
		}
	}

	return count
}

// incident returns the ids in nb, sorted by creation order.
func incident(nb map[int]string) []string {
	if len(nb) == 0 {
		return nil
	}
	ids := make([]string, 0, len(nb))
	for _, id := range nb {
		ids = append(ids, id)
	}
	sortIDs(ids)

	return ids
}
