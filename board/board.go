package board

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/katalvlaran/longtour"
	"github.com/katalvlaran/longtour/geom"
	"github.com/katalvlaran/longtour/sweep"
	"github.com/katalvlaran/longtour/tour"
)

// Board is a point set with the segments a player has drawn on it.
type Board struct {
	mu sync.RWMutex

	points []geom.Point       // distinct, sorted by geom.Less
	index  map[geom.Point]int // point → position in points
	edges  map[string]*Edge   // id → edge
	adj    []map[int]string   // vertex → neighbor vertex → edge id

	nextEdgeID uint64
}

// New returns an empty board over points. Coincident points collapse to a
// single vertex; the input slice is not retained.
// Complexity: O(n log n).
func New(points []geom.Point) *Board {
	b := &Board{
		index: make(map[geom.Point]int, len(points)),
		edges: make(map[string]*Edge),
	}
	for _, p := range points {
		if _, dup := b.index[p]; dup {
			continue
		}
		b.index[p] = 0
		b.points = append(b.points, p)
	}
	sort.Slice(b.points, func(i, j int) bool { return geom.Less(b.points[i], b.points[j]) })
	for i, p := range b.points {
		b.index[p] = i
	}
	b.adj = make([]map[int]string, len(b.points))
	for i := range b.adj {
		b.adj[i] = make(map[int]string, 2)
	}

	return b
}

// Points returns the distinct vertices in sorted order.
func (b *Board) Points() []geom.Point {
	out := make([]geom.Point, len(b.points))
	copy(out, b.points)

	return out
}

// Len returns the number of distinct vertices.
func (b *Board) Len() int { return len(b.points) }

// AddSegment draws a segment from a to b and returns its id.
// Errors: ErrSelfEdge, ErrUnknownPoint, ErrEdgeExists (in either direction).
func (b *Board) AddSegment(from, to geom.Point) (string, error) {
	if from == to {
		return "", fmt.Errorf("%w: %v", ErrSelfEdge, from)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.addLocked(from, to)
}

func (b *Board) addLocked(from, to geom.Point) (string, error) {
	i, ok := b.index[from]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownPoint, from)
	}
	j, ok := b.index[to]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownPoint, to)
	}
	if id, exists := b.adj[i][j]; exists {
		return "", fmt.Errorf("%w: %s joins %v and %v", ErrEdgeExists, id, from, to)
	}

	b.nextEdgeID++
	e := &Edge{ID: edgeID(b.nextEdgeID), Segment: geom.Seg(from, to), seq: b.nextEdgeID}
	b.edges[e.ID] = e
	b.adj[i][j] = e.ID
	b.adj[j][i] = e.ID

	return e.ID, nil
}

// AddPath draws a segment between each pair of consecutive points. Either
// every segment is drawn or, on the first error, none are.
func (b *Board) AddPath(path []geom.Point) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ids := make([]string, 0, len(path))
	for k := 0; k+1 < len(path); k++ {
		if path[k] == path[k+1] {
			b.rollbackLocked(ids)
			return nil, fmt.Errorf("%w: %v", ErrSelfEdge, path[k])
		}
		id, err := b.addLocked(path[k], path[k+1])
		if err != nil {
			b.rollbackLocked(ids)
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (b *Board) rollbackLocked(ids []string) {
	for _, id := range ids {
		_ = b.removeLocked(id)
	}
}

// RemoveSegment erases the segment with the given id.
func (b *Board) RemoveSegment(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.removeLocked(id)
}

func (b *Board) removeLocked(id string) error {
	e, ok := b.edges[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}
	i, j := b.index[e.Segment.P1], b.index[e.Segment.P2]
	delete(b.adj[i], j)
	delete(b.adj[j], i)
	delete(b.edges, id)

	return nil
}

// ClearSegments erases every segment. Ids keep counting from where they were.
func (b *Board) ClearSegments() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.edges = make(map[string]*Edge)
	for i := range b.adj {
		b.adj[i] = make(map[int]string, 2)
	}
}

// HasSegment reports whether a and c are joined, in either direction.
func (b *Board) HasSegment(a, c geom.Point) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i, ok1 := b.index[a]
	j, ok2 := b.index[c]
	if !ok1 || !ok2 {
		return false
	}
	_, ok := b.adj[i][j]

	return ok
}

// Degree returns the number of segments ending at p.
func (b *Board) Degree(p geom.Point) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i, ok := b.index[p]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownPoint, p)
	}

	return len(b.adj[i]), nil
}

// Segments returns the drawn edges in creation order.
func (b *Board) Segments() []Edge {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.segmentsLocked()
}

func (b *Board) segmentsLocked() []Edge {
	out := make([]Edge, 0, len(b.edges))
	for _, e := range b.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// SegmentCount returns the number of drawn segments.
func (b *Board) SegmentCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.edges)
}

// Length returns the total length of the drawn segments.
func (b *Board) Length() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var total float64
	for _, e := range b.edges {
		total += e.Segment.Length()
	}

	return total
}

// FirstIntersection reports the first crossing the sweep finds among the
// drawn segments.
func (b *Board) FirstIntersection() (Crossing, bool) {
	b.mu.RLock()
	edges := b.segmentsLocked()
	b.mu.RUnlock()

	return firstCrossing(edges)
}

func firstCrossing(edges []Edge) (Crossing, bool) {
	segs := make([]geom.Segment, len(edges))
	for k, e := range edges {
		segs[k] = e.Segment
	}
	res, ok := sweep.FindFirstIntersection(segs)
	if !ok {
		return Crossing{Result: res}, false
	}

	return Crossing{Result: res, IDs: [2]string{edges[res.First].ID, edges[res.Second].ID}}, true
}

// Solve builds a long tour through the board's points and validates it.
// Its Length is the reference for Check. The board's segments are untouched.
func (b *Board) Solve(opts ...tour.Option) (tour.Tour, error) {
	t, err := tour.BuildLongTour(b.Points(), opts...)
	if err != nil {
		return tour.Tour{}, err
	}
	if err = t.Validate(); err != nil {
		return tour.Tour{}, err
	}
	longtour.Logger().Debug("board: solved",
		"points", len(t.Order),
		"length", t.Length,
		"steps", t.Stats.Steps,
	)

	return t, nil
}

// edgeID formats seq as "e<seq>".
func edgeID(seq uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}

// sortIDs orders segment ids by sequence number, so "e2" precedes "e10".
func sortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return idSeq(ids[i]) < idSeq(ids[j]) })
}

func idSeq(id string) uint64 {
	if len(id) < 2 || id[0] != edgeIDPrefix {
		return 0
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return 0
	}

	return n
}
