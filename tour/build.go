package tour

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/longtour"
	"github.com/katalvlaran/longtour/geom"
)

// searchEngine holds all state of one BuildLongTour call.
type searchEngine struct {
	opts Options
	n    int
	pts  []geom.Point // sorted by x, then y; pts[0] is the root

	// Current path.
	visited  []bool
	path     []int
	accepted []geom.Segment

	// cands[d] is the candidate buffer for depth d, reused across siblings.
	cands [][]int

	// Budget.
	useDeadline bool
	deadline    time.Time
	stats       Stats
	err         error
}

// BuildLongTour returns an open path through all points that never crosses
// itself, never runs through a third point and prefers long edges.
//
// Points are sorted by x, then y, and the smallest is the root, so the result
// does not depend on input order. The first complete path found is returned;
// it is long, not necessarily longest.
//
// Errors: ErrNoPoints, ErrNoTourFound (fatal for this input; coincident
// points always end here), ErrSearchExhausted, or the context error.
func BuildLongTour(points []geom.Point, opts ...Option) (Tour, error) {
	// 1. Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(points) == 0 {
		return Tour{}, ErrNoPoints
	}
	if err := cfg.Ctx.Err(); err != nil {
		return Tour{}, err
	}

	// 2. Deterministic order and root.
	pts := append([]geom.Point(nil), points...)
	sort.Slice(pts, func(i, j int) bool { return geom.Less(pts[i], pts[j]) })
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			return Tour{}, fmt.Errorf("%w: point %v appears more than once", ErrNoTourFound, pts[i])
		}
	}

	// 3. Search from the root.
	e := newSearchEngine(pts, cfg)
	ok := e.search(0)

	log := longtour.Logger()
	if e.err != nil {
		if errors.Is(e.err, ErrSearchExhausted) {
			log.Warn("tour: search stopped", "points", e.n, "steps", e.stats.Steps, "err", e.err)
		}

		return Tour{}, e.err
	}
	if !ok {
		return Tour{}, fmt.Errorf("%w: %d points, %d steps", ErrNoTourFound, e.n, e.stats.Steps)
	}
	log.Debug("tour: search done", "points", e.n, "steps", e.stats.Steps, "backtracks", e.stats.Backtracks)

	return e.result(), nil
}

func newSearchEngine(pts []geom.Point, opts Options) *searchEngine {
	n := len(pts)
	e := &searchEngine{
		opts:     opts,
		n:        n,
		pts:      pts,
		visited:  make([]bool, n),
		path:     make([]int, 1, n),
		accepted: make([]geom.Segment, 0, n),
		cands:    make([][]int, n),
	}
	e.visited[0] = true
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// search extends the path from vertex v. It reports true once the path is
// complete; on false the caller undoes its last edge, unless e.err is set.
func (e *searchEngine) search(v int) bool {
	if len(e.accepted) == e.n-1 {
		return true
	}

	var (
		c   int
		seg geom.Segment
	)
	for _, c = range e.candidates(v) {
		if e.spend() {
			return false
		}
		seg = geom.Seg(e.pts[v], e.pts[c])
		if !e.legal(seg, v, c) {
			continue
		}

		// Accept and recurse.
		e.visited[c] = true
		e.path = append(e.path, c)
		e.accepted = append(e.accepted, seg)
		if e.search(c) {
			return true
		}
		if e.err != nil {
			return false
		}

		// Undo.
		e.visited[c] = false
		e.path = e.path[:len(e.path)-1]
		e.accepted = e.accepted[:len(e.accepted)-1]
		e.stats.Backtracks++
	}

	return false
}

// candidateOrder sorts unvisited vertices by descending distance from from,
// then by ascending index.
type candidateOrder struct {
	from int
	row  []int
	e    *searchEngine
}

func (co candidateOrder) Len() int { return len(co.row) }
func (co candidateOrder) Less(i, j int) bool {
	vi, vj := co.row[i], co.row[j]
	di := geom.Distance(co.e.pts[co.from], co.e.pts[vi])
	dj := geom.Distance(co.e.pts[co.from], co.e.pts[vj])
	if di == dj {
		return vi < vj
	}

	return di > dj
}
func (co candidateOrder) Swap(i, j int) { co.row[i], co.row[j] = co.row[j], co.row[i] }

// candidates returns the unvisited vertices in trial order for the current depth.
func (e *searchEngine) candidates(v int) []int {
	depth := len(e.path) - 1
	row := e.cands[depth][:0]
	for u := 0; u < e.n; u++ {
		if !e.visited[u] {
			row = append(row, u)
		}
	}
	sort.Sort(candidateOrder{from: v, row: row, e: e})
	e.cands[depth] = row

	return row
}

// legal reports whether seg = (pts[a], pts[b]) may join the path: it must not
// properly cross an accepted segment and no other point may lie on it.
func (e *searchEngine) legal(seg geom.Segment, a, b int) bool {
	if seg.Degenerate() {
		return false
	}
	for _, s := range e.accepted {
		if geom.Intersects(seg, s) {
			return false
		}
	}
	for i, p := range e.pts {
		if i == a || i == b {
			continue
		}
		if geom.IsOnSegment(seg, p) {
			return false
		}
	}

	return true
}

// spend counts one step and reports whether the search must stop.
func (e *searchEngine) spend() bool {
	e.stats.Steps++
	if e.opts.MaxSteps > 0 && e.stats.Steps > e.opts.MaxSteps {
		e.err = fmt.Errorf("%w: more than %d steps", ErrSearchExhausted, e.opts.MaxSteps)
		return true
	}
	if e.stats.Steps%checkEvery != 0 {
		return false
	}
	if err := e.opts.Ctx.Err(); err != nil {
		e.err = err
		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.err = fmt.Errorf("%w: time limit %v", ErrSearchExhausted, e.opts.TimeLimit)
		return true
	}

	return false
}

// result copies the completed path out of the engine.
func (e *searchEngine) result() Tour {
	t := Tour{
		Order:    make([]geom.Point, len(e.path)),
		Segments: make([]geom.Segment, len(e.accepted)),
		Stats:    e.stats,
	}
	for i, v := range e.path {
		t.Order[i] = e.pts[v]
	}
	copy(t.Segments, e.accepted)
	t.Length = geom.PathLength(t.Segments)

	return t
}
