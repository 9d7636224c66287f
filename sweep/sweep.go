package sweep

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/longtour"
	"github.com/katalvlaran/longtour/geom"
)

// sweeper holds the state of one FindFirstIntersection call.
type sweeper struct {
	a      arena
	queue  eventQueue
	status OrderedSet[*Item]

	found     bool
	res       Result
	processed int
}

// FindFirstIntersection sweeps segments left to right and returns the first
// proper intersection it meets. ok is false when no two segments cross.
// res.Skipped is filled in either way.
//
// Degenerate segments are ignored. Segments that only touch at an endpoint,
// or overlap collinearly, do not count.
func FindFirstIntersection(segments []geom.Segment, opts ...Option) (res Result, ok bool) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Build the arena: a Start/End pair per usable segment.
	s := &sweeper{}
	s.a.segs = segments
	s.a.events = make([]event, 0, 2*len(segments)+1)
	skipped := 0
	for i := range segments {
		if !s.a.addSegment(i) {
			skipped++
		}
	}
	s.status = cfg.NewStatus(s.a.compareItems)

	// 2. Seed the queue with every endpoint event.
	s.queue.a = &s.a
	s.queue.h = make([]int, len(s.a.events))
	for h := range s.a.events {
		s.queue.h[h] = h
	}
	heap.Init(&s.queue)

	// 3. Drain in sweep order until the first crossing.
	for s.queue.Len() > 0 && !s.found {
		s.handle(s.queue.pop())
		s.processed++
	}

	longtour.Logger().Debug("sweep: done",
		"segments", len(segments),
		"skipped", skipped,
		"events", s.processed,
		"intersection", s.found,
	)

	s.res.Skipped = skipped

	return s.res, s.found
}

// HasIntersection reports whether any two of segments properly intersect.
func HasIntersection(segments []geom.Segment, opts ...Option) bool {
	_, ok := FindFirstIntersection(segments, opts...)

	return ok
}

// handle processes one event.
func (s *sweeper) handle(h int) {
	switch s.a.events[h].kind {
	case Start:
		s.handleStart(h)
	case End:
		s.handleEnd(h)
	case Intersection:
		s.handleIntersection(h)
	default:
		panic(fmt.Sprintf("sweep: invalid event type %v", s.a.events[h].kind))
	}
}

// handleStart inserts the segment and tests it against both new neighbors.
func (s *sweeper) handleStart(h int) {
	e := &s.a.events[h]
	e.item = &Item{ev: h, seg: e.seg}
	item := e.item
	lo, hi := e.point, s.a.far(h)
	s.status.Insert(item)

	if prev, ok := s.status.Predecessor(item); ok {
		s.check(item.seg, prev.seg)
	}
	if next, ok := s.status.Successor(item); ok {
		s.check(item.seg, next.seg)
	}
	if lo.X == hi.X {
		s.scanVertical(item, lo, hi)
	}
}

// scanVertical tests a vertical segment from lo to hi against every active
// segment that meets x = lo.X within [lo.Y, hi.Y]. The status ranks a
// vertical by its lower endpoint, so segments starting on its interior can
// sit between it and a segment that truly crosses it.
func (s *sweeper) scanVertical(item *Item, lo, hi geom.Point) {
	for cur := item; ; {
		next, ok := s.status.Successor(cur)
		if !ok {
			break
		}
		cur = next
		y, vertical := s.yAt(next.seg, lo.X)
		if vertical {
			continue
		}
		if y > hi.Y {
			break
		}
		s.check(item.seg, next.seg)
	}
	for cur := item; ; {
		prev, ok := s.status.Predecessor(cur)
		if !ok {
			break
		}
		cur = prev
		y, vertical := s.yAt(prev.seg, lo.X)
		if vertical {
			continue
		}
		if y < lo.Y {
			break
		}
		s.check(item.seg, prev.seg)
	}
}

// yAt returns where segment i meets the line at x; vertical is true when i
// is itself vertical.
func (s *sweeper) yAt(i int, x float64) (y float64, vertical bool) {
	seg := s.a.segs[i]
	if seg.P1.X == seg.P2.X {
		return 0, true
	}

	return seg.P1.Y + (x-seg.P1.X)*(seg.P2.Y-seg.P1.Y)/(seg.P2.X-seg.P1.X), false
}

// handleEnd removes the segment; its former neighbors become adjacent.
func (s *sweeper) handleEnd(h int) {
	start := &s.a.events[s.a.events[h].twin]
	item := start.item
	if item == nil {
		return
	}

	prev, hasPrev := s.status.Predecessor(item)
	next, hasNext := s.status.Successor(item)
	s.status.Delete(item)
	start.item = nil

	if hasPrev && hasNext {
		s.check(prev.seg, next.seg)
	}
}

// handleIntersection records the answer and stops the sweep.
func (s *sweeper) handleIntersection(h int) {
	e := s.a.events[h]
	i, j := e.seg, e.twin
	if i > j {
		i, j = j, i
	}
	s.res = Result{
		First:    i,
		Second:   j,
		Segments: [2]geom.Segment{s.a.segs[i], s.a.segs[j]},
		Point:    e.point,
	}
	s.found = true
	s.queue.clear()
	s.status.Clear()
}

// check queues an Intersection event if segments i and j cross.
func (s *sweeper) check(i, j int) {
	if i == j {
		return
	}
	if p, ok := geom.ProperIntersect(s.a.segs[i], s.a.segs[j]); ok {
		s.queue.push(s.a.addIntersection(p, i, j))
	}
}
