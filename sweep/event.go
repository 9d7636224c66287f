package sweep

import (
	"github.com/katalvlaran/longtour/geom"
)

// event is one entry of the arena. All events of a call live in one slice and
// refer to each other by index.
//
// Start and End: seg is the owning segment, twin the event at the other
// endpoint. Start alone carries item while its segment is in the status.
// Intersection: seg and twin are the indices of the two crossing segments.
type event struct {
	point geom.Point
	kind  Kind
	seg   int
	twin  int
	item  *Item
}

// arena owns the events and segments of one sweep.
type arena struct {
	segs   []geom.Segment
	events []event
}

// addSegment appends the Start/End pair for segs[i]. The lexicographically
// smaller endpoint starts the segment. Degenerate segments add nothing and
// report false.
func (a *arena) addSegment(i int) bool {
	s := a.segs[i]
	if s.Degenerate() {
		return false
	}
	first, second := s.P1, s.P2
	if geom.Less(second, first) {
		first, second = second, first
	}
	start := len(a.events)
	a.events = append(a.events,
		event{point: first, kind: Start, seg: i, twin: start + 1},
		event{point: second, kind: End, seg: i, twin: start},
	)

	return true
}

// addIntersection appends an Intersection event for segments i and j at p.
func (a *arena) addIntersection(p geom.Point, i, j int) int {
	a.events = append(a.events, event{point: p, kind: Intersection, seg: i, twin: j})

	return len(a.events) - 1
}

// far returns the point at the other end of a Start/End event's segment.
func (a *arena) far(h int) geom.Point {
	return a.events[a.events[h].twin].point
}

// below reports whether p lies strictly above the segment of event h, that
// is, whether the segment passes below p.
func (a *arena) below(h int, p geom.Point) bool {
	e := &a.events[h]
	if e.kind == Start {
		return geom.SignedArea(e.point, a.far(h), p) > 0
	}

	return geom.SignedArea(a.far(h), e.point, p) > 0
}

// rank orders kinds at a shared point: End, Intersection, Start.
func rank(k Kind) int { return int(k) }

// compareEvents is the total sweep order over event handles.
func (a *arena) compareEvents(h1, h2 int) int {
	if h1 == h2 {
		return 0
	}
	e1, e2 := &a.events[h1], &a.events[h2]

	// 1. Position: x, then y.
	if e1.point.X != e2.point.X {
		return cmpFloat(e1.point.X, e2.point.X)
	}
	if e1.point.Y != e2.point.Y {
		return cmpFloat(e1.point.Y, e2.point.Y)
	}

	// 2. Kind at the same point.
	if e1.kind != e2.kind {
		return cmpInt(rank(e1.kind), rank(e2.kind))
	}

	// 3. Same point, same endpoint kind: the lower segment first.
	if e1.kind != Intersection && e1.seg != e2.seg {
		f1, f2 := a.far(h1), a.far(h2)
		if a.below(h1, f2) {
			return -1
		}
		if a.below(h2, f1) {
			return 1
		}
		// Collinear: order by the far endpoints.
		if c := comparePoints(f1, f2); c != 0 {
			return c
		}
	}

	// 4. Deterministic tie-break.
	if e1.seg != e2.seg {
		return cmpInt(e1.seg, e2.seg)
	}

	return cmpInt(h1, h2)
}

func comparePoints(p, q geom.Point) int {
	if p.X != q.X {
		return cmpFloat(p.X, q.X)
	}

	return cmpFloat(p.Y, q.Y)
}

func cmpFloat(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

func cmpInt(x, y int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}
