package sweep

import (
	"github.com/google/btree"

	"github.com/katalvlaran/longtour/geom"
)

// OrderedSet is the capability the sweep needs from its status structure:
// an ordered set with neighbor queries. Any balanced structure works (red-black
// tree, AVL tree, skip list, B-tree); all operations should be O(log n).
//
// Predecessor and Successor take an item that is currently in the set.
type OrderedSet[T any] interface {
	Insert(item T)
	Delete(item T) bool
	Predecessor(item T) (T, bool)
	Successor(item T) (T, bool)
	Clear()
	Len() int
}

// Item is the status-structure handle of one active segment. It wraps the
// segment's Start event and lives from that Start until the matching End.
type Item struct {
	ev  int
	seg int
}

// Segment returns the index of the item's segment in the sweep input.
func (it *Item) Segment() int { return it.seg }

// treeDegree is the B-tree node degree; status sets are small and short-lived.
const treeDegree = 8

// TreeStatus is an OrderedSet backed by github.com/google/btree.
// cmp must be a strict total order: cmp(a, b) == 0 only for the same item.
type TreeStatus[T any] struct {
	tree *btree.BTreeG[T]
	cmp  func(a, b T) int
}

var _ OrderedSet[*Item] = (*TreeStatus[*Item])(nil)

// NewTreeStatus returns an empty TreeStatus ordered by cmp.
func NewTreeStatus[T any](cmp func(a, b T) int) *TreeStatus[T] {
	return &TreeStatus[T]{
		tree: btree.NewG[T](treeDegree, func(a, b T) bool { return cmp(a, b) < 0 }),
		cmp:  cmp,
	}
}

// Insert adds item; an item comparing equal is replaced.
func (s *TreeStatus[T]) Insert(item T) { s.tree.ReplaceOrInsert(item) }

// Delete removes item and reports whether it was present.
func (s *TreeStatus[T]) Delete(item T) bool {
	_, ok := s.tree.Delete(item)

	return ok
}

// Predecessor returns the greatest element strictly less than item.
func (s *TreeStatus[T]) Predecessor(item T) (T, bool) {
	var (
		out   T
		found bool
	)
	s.tree.DescendLessOrEqual(item, func(x T) bool {
		if s.cmp(x, item) == 0 {
			return true // the pivot itself
		}
		out, found = x, true

		return false
	})

	return out, found
}

// Successor returns the smallest element strictly greater than item.
func (s *TreeStatus[T]) Successor(item T) (T, bool) {
	var (
		out   T
		found bool
	)
	s.tree.AscendGreaterOrEqual(item, func(x T) bool {
		if s.cmp(x, item) == 0 {
			return true
		}
		out, found = x, true

		return false
	})

	return out, found
}

// Clear empties the set.
func (s *TreeStatus[T]) Clear() { s.tree.Clear(false) }

// Len returns the number of elements.
func (s *TreeStatus[T]) Len() int { return s.tree.Len() }

// compareItems orders active segments by their vertical position near the
// sweep line; segment index breaks exact ties so the order is strict.
func (a *arena) compareItems(x, y *Item) int {
	if x == y {
		return 0
	}
	if c := a.compareSegments(x.ev, y.ev); c != 0 {
		return c
	}

	return cmpInt(x.seg, y.seg)
}

// compareSegments compares the segments of Start events h1 and h2.
func (a *arena) compareSegments(h1, h2 int) int {
	if h1 == h2 {
		return 0
	}
	p1, p2 := a.events[h1].point, a.events[h2].point
	f1, f2 := a.far(h1), a.far(h2)

	if geom.SignedArea(p1, f1, p2) != 0 || geom.SignedArea(p1, f1, f2) != 0 {
		// Not collinear.
		if p1 == p2 {
			// Shared start: the lower far endpoint is below.
			if a.below(h1, f2) {
				return -1
			}

			return 1
		}
		if p1.X == p2.X {
			return cmpFloat(p1.Y, p2.Y)
		}
		if a.compareEvents(h1, h2) > 0 {
			// h1 entered later: which side of h2 is it on?
			if side(p2, f2, p1, f1) > 0 {
				return 1
			}

			return -1
		}
		if side(p1, f1, p2, f2) > 0 {
			return -1
		}

		return 1
	}

	// Collinear: identical segments are equal, otherwise fall back to event order.
	if p1 == p2 && f1 == f2 {
		return 0
	}

	return a.compareEvents(h1, h2)
}

// side returns the orientation of p against the line a→b, or of q when p lies
// on that line (a segment starting on another's interior).
func side(a, b, p, q geom.Point) float64 {
	if o := geom.SignedArea(a, b, p); o != 0 {
		return o
	}

	return geom.SignedArea(a, b, q)
}
