package sweep

import (
	"fmt"

	"github.com/katalvlaran/longtour/geom"
)

// Kind is the role of a sweep event.
type Kind uint8

const (
	// End is the right (or upper, for vertical segments) endpoint of a segment.
	End Kind = iota
	// Intersection is a crossing between two active segments.
	Intersection
	// Start is the left (or lower) endpoint of a segment.
	Start
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	case Intersection:
		return "intersection"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Result describes the first crossing found by FindFirstIntersection.
type Result struct {
	// First and Second index the crossing segments in the input slice,
	// First < Second.
	First, Second int

	// Segments holds the two crossing segments, in First, Second order.
	Segments [2]geom.Segment

	// Point is where they cross.
	Point geom.Point

	// Skipped counts degenerate input segments that were ignored.
	Skipped int
}

// StatusFactory builds an empty ordered set over status items using cmp.
type StatusFactory func(cmp func(a, b *Item) int) OrderedSet[*Item]

// Options configures a sweep.
type Options struct {
	// NewStatus builds the ordered status structure for one call.
	// Defaults to a B-tree backed TreeStatus.
	NewStatus StatusFactory
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with a B-tree status structure.
func DefaultOptions() Options {
	return Options{
		NewStatus: func(cmp func(a, b *Item) int) OrderedSet[*Item] {
			return NewTreeStatus(cmp)
		},
	}
}

// WithStatus replaces the status structure factory. A nil factory is ignored.
func WithStatus(f StatusFactory) Option {
	return func(o *Options) {
		if f != nil {
			o.NewStatus = f
		}
	}
}
