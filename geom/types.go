package geom

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Point is a position in the plane. It has no identity beyond its value.
type Point = r2.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Segment is an unordered pair of points. A segment whose endpoints coincide
// is degenerate and is ignored by the sweep and rejected by the tour builder.
type Segment struct {
	P1 Point
	P2 Point
}

// Seg builds a Segment from two points.
func Seg(a, b Point) Segment { return Segment{P1: a, P2: b} }

// Degenerate reports whether both endpoints coincide.
func (s Segment) Degenerate() bool { return s.P1 == s.P2 }

// Length is the Euclidean length of s.
func (s Segment) Length() float64 { return s.P2.Sub(s.P1).Norm() }

// HasEndpoint reports whether p is one of the endpoints of s.
func (s Segment) HasEndpoint(p Point) bool { return s.P1 == p || s.P2 == p }

// SharesEndpoint reports whether s and o have at least one endpoint in common.
func (s Segment) SharesEndpoint(o Segment) bool {
	return s.HasEndpoint(o.P1) || s.HasEndpoint(o.P2)
}

// Same reports whether s and o join the same two points, in either direction.
func (s Segment) Same(o Segment) bool {
	return (s.P1 == o.P1 && s.P2 == o.P2) || (s.P1 == o.P2 && s.P2 == o.P1)
}

// Ordered returns s with its endpoints in sweep order (Less(P1, P2) or equal).
func (s Segment) Ordered() Segment {
	if Less(s.P2, s.P1) {
		return Segment{P1: s.P2, P2: s.P1}
	}

	return s
}

func (s Segment) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
}

// Less orders points by x, then by y. It is the sweep order of positions.
func Less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}

	return a.Y < b.Y
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 { return b.Sub(a).Norm() }

// PathLength sums the lengths of segs.
func PathLength(segs []Segment) float64 {
	var total float64
	for _, s := range segs {
		total += s.Length()
	}

	return total
}
