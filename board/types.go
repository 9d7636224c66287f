package board

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/longtour/geom"
	"github.com/katalvlaran/longtour/sweep"
)

// Sentinel errors for board mutations.
var (
	// ErrUnknownPoint indicates a point that is not a vertex of the board.
	ErrUnknownPoint = errors.New("board: unknown point")

	// ErrSelfEdge indicates a segment from a point to itself.
	ErrSelfEdge = errors.New("board: segment endpoints coincide")

	// ErrEdgeExists indicates that the two points are already joined.
	ErrEdgeExists = errors.New("board: segment already drawn")

	// ErrEdgeNotFound indicates an unknown segment id.
	ErrEdgeNotFound = errors.New("board: segment not found")
)

// lengthTolerance absorbs float error when comparing against the reference.
const lengthTolerance = 1e-9

// edgeIDPrefix starts every segment id.
const edgeIDPrefix = 'e'

// Edge is a drawn segment.
type Edge struct {
	// ID is "e" followed by the creation sequence number.
	ID string

	// Segment runs from the first point clicked to the second.
	Segment geom.Segment

	seq uint64
}

// Crossing is a proper intersection between two drawn segments.
type Crossing struct {
	sweep.Result

	// IDs are the board ids of Result.First and Result.Second.
	IDs [2]string
}

// Reason names the acceptance rule a drawing failed.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonEmpty
	ReasonEdgeCount
	ReasonDegree
	ReasonIntersection
	ReasonPointOnEdge
	ReasonDisconnected
	ReasonTooShort
)

// String returns a short lower-case description.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonEmpty:
		return "empty board"
	case ReasonEdgeCount:
		return "wrong segment count"
	case ReasonDegree:
		return "bad point degree"
	case ReasonIntersection:
		return "segments cross"
	case ReasonPointOnEdge:
		return "point on segment"
	case ReasonDisconnected:
		return "disconnected"
	case ReasonTooShort:
		return "too short"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Verdict is the outcome of Check.
type Verdict struct {
	Valid  bool
	Reason Reason

	// IDs lists the segments involved in the failure, if any.
	IDs []string

	// Point is the offending vertex for ReasonDegree and ReasonPointOnEdge,
	// or the crossing point for ReasonIntersection.
	Point geom.Point

	// Length is the drawn length; Reference is what it was checked against.
	Length    float64
	Reference float64
}
