// Package board holds the player's drawing: a fixed set of points and the
// segments drawn between them, plus the check that decides whether the
// drawing is an accepted long tour.
//
// A Board is safe for concurrent use. Input callbacks may add and remove
// segments while a renderer reads Segments or FirstIntersection.
//
// Segment ids are "e1", "e2", ... in creation order and are never reused
// within one Board, including after ClearSegments.
//
// Check applies the acceptance rules in order and reports the first that
// fails:
//
//	ReasonEdgeCount     - not exactly len(points)-1 segments
//	ReasonDegree        - some point has degree 0 or more than 2
//	ReasonIntersection  - two segments cross (see sweep.FindFirstIntersection)
//	ReasonPointOnEdge   - a point rests on a segment it does not end
//	ReasonDisconnected  - the segments do not form one path
//	ReasonTooShort      - total length below the reference, minus 1e-9
//
// The reference is normally the length of Solve's tour. Solve is a heuristic,
// so a player can beat it; a player can equally be rejected for a valid
// path that is longer than the optimum yet shorter than the heuristic.
package board
