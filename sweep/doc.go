// Package sweep finds the first proper intersection among a set of line
// segments with a single left-to-right plane sweep that stops as soon as one
// crossing is known.
//
// What:
//
//   - FindFirstIntersection(segments, opts...): a Bentley–Ottmann variant.
//     Every non-degenerate segment contributes a Start and an End event. A
//     Start inserts the segment into the status structure and tests it against
//     its two neighbors; an End removes it and tests the neighbors that become
//     adjacent. Each crossing found this way is queued as an Intersection
//     event. The first Intersection event popped from the queue is the answer
//     and the sweep ends there.
//   - HasIntersection(segments): the boolean form.
//
// Event order (also the priority-queue order):
//
//  1. x ascending, then y ascending;
//  2. at the same point End before Intersection before Start, so a segment
//     is gone from the status structure before another starts at its end;
//  3. two Starts (or two Ends) at the same point: the segment whose far
//     endpoint is lower comes first.
//
// The status structure is any OrderedSet; the default is a B-tree
// (github.com/google/btree). Its order approximates the vertical order of the
// active segments at the sweep position, so status neighbors are spatial
// neighbors.
//
// Degenerate segments (both endpoints equal) never produce events; they are
// counted in Result.Skipped. Segments that only share an endpoint, and
// collinear overlaps, are not proper intersections and are never reported.
//
// Complexity:
//
//   - Time:   O((n + 1) log n) for n segments; the sweep stops at the first
//     crossing, so at most one Intersection event is processed.
//   - Memory: O(n) for the event arena, queue and status structure.
//
// Concurrency: a call owns all of its state; concurrent calls are safe.
package sweep
