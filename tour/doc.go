// Package tour builds the reference "long tour" for a point set: an open,
// non-self-intersecting path that visits every point exactly once and is
// biased toward long edges. The player's path has to be at least this long.
//
// Algorithm (BuildLongTour):
//
//  1. Sort the points by x, then y; the first one is the search root.
//  2. Depth-first search from the current vertex v. The path is complete once
//     it has n−1 segments; the first complete path wins.
//  3. Candidates are the unvisited points, tried in descending distance from
//     v (index breaks ties). An edge is legal iff it properly intersects no
//     accepted segment and no other input point lies on it.
//  4. A legal edge is accepted and the search recurses; on failure it is
//     undone and the next candidate tried (chronological backtracking).
//
// The result is some legal long tour, not the longest one.
//
// Budgets: the search is exponential in the worst case. Options.MaxSteps and
// Options.TimeLimit bound it, and Options.Ctx cancels it. Deadline and
// context checks are sparse (every 1024 steps) to keep the hot loop cheap.
//
// Errors:
//
//   - ErrNoPoints          the input is empty.
//   - ErrNoTourFound       no simple path exists (coincident points, or the
//     search exhausted every branch from the root). Fatal for that input.
//   - ErrSearchExhausted   the step or time budget ran out first.
//   - context.Canceled / context.DeadlineExceeded from Options.Ctx.
//   - ErrInvalidTour       from Validate, wrapped with the rule that failed.
//
// Complexity:
//
//   - Time:   O(n!·n²) worst case; each candidate test is O(n).
//   - Memory: O(n²) for the per-depth candidate lists, O(n) otherwise.
//
// Determinism: the same points in any input order give the same tour.
package tour
