// Package geom holds the plane geometry every other longtour package is
// built on: the Point and Segment types and three predicates.
//
// What:
//
//   - SignedArea(a, b, c): twice the signed area of triangle abc. Positive for
//     a left turn, negative for a right turn, zero when collinear. Every other
//     predicate reduces to it.
//   - ProperIntersect(s1, s2): the crossing point of two segments, reported
//     only when it is interior to both. Shared endpoints, T-junctions and
//     collinear overlap are not proper intersections.
//   - IsOnSegment(s, p): p lies on the closed segment s.
//
// Points compare by exact value. Two points produced by different float
// computations that should coincide may not; callers that synthesize
// coordinates should snap them first.
//
// Point is github.com/golang/geo/r2.Point, so Add, Sub, Mul, Dot, Cross and
// Norm are available directly.
//
// Complexity: every function here is O(1) and allocation-free.
package geom
