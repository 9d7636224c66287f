// Package longtour is the computational core of the "long tour" puzzle:
// connect every point on the board with one open path that never crosses
// itself, and make it at least as long as the reference tour.
//
// What lives here:
//
//	• Geometry primitives: signed area, proper segment intersection,
//	  point-on-segment (package geom)
//	• First-intersection sweep: a Bentley-Ottmann variant that stops on the
//	  first proper crossing among a set of segments (package sweep)
//	• Reference tour: depth-first backtracking that threads a simple open
//	  path through all points, longest candidate edge first (package tour)
//	• Player board: drawn edges, degree bookkeeping and the solution check
//	  the game uses to unlock the next level (package board)
//	• Levels: point-set generators, YAML level files and the campaign that
//	  steps through them (package level)
//
// Everything is synchronous and deterministic. Nothing renders; level files
// are read from and written to caller-supplied streams.
//
// Layout:
//
//	geom/  - Point (github.com/golang/geo/r2), Segment, predicates
//	sweep/ - events, ordered status structure, FindFirstIntersection
//	tour/  - BuildLongTour, Validate
//	board/ - Board, Check, Verdict
//	level/ - Generate, Decode/Encode, Campaign
//
// Example:
//
// The segments (0,0)-(2,1) and (1,0)-(0,2) cross near (0.8, 0.4); the
// segments (0,0)-(1,0) and (1,0)-(2,1) only touch at (1,0) and are legal.
//
// Logging is silent by default; see SetLogger.
package longtour
