// Package level produces the point sets a player is asked to connect and
// strings them into a Campaign.
//
// Point sets come from two places:
//
//   - Generators (Circle, Grid, Star, Random) composed with Generate, in the
//     style of a graph builder: each generator appends points under one
//     resolved configuration (scale, origin, seeded RNG).
//   - Level files: YAML documents listing named point sets, read by Decode
//     and written by Encode.
//
// A Campaign walks a fixed list of levels. Level.Start turns a level into a
// fresh board.Board plus the reference length the player must reach.
//
// Determinism:
//   - Generators without randomness are pure functions of their arguments.
//   - Random requires WithSeed or WithRand; equal seeds give equal points.
//
// Errors:
//
//	ErrTooFewPoints    - a size parameter below its minimum, or an empty level.
//	ErrNeedRandSource  - Random used without a seeded RNG.
//	ErrNilGenerator    - Generate received a nil Generator.
//	ErrNoLevels        - a Campaign or level file with no levels.
//	ErrBadLevelFile    - malformed YAML or a point that is not an [x, y] pair.
package level
