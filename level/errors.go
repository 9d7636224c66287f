package level

import "errors"

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrTooFewPoints indicates a size parameter below the generator minimum,
	// or a level without points.
	ErrTooFewPoints = errors.New("level: too few points")

	// ErrNeedRandSource indicates a stochastic generator without an RNG.
	ErrNeedRandSource = errors.New("level: rng is required")

	// ErrNilGenerator indicates a nil Generator passed to Generate.
	ErrNilGenerator = errors.New("level: nil generator")

	// ErrNoLevels indicates an empty level list.
	ErrNoLevels = errors.New("level: no levels")

	// ErrBadLevelFile indicates a level file that cannot be decoded.
	ErrBadLevelFile = errors.New("level: bad level file")
)
