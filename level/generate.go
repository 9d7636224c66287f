package level

import (
	"fmt"
	"math"

	"github.com/katalvlaran/longtour/geom"
)

// Method tags for error context.
const (
	methodCircle = "Circle"
	methodGrid   = "Grid"
	methodStar   = "Star"
	methodRandom = "Random"
)

const (
	minCircle = 3
	minStar   = 3
)

// Generator appends points to dst under cfg. Generators validate their
// parameters first and never panic.
type Generator func(dst []geom.Point, cfg config) ([]geom.Point, error)

// Generate resolves opts once and runs gens in order. Points produced more
// than once are kept only at their first occurrence.
// Complexity: O(total points).
func Generate(opts []Option, gens ...Generator) ([]geom.Point, error) {
	cfg := newConfig(opts...)

	var pts []geom.Point
	for i, gen := range gens {
		if gen == nil {
			return nil, fmt.Errorf("Generate: generator %d: %w", i, ErrNilGenerator)
		}
		var err error
		if pts, err = gen(pts, cfg); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}

	return dedupe(pts), nil
}

// Circle places n points evenly on a circle of radius scale around origin,
// starting at angle 0 and turning counter-clockwise.
func Circle(n int) Generator {
	return func(dst []geom.Point, cfg config) ([]geom.Point, error) {
		if n < minCircle {
			return dst, fmt.Errorf("%s: n=%d < min=%d: %w", methodCircle, n, minCircle, ErrTooFewPoints)
		}
		step := 2 * math.Pi / float64(n)
		for i := 0; i < n; i++ {
			dst = append(dst, polar(cfg, cfg.scale, step*float64(i)))
		}

		return dst, nil
	}
}

// Grid places rows×cols points spaced scale apart, origin at the lower left.
// Rows and columns are collinear, which makes the point-on-segment rule bite.
func Grid(rows, cols int) Generator {
	return func(dst []geom.Point, cfg config) ([]geom.Point, error) {
		if rows < 1 || cols < 1 {
			return dst, fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewPoints)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				dst = append(dst, cfg.origin.Add(geom.Pt(float64(c)*cfg.scale, float64(r)*cfg.scale)))
			}
		}

		return dst, nil
	}
}

// Star places 2n points alternating between radius scale and scale/2.
func Star(n int) Generator {
	return func(dst []geom.Point, cfg config) ([]geom.Point, error) {
		if n < minStar {
			return dst, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStar, ErrTooFewPoints)
		}
		step := math.Pi / float64(n)
		for i := 0; i < 2*n; i++ {
			r := cfg.scale
			if i%2 == 1 {
				r /= 2
			}
			dst = append(dst, polar(cfg, r, step*float64(i)))
		}

		return dst, nil
	}
}

// Random places n points uniformly in the scale×scale square at origin.
// Requires WithSeed or WithRand.
func Random(n int) Generator {
	return func(dst []geom.Point, cfg config) ([]geom.Point, error) {
		if n < 1 {
			return dst, fmt.Errorf("%s: n=%d: %w", methodRandom, n, ErrTooFewPoints)
		}
		if cfg.rng == nil {
			return dst, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			x := cfg.rng.Float64() * cfg.scale
			y := cfg.rng.Float64() * cfg.scale
			dst = append(dst, cfg.origin.Add(geom.Pt(x, y)))
		}

		return dst, nil
	}
}

func polar(cfg config, r, theta float64) geom.Point {
	return cfg.origin.Add(geom.Pt(r*math.Cos(theta), r*math.Sin(theta)))
}

// dedupe drops repeated points, keeping first occurrences in order.
func dedupe(pts []geom.Point) []geom.Point {
	seen := make(map[geom.Point]struct{}, len(pts))
	out := pts[:0]
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
