package level

import (
	"fmt"

	"github.com/katalvlaran/longtour"
	"github.com/katalvlaran/longtour/board"
	"github.com/katalvlaran/longtour/tour"
)

// Start opens a fresh board for l and solves it for the reference length.
func (l Level) Start(opts ...tour.Option) (*board.Board, float64, error) {
	if len(l.Points) == 0 {
		return nil, 0, fmt.Errorf("%w: level %q", ErrTooFewPoints, l.Name)
	}
	b := board.New(l.Points)
	ref, err := b.Solve(opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("level %q: %w", l.Name, err)
	}

	return b, ref.Length, nil
}

// Campaign walks a fixed sequence of levels. It is not safe for concurrent use.
type Campaign struct {
	levels  []Level
	current int
}

// NewCampaign returns a campaign positioned at the first level.
func NewCampaign(levels []Level) (*Campaign, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, l := range levels {
		if len(l.Points) == 0 {
			return nil, fmt.Errorf("%w: level %d (%q)", ErrTooFewPoints, i, l.Name)
		}
	}

	return &Campaign{levels: append([]Level(nil), levels...)}, nil
}

// Len returns the number of levels.
func (c *Campaign) Len() int { return len(c.levels) }

// Index returns the position of the current level; Len once finished.
func (c *Campaign) Index() int { return c.current }

// Current returns the level being played; ok is false once finished.
func (c *Campaign) Current() (l Level, ok bool) {
	if c.Done() {
		return Level{}, false
	}

	return c.levels[c.current], true
}

// Advance moves to the next level and reports whether one is left.
func (c *Campaign) Advance() bool {
	if c.Done() {
		return false
	}
	c.current++
	longtour.Logger().Info("level: advance", "index", c.current, "of", len(c.levels))

	return !c.Done()
}

// Done reports whether every level has been passed.
func (c *Campaign) Done() bool { return c.current >= len(c.levels) }

// Reset returns to the first level.
func (c *Campaign) Reset() { c.current = 0 }
