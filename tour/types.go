package tour

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/longtour/geom"
)

// Sentinel errors returned by BuildLongTour and Validate.
var (
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("tour: empty point set")

	// ErrNoTourFound indicates that no simple open path through all points exists.
	ErrNoTourFound = errors.New("tour: no simple path through all points")

	// ErrSearchExhausted indicates that the step or time budget ran out
	// before the search completed.
	ErrSearchExhausted = errors.New("tour: search budget exhausted")

	// ErrInvalidTour indicates that a segment list is not a simple open path
	// through the given points.
	ErrInvalidTour = errors.New("tour: invalid tour")

	// ErrBadBudget indicates a negative MaxSteps or TimeLimit.
	ErrBadBudget = errors.New("tour: budget must be non-negative")
)

// checkEvery is how many search steps pass between deadline/context checks.
const checkEvery = 1024

// Tour is an open path through a point set.
type Tour struct {
	// Order lists the points in visiting order; len(Order) == n.
	Order []geom.Point

	// Segments joins consecutive points of Order; len(Segments) == n−1.
	Segments []geom.Segment

	// Length is the total Euclidean length of Segments.
	Length float64

	// Stats reports how much work the search did.
	Stats Stats
}

// Stats are search diagnostics.
type Stats struct {
	// Steps counts candidate edges examined.
	Steps int

	// Backtracks counts accepted edges that were later undone.
	Backtracks int
}

// Options configures BuildLongTour.
type Options struct {
	// Ctx cancels the search; defaults to context.Background().
	Ctx context.Context

	// MaxSteps caps the number of candidate edges examined. 0 means no cap.
	MaxSteps int

	// TimeLimit caps wall-clock time. 0 means no limit.
	TimeLimit time.Duration
}

// Option configures BuildLongTour.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - Background context
//   - no step cap
//   - no time limit
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxSteps:  0,
		TimeLimit: 0,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps caps the search at n candidate edges. Panics if n < 0.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadBudget.Error())
		}
		o.MaxSteps = n
	}
}

// WithTimeLimit caps the search at d of wall-clock time. Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadBudget.Error())
		}
		o.TimeLimit = d
	}
}
