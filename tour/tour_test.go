package tour_test

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longtour/geom"
	"github.com/katalvlaran/longtour/tour"
)

// shortestPath is the minimum Hamiltonian path length over all orders,
// crossings allowed. Brute force; small n only.
func shortestPath(pts []geom.Point) float64 {
	n := len(pts)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			var total float64
			for i := 0; i+1 < n; i++ {
				total += geom.Distance(pts[perm[i]], pts[perm[i+1]])
			}
			best = math.Min(best, total)
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return best
}

func randomPoints(rng *rand.Rand, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(rng.Float64()*100, rng.Float64()*100)
	}

	return pts
}

func TestBuildLongTour_ConvexQuadrilateral(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 3), geom.Pt(0, 3)}

	res, err := tour.BuildLongTour(pts)
	require.NoError(t, err)
	require.Len(t, res.Segments, 3)
	require.Len(t, res.Order, 4)
	require.NoError(t, tour.Validate(pts, res.Segments))
	require.NoError(t, res.Validate())

	// Longest-first from (0,0): the diagonal dead-ends, the bottom edge wins.
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(0, 3), geom.Pt(4, 3)}, res.Order)
	assert.InDelta(t, 13.0, res.Length, 1e-12)
	assert.GreaterOrEqual(t, res.Length, shortestPath(pts))
	assert.Positive(t, res.Stats.Backtracks)
}

func TestBuildLongTour_SinglePoint(t *testing.T) {
	res, err := tour.BuildLongTour([]geom.Point{geom.Pt(1, 1)})
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(1, 1)}, res.Order)
	assert.Empty(t, res.Segments)
	assert.Zero(t, res.Length)
}

func TestBuildLongTour_TwoPoints(t *testing.T) {
	res, err := tour.BuildLongTour([]geom.Point{geom.Pt(3, 4), geom.Pt(0, 0)})
	require.NoError(t, err)
	require.Len(t, res.Segments, 1)
	assert.Equal(t, geom.Seg(geom.Pt(0, 0), geom.Pt(3, 4)), res.Segments[0])
	assert.Equal(t, 5.0, res.Length)
}

func TestBuildLongTour_CollinearForcesOrder(t *testing.T) {
	pts := []geom.Point{geom.Pt(2, 0), geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(1, 0)}

	res, err := tour.BuildLongTour(pts)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(3, 0)}, res.Order)
	assert.Equal(t, 3.0, res.Length)
}

func TestBuildLongTour_Errors(t *testing.T) {
	_, err := tour.BuildLongTour(nil)
	assert.ErrorIs(t, err, tour.ErrNoPoints)

	_, err = tour.BuildLongTour([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(0, 0)})
	assert.ErrorIs(t, err, tour.ErrNoTourFound)
}

func TestBuildLongTour_StepBudget(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 3), geom.Pt(0, 3)}

	_, err := tour.BuildLongTour(pts, tour.WithMaxSteps(1))
	assert.ErrorIs(t, err, tour.ErrSearchExhausted)

	full, err := tour.BuildLongTour(pts)
	require.NoError(t, err)
	exact, err := tour.BuildLongTour(pts, tour.WithMaxSteps(full.Stats.Steps))
	require.NoError(t, err)
	assert.Equal(t, full.Order, exact.Order)
}

func TestBuildLongTour_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tour.BuildLongTour([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 0)}, tour.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildLongTour_TimeLimitGenerous(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pts := randomPoints(rng, 7)

	res, err := tour.BuildLongTour(pts, tour.WithTimeLimit(time.Minute))
	require.NoError(t, err)
	require.NoError(t, tour.Validate(pts, res.Segments))
}

func TestOptions_Panics(t *testing.T) {
	opts := tour.DefaultOptions()
	assert.Panics(t, func() { tour.WithMaxSteps(-1)(&opts) })
	assert.Panics(t, func() { tour.WithTimeLimit(-time.Second)(&opts) })

	tour.WithContext(nil)(&opts) //nolint:staticcheck // nil is ignored
	assert.NotNil(t, opts.Ctx)
}

func TestBuildLongTour_RandomSetsAreSimplePaths(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		n := 2 + rng.Intn(6)
		pts := randomPoints(rng, n)

		res, err := tour.BuildLongTour(pts)
		require.NoError(t, err, "trial %d", trial)
		require.Len(t, res.Segments, n-1)
		require.NoError(t, tour.Validate(pts, res.Segments), "trial %d", trial)
		assert.InDelta(t, geom.PathLength(res.Segments), res.Length, 1e-9)
		assert.GreaterOrEqual(t, res.Length+1e-9, shortestPath(pts))
	}
}

func TestBuildLongTour_DeterministicAcrossInputOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pts := randomPoints(rng, 8)

	first, err := tour.BuildLongTour(pts)
	require.NoError(t, err)
	again, err := tour.BuildLongTour(pts)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	shuffled := append([]geom.Point(nil), pts...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	third, err := tour.BuildLongTour(shuffled)
	require.NoError(t, err)
	assert.Equal(t, first.Segments, third.Segments)
}

func TestValidate_Rejects(t *testing.T) {
	a, b, c, d := geom.Pt(0, 0), geom.Pt(2, 1), geom.Pt(1, 0), geom.Pt(0, 2)
	pts := []geom.Point{a, b, c, d}

	cases := []struct {
		name string
		pts  []geom.Point
		segs []geom.Segment
	}{
		{"too few segments", pts, []geom.Segment{geom.Seg(a, c)}},
		{"no segments", pts, nil},
		{"unknown endpoint", pts, []geom.Segment{geom.Seg(a, c), geom.Seg(c, b), geom.Seg(b, geom.Pt(9, 9))}},
		{"degenerate", pts, []geom.Segment{geom.Seg(a, c), geom.Seg(c, b), geom.Seg(b, b)}},
		{"degree three", pts, []geom.Segment{geom.Seg(a, c), geom.Seg(a, b), geom.Seg(a, d)}},
		{"disconnected", pts, []geom.Segment{geom.Seg(a, c), geom.Seg(c, a), geom.Seg(b, d)}},
		{"duplicate points", []geom.Point{a, a}, []geom.Segment{geom.Seg(a, a)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tour.Validate(tc.pts, tc.segs), tour.ErrInvalidTour)
		})
	}

	assert.ErrorIs(t, tour.Validate(nil, nil), tour.ErrNoPoints)
}

func TestValidate_CrossingAndPointOnSegment(t *testing.T) {
	a, b, c, d := geom.Pt(0, 0), geom.Pt(2, 1), geom.Pt(1, 0), geom.Pt(0, 2)

	valid := []geom.Segment{geom.Seg(d, a), geom.Seg(a, b), geom.Seg(b, c)}
	assert.NoError(t, tour.Validate([]geom.Point{a, b, c, d}, valid))

	// c-d and a-b cross at (0.8, 0.4).
	crossing := []geom.Segment{geom.Seg(c, d), geom.Seg(d, a), geom.Seg(a, b)}
	err := tour.Validate([]geom.Point{a, b, c, d}, crossing)
	require.ErrorIs(t, err, tour.ErrInvalidTour)
	assert.Contains(t, err.Error(), "cross")

	// m sits on a-e even though nothing crosses.
	e, m := geom.Pt(4, 0), geom.Pt(2, 0)
	onEdge := []geom.Segment{geom.Seg(a, e), geom.Seg(e, d), geom.Seg(d, m)}
	err = tour.Validate([]geom.Point{a, e, d, m}, onEdge)
	require.ErrorIs(t, err, tour.ErrInvalidTour)
	assert.Contains(t, err.Error(), "lies on segment")
}
