package sweep_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/longtour/geom"
	"github.com/katalvlaran/longtour/sweep"
)

// starPolygon returns the edges of a simple rippled polygon with n vertices.
// It has no self-intersection, so the sweep runs to completion.
func starPolygon(n int) []geom.Segment {
	pts := make([]geom.Point, n)
	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 10 + float64((i*7)%5)
		pts[i] = geom.Pt(r*math.Cos(th), r*math.Sin(th))
	}
	segs := make([]geom.Segment, n)
	for i = 0; i < n; i++ {
		segs[i] = geom.Seg(pts[i], pts[(i+1)%n])
	}

	return segs
}

func BenchmarkFindFirstIntersection_NoCrossing1k(b *testing.B) {
	segs := starPolygon(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if sweep.HasIntersection(segs) {
			b.Fatal("unexpected intersection")
		}
	}
}

func BenchmarkFindFirstIntersection_EarlyExit1k(b *testing.B) {
	segs := starPolygon(1000)
	segs = append(segs, geom.Seg(geom.Pt(-20, -0.5), geom.Pt(20, 0.5)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !sweep.HasIntersection(segs) {
			b.Fatal("missed intersection")
		}
	}
}
