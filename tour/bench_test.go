package tour_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/longtour/tour"
)

func benchmarkBuild(b *testing.B, n int) {
	pts := randomPoints(rand.New(rand.NewSource(42)), n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tour.BuildLongTour(pts, tour.WithMaxSteps(1_000_000))
	}
}

func BenchmarkBuildLongTour_8(b *testing.B)  { benchmarkBuild(b, 8) }
func BenchmarkBuildLongTour_12(b *testing.B) { benchmarkBuild(b, 12) }
