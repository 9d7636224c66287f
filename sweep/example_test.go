package sweep_test

import (
	"fmt"

	"github.com/katalvlaran/longtour/geom"
	"github.com/katalvlaran/longtour/sweep"
)

// ExampleFindFirstIntersection checks two drawn roads for a crossing.
func ExampleFindFirstIntersection() {
	roads := []geom.Segment{
		geom.Seg(geom.Pt(0, 0), geom.Pt(2, 1)),
		geom.Seg(geom.Pt(1, 0), geom.Pt(0, 2)),
	}
	res, ok := sweep.FindFirstIntersection(roads)
	fmt.Println(ok, res.First, res.Second)
	fmt.Printf("at (%.1f, %.1f)\n", res.Point.X, res.Point.Y)

	touching := []geom.Segment{
		geom.Seg(geom.Pt(0, 0), geom.Pt(1, 0)),
		geom.Seg(geom.Pt(1, 0), geom.Pt(2, 1)),
	}
	fmt.Println(sweep.HasIntersection(touching))

	// Output:
	// true 0 1
	// at (0.8, 0.4)
	// false
}
