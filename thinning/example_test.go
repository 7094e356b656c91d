package thinning_test

import (
	"fmt"

	"github.com/Hub-er/skeletonAlgo/raster"
	"github.com/Hub-er/skeletonAlgo/thinning"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ZhangSuen on a thick vertical bar
////////////////////////////////////////////////////////////////////////////////

// ExampleZhangSuen_Thin demonstrates collapsing a 3-wide filled bar to its
// one-pixel-wide centerline.
// Scenario:
//
//   - 15×15 raster, foreground filling columns 6..8 × rows 3..11.
//   - The engine erodes one layer per iteration from each side; the
//     surviving pixels all sit on the center column x=7.
//
// Complexity: O(W·H) per iteration.
func ExampleZhangSuen_Thin() {
	r, _ := raster.New(15, 15)
	r.FillRect(6, 3, 9, 12)

	res, _ := thinning.ZhangSuen{}.Thin(r, thinning.DefaultOptions())
	points := thinning.ExtractSkeleton(r)

	fmt.Println("converged:", res.Converged, "iterations:", res.Iterations)
	fmt.Println("points:", len(points), "first:", points[0], "last:", points[len(points)-1])

	// Output:
	// converged: true iterations: 2
	// points: 6 first: {7 4} last: {7 9}
}

////////////////////////////////////////////////////////////////////////////////
// Example: Skeletonize convenience
////////////////////////////////////////////////////////////////////////////////

// ExampleSkeletonize demonstrates the one-call path from a filled square to
// its skeleton point list, with the default strategy.
func ExampleSkeletonize() {
	r, _ := raster.New(15, 15)
	r.FillRect(5, 5, 10, 10)

	points, res, _ := thinning.Skeletonize(r, nil, thinning.DefaultOptions())

	fmt.Println("strategy:", res.Strategy)
	fmt.Println("skeleton:", points)

	// Output:
	// strategy: zhang-suen
	// skeleton: [{7 7}]
}
