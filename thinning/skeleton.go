package thinning

import "github.com/Hub-er/skeletonAlgo/raster"

// ExtractSkeleton scans the raster row-major (y ascending, then x
// ascending) and collects the coordinates of every foreground pixel.
// The output order is deterministic and duplicate-free; it carries no
// semantic meaning beyond reproducibility. The raster is not modified and
// the returned slice shares no storage with it.
// Complexity: O(W×H) time, O(points) memory.
func ExtractSkeleton(r *raster.Raster) []raster.Point {
	if r == nil {
		return nil
	}
	var points []raster.Point
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if r.Get(x, y) == 1 {
				points = append(points, raster.Point{X: x, Y: y})
			}
		}
	}
	return points
}

// Skeletonize is the package-level convenience path: it thins r in place
// with the given strategy (ZhangSuen when strategy is nil) and extracts
// the surviving coordinates.
func Skeletonize(r *raster.Raster, strategy Strategy, opts Options) ([]raster.Point, Result, error) {
	if strategy == nil {
		strategy = ZhangSuen{}
	}
	res, err := strategy.Thin(r, opts)
	if err != nil {
		return nil, Result{}, err
	}
	return ExtractSkeleton(r), res, nil
}
