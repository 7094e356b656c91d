package thinning_test

import (
	"testing"

	"github.com/Hub-er/skeletonAlgo/raster"
	"github.com/Hub-er/skeletonAlgo/thinning"
)

// benchDisc builds the shared benchmark input once: a filled disc close to
// the raster border, the worst realistic case for iteration count.
func benchDisc(n, radius int) *raster.Raster {
	r, _ := raster.New(n, n)
	c := n / 2
	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			dx, dy := x-c, y-c
			if dx*dx+dy*dy <= radius*radius {
				r.Set(x, y, 1)
			}
		}
	}
	return r
}

// BenchmarkZhangSuen measures a full convergence run on a 200×200 disc.
// Each run works on a fresh clone so every iteration starts from the same
// unthinned input.
func BenchmarkZhangSuen(b *testing.B) {
	src := benchDisc(200, 90)
	opts := thinning.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		work := src.Clone()
		if _, err := (thinning.ZhangSuen{}).Thin(work, opts); err != nil {
			b.Fatalf("Thin failed: %v", err)
		}
	}
}

// BenchmarkCenterApproximation measures the single-pass heuristic on the
// same input, for comparison with BenchmarkZhangSuen.
func BenchmarkCenterApproximation(b *testing.B) {
	src := benchDisc(200, 90)
	opts := thinning.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		work := src.Clone()
		if _, err := (thinning.CenterApproximation{}).Thin(work, opts); err != nil {
			b.Fatalf("Thin failed: %v", err)
		}
	}
}

// BenchmarkExtractSkeleton measures extraction over a converged raster.
func BenchmarkExtractSkeleton(b *testing.B) {
	r := benchDisc(200, 90)
	if _, err := (thinning.ZhangSuen{}).Thin(r, thinning.DefaultOptions()); err != nil {
		b.Fatalf("setup Thin failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = thinning.ExtractSkeleton(r)
	}
}
