// Package skeletonalgo reduces filled, rasterized stroke shapes to
// one-pixel-wide topological skeletons.
//
// 🚀 What is skeletonAlgo?
//
//	A small, deterministic library for morphological thinning of binary
//	rasters, built around the Zhang-Suen algorithm. It is the raster side
//	of a handwriting pipeline: a stroke's filled contour goes in, a
//	centerline point list comes out, ready for stroke matching & scoring.
//
// ✨ Key features:
//   - Zhang-Suen thinning with deferred deletion and a convergence bound
//   - interchangeable strategies (exact engine vs. fast approximation)
//   - diagnostics as data: iteration counts, per-sub-pass deltas, timings
//   - strict binary rasters with exact luma-128 threshold conversion
//   - contour rasterization with a border-safe margin
//
// Under the hood, everything is organized per concern:
//
//	raster/   — binary grid type, color/image conversion, components
//	thinning/ — the core engine, strategies, skeleton extraction
//	contour/  — closed-contour polygon fill (bbox + margin)
//	render/   — PNG/SVG export and overlays for diagnostics
//	compare/  — side-by-side strategy comparison harness
//
// Quick ASCII example (3-wide bar → centerline):
//
//	###        .#.
//	###   →    .#.
//	###        .#.
//
// See each package's doc.go for contracts, complexity and errors.
package skeletonalgo
