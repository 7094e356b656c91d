// Package thinning reduces a filled binary shape to a one-pixel-wide
// skeleton by iterative morphological thinning.
//
// What:
//
//   - ZhangSuen is the default Strategy: the classic two-sub-pass
//     Zhang-Suen algorithm with deferred deletion, iterated to a fixed
//     point (or a configurable iteration bound).
//   - CenterApproximation is a single-pass heuristic Strategy for preview
//     or throughput-sensitive use; it does not guarantee a one-pixel-wide
//     or connected result.
//   - ExtractSkeleton collects the surviving foreground coordinates of a
//     converged raster in deterministic row-major order.
//   - Result carries per-run diagnostics: iteration count, convergence
//     flag, and pixels deleted per sub-pass.
//
// Why:
//
//   - A handwritten stroke's filled contour must collapse to its
//     centerline before it can be matched against a reference stroke;
//     Zhang-Suen preserves 8-connectivity while shrinking, so the
//     centerline keeps the stroke's topology.
//
// Algorithm (one full iteration = sub-pass 0 then sub-pass 1):
//
//	For every interior foreground pixel, read the 8 neighbors clockwise
//	from north (N, NE, E, SE, S, SW, W, NW) and compute
//	  A  = number of 0→1 transitions around the circular sequence,
//	  B  = sum of the 8 neighbor values,
//	  m1 = N·E·S (sub-pass 0) or N·E·W (sub-pass 1),
//	  m2 = E·S·W (sub-pass 0) or N·S·W (sub-pass 1).
//	Mark the pixel iff A == 1 && 2 ≤ B ≤ 6 && m1 == 0 && m2 == 0, then
//	zero all marked pixels only after the whole sub-pass has been scanned.
//	A == 1 keeps the pixel 8-connected after removal; isolated pixels
//	(A == 0, B == 0) are never marked. Border pixels are never evaluated.
//
// Complexity:
//
//   - One full iteration: O(W×H) time, O(W×H) memory for the marker plane.
//   - Full run: O(W×H×I), I = iterations to converge (≈ half the maximum
//     stroke width for well-formed inputs).
//
// Errors:
//
//   - ErrNilRaster: nil raster handed to a strategy.
//   - ErrTooSmall: raster under 3×3 has no interior to thin.
//
// Non-convergence within Options.MaxIterations is reported through
// Result.Converged, not as an error: the raster is still valid, and
// repeated non-convergence usually indicates malformed upstream
// rasterization (foreground touching the border) rather than a runtime
// fault.
package thinning
