// Package thinning defines the strategy interface, options and diagnostic
// result types for the thinning subpackage of github.com/Hub-er/skeletonAlgo.
package thinning

import "github.com/Hub-er/skeletonAlgo/raster"

// DefaultMaxIterations bounds the convergence loop. Well-formed inputs
// (simply-connected blobs that never touch the border) converge in a
// number of iterations proportional to their maximum stroke width, so the
// bound only trips on malformed rasters.
const DefaultMaxIterations = 1000

// Strategy thins a raster in place and reports per-run diagnostics.
// Implementations must be deterministic: identical input rasters produce
// identical output rasters and identical Results.
type Strategy interface {
	// Name identifies the strategy in comparison reports.
	Name() string
	// Thin mutates r toward a skeleton and returns run diagnostics.
	Thin(r *raster.Raster, opts Options) (Result, error)
}

// Options configures a thinning run.
//
// Fields:
//   - MaxIterations — safety bound on full iterations; values ≤ 0 fall
//     back to DefaultMaxIterations.
//   - Cancel       — optional cooperative stop, polled between full
//     iterations only. When it returns true the run stops early with a
//     valid (possibly non-converged) raster and Converged=false. It is
//     never consulted mid-iteration, so a sub-pass always completes its
//     deferred apply.
type Options struct {
	MaxIterations int
	Cancel        func() bool
}

// DefaultOptions returns Options with MaxIterations=DefaultMaxIterations
// and no cancellation hook.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// SubPassDelta records the pixels deleted by the two sub-passes of one
// full iteration: [0] for sub-pass 0, [1] for sub-pass 1.
type SubPassDelta [2]int

// Result is the diagnostic record of one thinning run. Diagnostics are
// data returned to the caller, never side effects on shared state.
type Result struct {
	// Strategy is the name of the strategy that produced this result.
	Strategy string
	// Iterations is the number of full iterations executed.
	Iterations int
	// Converged reports whether a fixed point was reached within the bound.
	// False after cancellation or bound exhaustion; the raster is still valid.
	Converged bool
	// SubPassChanges holds the per-iteration deletion counts, one entry per
	// executed full iteration.
	SubPassChanges []SubPassDelta
	// ForegroundBefore and ForegroundAfter count foreground pixels at the
	// start and end of the run.
	ForegroundBefore, ForegroundAfter int
}

// Changed returns the total number of pixels deleted across the run.
func (res Result) Changed() int {
	n := 0
	for _, d := range res.SubPassChanges {
		n += d[0] + d[1]
	}
	return n
}
