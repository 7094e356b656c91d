package thinning

import "github.com/Hub-er/skeletonAlgo/raster"

// centerFraction is the share of a 3×3 neighborhood (9 cells including the
// pixel itself) that must be foreground for the pixel to survive: 60%,
// i.e. at least 6 of 9 cells.
const centerFraction = 0.6

// CenterApproximation is a non-iterative, low-fidelity thinning strategy:
// a single pass that keeps an interior foreground pixel iff at least 60%
// of its 3×3 neighborhood is foreground. It is much cheaper than ZhangSuen
// but approximate: the result is neither guaranteed one pixel wide nor
// topologically connected. Use it for previews, never as a correctness
// equivalent of ZhangSuen.
type CenterApproximation struct{}

// Name implements Strategy.
func (CenterApproximation) Name() string { return "center-approximation" }

// Thin implements Strategy. The decision for every pixel is taken against
// the unmodified input: survivors are computed into a fresh plane and
// written back in one step, so scan order cannot influence the result.
// Border pixels pass through unchanged.
// Complexity: O(W×H) time and memory.
func (ca CenterApproximation) Thin(r *raster.Raster, opts Options) (Result, error) {
	if r == nil {
		return Result{}, ErrNilRaster
	}
	if r.Width < 3 || r.Height < 3 {
		return Result{}, ErrTooSmall
	}

	res := Result{
		Strategy:         ca.Name(),
		ForegroundBefore: r.ForegroundCount(),
		Converged:        true,
		Iterations:       1,
	}

	keep := make([]bool, r.Width*r.Height)
	for y := 1; y < r.Height-1; y++ {
		for x := 1; x < r.Width-1; x++ {
			if r.Get(x, y) == 0 {
				continue
			}
			count := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					count += int(r.Get(x+dx, y+dy))
				}
			}
			if float64(count) >= 9*centerFraction {
				keep[r.Index(x, y)] = true
			}
		}
	}

	deleted := 0
	for y := 1; y < r.Height-1; y++ {
		for x := 1; x < r.Width-1; x++ {
			if r.Get(x, y) == 1 && !keep[r.Index(x, y)] {
				r.Set(x, y, 0)
				deleted++
			}
		}
	}

	res.SubPassChanges = []SubPassDelta{{deleted, 0}}
	res.ForegroundAfter = res.ForegroundBefore - deleted
	return res, nil
}
