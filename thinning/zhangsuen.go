package thinning

import "github.com/Hub-er/skeletonAlgo/raster"

// ZhangSuen is the default thinning strategy: iterative two-sub-pass
// morphological thinning with deferred deletion. It preserves
// 8-connectivity of the foreground and converges to a one-pixel-wide
// skeleton for simply-connected, border-free shapes.
//
// The engine mutates the raster in place, one full iteration at a time;
// all arithmetic inside the loop is integer arithmetic over {0,1}.
type ZhangSuen struct{}

// Name implements Strategy.
func (ZhangSuen) Name() string { return "zhang-suen" }

// Thin runs sub-pass 0 then sub-pass 1 repeatedly until a full iteration
// deletes no pixels (fixed point), the iteration bound is exhausted, or
// opts.Cancel requests an early stop. Border pixels pass through unchanged.
// Returns ErrNilRaster or ErrTooSmall before touching the raster.
// Complexity: O(W×H) per iteration, O(W×H) memory for the marker plane.
func (zs ZhangSuen) Thin(r *raster.Raster, opts Options) (Result, error) {
	if r == nil {
		return Result{}, ErrNilRaster
	}
	if r.Width < 3 || r.Height < 3 {
		return Result{}, ErrTooSmall
	}
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	res := Result{
		Strategy:         zs.Name(),
		ForegroundBefore: r.ForegroundCount(),
	}
	// Marker plane reused across sub-passes; deletions are recorded here
	// during the read-only scan and applied only after the scan completes.
	marker := make([]bool, r.Width*r.Height)

	for res.Iterations < maxIter {
		if opts.Cancel != nil && opts.Cancel() {
			break
		}
		d0 := subPass(r, 0, marker)
		d1 := subPass(r, 1, marker)
		res.Iterations++
		res.SubPassChanges = append(res.SubPassChanges, SubPassDelta{d0, d1})
		// Sub-passes only delete, so zero deletions ⇔ fixed point.
		if d0+d1 == 0 {
			res.Converged = true
			break
		}
	}

	res.ForegroundAfter = res.ForegroundBefore - res.Changed()
	return res, nil
}

// subPass scans every interior foreground pixel with the raster unmodified,
// marks the pixels satisfying the Zhang-Suen deletion conditions for the
// given sub-pass (0 or 1), then zeroes the marked pixels. Returns the
// number of deletions. Applying deletions only after the full scan keeps
// the result independent of scan order.
func subPass(r *raster.Raster, pass int, marker []bool) int {
	width, height := r.Width, r.Height
	for i := range marker {
		marker[i] = false
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if r.Get(x, y) == 0 {
				continue
			}
			// 8 neighbors clockwise from north.
			n := int(r.Get(x, y-1))
			ne := int(r.Get(x+1, y-1))
			e := int(r.Get(x+1, y))
			se := int(r.Get(x+1, y+1))
			s := int(r.Get(x, y+1))
			sw := int(r.Get(x-1, y+1))
			w := int(r.Get(x-1, y))
			nw := int(r.Get(x-1, y-1))

			// A: 0→1 transitions around the circular neighbor sequence.
			a := b2i(n == 0 && ne == 1) +
				b2i(ne == 0 && e == 1) +
				b2i(e == 0 && se == 1) +
				b2i(se == 0 && s == 1) +
				b2i(s == 0 && sw == 1) +
				b2i(sw == 0 && w == 1) +
				b2i(w == 0 && nw == 1) +
				b2i(nw == 0 && n == 1)

			// B: foreground neighbor count.
			b := n + ne + e + se + s + sw + w + nw

			// Connectivity guards differ between sub-passes.
			var m1, m2 int
			if pass == 0 {
				m1, m2 = n*e*s, e*s*w
			} else {
				m1, m2 = n*e*w, n*s*w
			}

			if a == 1 && b >= 2 && b <= 6 && m1 == 0 && m2 == 0 {
				marker[r.Index(x, y)] = true
			}
		}
	}

	deleted := 0
	for i, m := range marker {
		if m {
			x, y := r.Coordinate(i)
			r.Set(x, y, 0)
			deleted++
		}
	}
	return deleted
}

// b2i converts a condition to its {0,1} contribution.
func b2i(cond bool) int {
	if cond {
		return 1
	}
	return 0
}
