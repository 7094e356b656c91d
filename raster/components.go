package raster

// Components finds all contiguous regions of foreground cells under the
// given connectivity. Returns a slice of components; each component is a
// slice of row-major cell indices in BFS discovery order, and components
// are ordered by their row-major seed cell, so the output is deterministic.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W×H×d), where d = 4 or 8.
// Memory: O(W×H) for visited flags and output.
func (r *Raster) Components(conn Connectivity) [][]int {
	seen := make([]bool, len(r.pix))
	var comps [][]int
	offsets := conn.offsets()

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if r.pix[y*r.Width+x] == 0 {
				continue
			}
			i0 := r.Index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ux, uy := r.Coordinate(u)
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !r.InBounds(vx, vy) || r.pix[vy*r.Width+vx] == 0 {
						continue
					}
					vi := r.Index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}
