package raster

// New constructs an all-background Raster of the given dimensions.
// Returns ErrInvalidSize if w ≤ 0 or h ≤ 0.
// Complexity: O(W×H) time and memory.
func New(w, h int) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	return &Raster{Width: w, Height: h, pix: make([]uint8, w*h)}, nil
}

// FromBits constructs a Raster from a non-empty, rectangular 2D slice.
// Any non-zero cell becomes foreground. The input is copied, never aliased.
// Returns ErrInvalidSize if bits has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Intended for fixtures and tests; production inputs arrive via FromPixels.
func FromBits(bits [][]int) (*Raster, error) {
	if len(bits) == 0 || len(bits[0]) == 0 {
		return nil, ErrInvalidSize
	}
	h, w := len(bits), len(bits[0])
	r := &Raster{Width: w, Height: h, pix: make([]uint8, w*h)}
	for y, row := range bits {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, v := range row {
			if v != 0 {
				r.pix[y*w+x] = 1
			}
		}
	}
	return r, nil
}

// InBounds reports whether (x,y) lies within the raster boundaries.
// Complexity: O(1).
func (r *Raster) InBounds(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// Index maps (x,y) to its row-major index: y*Width + x.
// Complexity: O(1).
func (r *Raster) Index(x, y int) int {
	return y*r.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (r *Raster) Coordinate(idx int) (x, y int) {
	return idx % r.Width, idx / r.Width
}

// Get returns the cell value at (x,y). The coordinate must be in bounds.
func (r *Raster) Get(x, y int) uint8 {
	return r.pix[y*r.Width+x]
}

// Set writes v (clamped to {0,1}) at (x,y). The coordinate must be in bounds.
func (r *Raster) Set(x, y int, v uint8) {
	if v != 0 {
		v = 1
	}
	r.pix[y*r.Width+x] = v
}

// Clone returns an independent deep copy of the raster.
func (r *Raster) Clone() *Raster {
	pix := make([]uint8, len(r.pix))
	copy(pix, r.pix)
	return &Raster{Width: r.Width, Height: r.Height, pix: pix}
}

// Equal reports whether both rasters have identical dimensions and cells.
func (r *Raster) Equal(other *Raster) bool {
	if other == nil || r.Width != other.Width || r.Height != other.Height {
		return false
	}
	for i, v := range r.pix {
		if v != other.pix[i] {
			return false
		}
	}
	return true
}

// Diff counts cells that differ between two rasters of equal dimensions.
// Returns -1 when the dimensions differ.
func (r *Raster) Diff(other *Raster) int {
	if other == nil || r.Width != other.Width || r.Height != other.Height {
		return -1
	}
	n := 0
	for i, v := range r.pix {
		if v != other.pix[i] {
			n++
		}
	}
	return n
}

// ForegroundCount returns the number of foreground cells.
// Complexity: O(W×H).
func (r *Raster) ForegroundCount() int {
	n := 0
	for _, v := range r.pix {
		if v == 1 {
			n++
		}
	}
	return n
}

// FillRect sets every cell of the half-open rectangle [x0,x1)×[y0,y1) to
// foreground, clipped to the raster bounds. Convenience for building
// fixture shapes.
func (r *Raster) FillRect(x0, y0, x1, y1 int) {
	for y := max(y0, 0); y < min(y1, r.Height); y++ {
		for x := max(x0, 0); x < min(x1, r.Width); x++ {
			r.pix[y*r.Width+x] = 1
		}
	}
}
