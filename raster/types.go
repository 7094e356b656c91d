// Package raster defines the core grid types shared by the thinning,
// contour and comparison packages of github.com/Hub-er/skeletonAlgo.
package raster

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbor offset table for the connectivity,
// clockwise starting north.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Point is an integer pixel coordinate, 0 ≤ X < W and 0 ≤ Y < H.
type Point struct {
	X, Y int
}

// Raster is a W×H binary pixel grid stored row-major: cell (x,y) lives at
// index y*Width+x, and every cell holds 0 (background) or 1 (foreground).
// The zero value is unusable; construct via New, FromPixels, FromImage or
// FromBits.
type Raster struct {
	Width, Height int
	pix           []uint8
}

// Luma threshold and weights for the color→binary conversion.
// A pixel is foreground iff 0.299R+0.587G+0.114B, truncated to an integer,
// is strictly greater than ForegroundThreshold.
const ForegroundThreshold = 128

// Packed 0xAARRGGBB colors produced by ToPixels.
const (
	// White is the packed color of a foreground cell.
	White uint32 = 0xFFFFFFFF
	// Black is the packed color of a background cell.
	Black uint32 = 0xFF000000
)
