package raster

import (
	"image"
	"image/color"
)

// luma returns the BT.601 weighted brightness of an 8-bit RGB triple,
// truncated to an integer. Truncation (not rounding) keeps the strict
// 128-boundary rule exact: luma 128 is background, 129 is foreground.
func luma(r, g, b uint8) int {
	return int(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
}

// FromPixels constructs a Raster by thresholding a packed 0xAARRGGBB buffer.
// A pixel becomes foreground iff its luma is strictly greater than
// ForegroundThreshold; the alpha channel is ignored.
// Returns ErrInvalidSize if w ≤ 0 or h ≤ 0,
// ErrLengthMismatch if len(pixels) != w*h.
// Complexity: O(W×H) time and memory.
func FromPixels(pixels []uint32, w, h int) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	if len(pixels) != w*h {
		return nil, ErrLengthMismatch
	}
	r := &Raster{Width: w, Height: h, pix: make([]uint8, w*h)}
	for i, p := range pixels {
		cr := uint8(p >> 16)
		cg := uint8(p >> 8)
		cb := uint8(p)
		if luma(cr, cg, cb) > ForegroundThreshold {
			r.pix[i] = 1
		}
	}
	return r, nil
}

// ToPixels renders the raster as a packed 0xAARRGGBB buffer:
// foreground → opaque white, background → opaque black, no intermediate
// shades. The returned buffer is an independent copy with no aliasing back
// into the raster.
func (r *Raster) ToPixels() []uint32 {
	out := make([]uint32, len(r.pix))
	for i, v := range r.pix {
		if v == 1 {
			out[i] = White
		} else {
			out[i] = Black
		}
	}
	return out
}

// FromImage constructs a Raster by thresholding any image.Image with the
// same luma rule as FromPixels. Returns ErrNilImage for a nil image and
// ErrInvalidSize for an empty bounds rectangle.
func FromImage(img image.Image) (*Raster, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	r := &Raster{Width: w, Height: h, pix: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cr, cg, cb, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if luma(uint8(cr>>8), uint8(cg>>8), uint8(cb>>8)) > ForegroundThreshold {
				r.pix[y*w+x] = 1
			}
		}
	}
	return r, nil
}

// ToImage renders the raster as a grayscale image: foreground → 255,
// background → 0. The result shares no storage with the raster.
func (r *Raster) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if r.pix[y*r.Width+x] == 1 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
