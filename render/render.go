package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/Hub-er/skeletonAlgo/raster"
)

// SavePNG writes the raster as a black/white PNG file.
func SavePNG(r *raster.Raster, filename string) error {
	return SavePNGImage(r.ToImage(), filename)
}

// SavePNGImage writes any image as a PNG file. Handy for persisting
// Overlay results next to plain raster dumps.
func SavePNGImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SaveScaledPNG writes the raster as a PNG upscaled by an integer factor
// using nearest-neighbor interpolation, which keeps every pixel a sharp
// black or white block. Factors below 1 are treated as 1.
func SaveScaledPNG(r *raster.Raster, filename string, factor int) error {
	if factor < 1 {
		factor = 1
	}
	src := r.ToImage()
	dst := image.NewGray(image.Rect(0, 0, r.Width*factor, r.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return SavePNGImage(dst, filename)
}

// Overlay renders the source shape in gray and each skeleton point list on
// top of it in its own saturated accent color, so the outputs of several
// strategies can be compared in one image. src is typically the original
// (unthinned) raster and the point lists come from
// thinning.ExtractSkeleton. The result shares no storage with the inputs.
func Overlay(src *raster.Raster, skeletons ...[]raster.Point) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, src.Width, src.Height))
	shape := color.RGBA{R: 96, G: 96, B: 96, A: 255}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if src.Get(x, y) == 1 {
				img.SetRGBA(x, y, shape)
			} else {
				img.SetRGBA(x, y, color.RGBA{A: 255})
			}
		}
	}
	for i, points := range skeletons {
		ar, ag, ab := accentColor(i).RGB255()
		accent := color.RGBA{R: ar, G: ag, B: ab, A: 255}
		for _, p := range points {
			if src.InBounds(p.X, p.Y) {
				img.SetRGBA(p.X, p.Y, accent)
			}
		}
	}
	return img
}

// accentColor returns the i-th overlay color, stepping the hue so multiple
// strategies drawn side by side stay distinguishable.
func accentColor(i int) colorful.Color {
	hue := float64((30 + 137*i) % 360)
	return colorful.Hsv(hue, 0.9, 1.0)
}
