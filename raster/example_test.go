package raster_test

import (
	"fmt"

	"github.com/Hub-er/skeletonAlgo/raster"
)

// ExampleFromPixels demonstrates thresholding a packed color buffer into a
// binary raster. Bright pixels (luma > 128) become foreground.
func ExampleFromPixels() {
	pixels := []uint32{
		0xFF000000, 0xFFFFFFFF, 0xFF000000,
		0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF,
	}
	r, _ := raster.FromPixels(pixels, 3, 2)

	fmt.Println("foreground:", r.ForegroundCount())
	fmt.Println("top-left:", r.Get(0, 0), "center-top:", r.Get(1, 0))

	// Output:
	// foreground: 4
	// top-left: 0 center-top: 1
}

// ExampleRaster_Components demonstrates counting connected foreground
// regions under 4- and 8-connectivity.
func ExampleRaster_Components() {
	r, _ := raster.FromBits([][]int{
		{1, 0, 0},
		{0, 1, 1},
	})

	fmt.Println("conn4:", len(r.Components(raster.Conn4)))
	fmt.Println("conn8:", len(r.Components(raster.Conn8)))

	// Output:
	// conn4: 2
	// conn8: 1
}
