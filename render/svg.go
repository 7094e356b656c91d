package render

import (
	"bytes"

	"github.com/gotranspile/gotrace"

	"github.com/Hub-er/skeletonAlgo/raster"
)

// TraceSVG vectorizes the raster's foreground into an SVG document string
// by tracing it with gotrace. Useful for inspecting contour rasters and
// skeletons in a browser at any zoom level.
func TraceSVG(r *raster.Raster) (string, error) {
	bm := gotrace.BitmapFromGray(r.ToImage(), nil)

	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := gotrace.Render("svg", nil, &buf, paths, r.Width, r.Height); err != nil {
		return "", err
	}
	return buf.String(), nil
}
