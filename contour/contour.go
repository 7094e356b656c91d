package contour

import (
	"errors"
	"math"
	"sort"

	"github.com/Hub-er/skeletonAlgo/raster"
)

// Margin is the fixed number of background pixels added on every side of
// the contour's bounding box. It keeps foreground strictly away from the
// raster border, which the thinning engine requires.
const Margin = 10

// ErrTooFewPoints indicates a contour with fewer than three points,
// which cannot enclose any area.
var ErrTooFewPoints = errors.New("contour: a closed contour needs at least three points")

// Point is a contour point in stroke coordinates.
type Point struct {
	X, Y float64
}

// Rasterize fills the closed polygon described by points into a new
// raster sized to the contour's bounding box plus Margin pixels on all
// sides. The polygon is closed implicitly (the last point connects back
// to the first). Coverage is decided per pixel center with the even-odd
// rule; output pixels are strictly binary.
func Rasterize(points []Point) (*raster.Raster, error) {
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	offX := math.Floor(minX) - Margin
	offY := math.Floor(minY) - Margin
	w := int(math.Ceil(maxX)-math.Floor(minX)) + 2*Margin + 1
	h := int(math.Ceil(maxY)-math.Floor(minY)) + 2*Margin + 1

	r, err := raster.New(w, h)
	if err != nil {
		return nil, err
	}

	// Translate the contour into raster coordinates once.
	poly := make([]Point, len(points))
	for i, p := range points {
		poly[i] = Point{X: p.X - offX, Y: p.Y - offY}
	}

	crossings := make([]float64, 0, len(poly))
	for y := 0; y < h; y++ {
		yc := float64(y) + 0.5
		crossings = crossings[:0]
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			// Half-open edge rule: count an edge iff yc lies in [min, max).
			if (a.Y <= yc && b.Y > yc) || (b.Y <= yc && a.Y > yc) {
				t := (yc - a.Y) / (b.Y - a.Y)
				crossings = append(crossings, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(crossings)
		for k := 0; k+1 < len(crossings); k += 2 {
			x0 := int(math.Ceil(crossings[k] - 0.5))
			for x := max(x0, 0); x < w && float64(x)+0.5 < crossings[k+1]; x++ {
				r.Set(x, y, 1)
			}
		}
	}

	return r, nil
}
