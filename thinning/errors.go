package thinning

import "errors"

// Sentinel errors for thinning strategies.
var (
	// ErrNilRaster indicates a nil raster was passed to a strategy.
	ErrNilRaster = errors.New("thinning: raster must not be nil")
	// ErrTooSmall indicates a raster with no interior pixels (under 3×3).
	ErrTooSmall = errors.New("thinning: raster must be at least 3x3")
)
