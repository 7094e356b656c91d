package raster

import "errors"

// Sentinel errors for raster construction and conversion.
var (
	// ErrInvalidSize indicates a zero or negative width or height.
	ErrInvalidSize = errors.New("raster: width and height must be positive")
	// ErrLengthMismatch indicates a pixel buffer whose length differs from W×H.
	ErrLengthMismatch = errors.New("raster: pixel buffer length must equal width*height")
	// ErrNonRectangular indicates rows of differing lengths in a 2D literal.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrNilImage indicates a nil image was passed to FromImage.
	ErrNilImage = errors.New("raster: input image must not be nil")
)
