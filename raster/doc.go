// Package raster provides the binary pixel grid underlying morphological
// thinning: a flat, row-major array of {0,1} cells with explicit
// threshold-based conversion to and from color pixel buffers.
//
// What:
//
//   - Raster wraps a W×H grid of binary cells (0 = background, 1 = foreground).
//   - FromPixels / ToPixels convert packed 0xAARRGGBB buffers at the system
//     boundary using the ITU-R BT.601 luma weights (0.299, 0.587, 0.114);
//     a pixel is foreground iff its luma is strictly greater than 128.
//   - FromImage / ToImage interoperate with the standard image package.
//   - Components identifies connected foreground regions under 4- or
//     8-connectivity.
//
// Why:
//
//   - Thinning is defined over binary grids; keeping one canonical raster
//     type confines color handling to the boundary and keeps the inner
//     loops pure integer arithmetic.
//   - Connected components let diagnostics count skeleton segments without
//     re-deriving adjacency.
//
// Complexity:
//
//   - Conversions, Clone, Diff: O(W×H) time and memory.
//   - Components: O(W×H×d), d = 4 or 8.
//
// Errors:
//
//   - ErrInvalidSize: width or height is zero or negative.
//   - ErrLengthMismatch: pixel buffer length differs from W×H.
//   - ErrNonRectangular: rows of a 2D literal have differing lengths.
//   - ErrNilImage: nil image handed to FromImage.
package raster
