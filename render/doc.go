// Package render persists rasters and skeletons as viewable files for
// diagnostics. It sits at the system boundary: nothing in the thinning
// core depends on it.
//
// What:
//
//   - SavePNG writes a raster as a black/white PNG.
//   - SaveScaledPNG upscales with nearest-neighbor interpolation first,
//     so tiny stroke rasters stay inspectable and binary.
//   - Overlay paints a skeleton in an accent color over its source shape.
//   - TraceSVG vectorizes a raster into an SVG document via gotrace.
//
// Errors are plain I/O and tracing errors from the underlying libraries.
package render
