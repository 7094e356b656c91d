// Package contour rasterizes a closed stroke contour into a binary raster
// suitable for thinning.
//
// What:
//
//   - Rasterize fills the polygon described by an ordered contour point
//     list (implicitly closed, last point connecting back to the first)
//     into a fresh raster sized to the contour's bounding box plus a fixed
//     margin of Margin pixels on all sides.
//
// Why:
//
//   - The thinning engine never evaluates border pixels, so it assumes
//     foreground never touches the raster border. Sizing the raster to
//     bbox+margin guarantees that assumption for any contour.
//
// Filling uses even-odd scanline coverage sampled at pixel centers, with
// no anti-aliasing: thinning needs sharp binary edges.
//
// Complexity: O(H×n + H×k log k) time for n contour points and k
// crossings per scanline; O(W×H) memory for the raster.
//
// Errors:
//
//   - ErrTooFewPoints: a closed polygon needs at least three points.
package contour
