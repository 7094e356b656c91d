// Package compare runs several thinning strategies on one input and
// reports their quality and speed side by side.
//
// What:
//
//   - Run clones the source raster once per strategy, times each run and
//     collects a Report: surviving point count, Conn8 segment count,
//     elapsed wall time and the strategy's own Result diagnostics.
//   - Summary condenses a report list into aggregate statistics, including
//     speed ratios against the first (baseline) strategy.
//
// Why:
//
//   - The center-approximation strategy trades fidelity for speed; whether
//     the trade is acceptable for a given stroke corpus is an empirical
//     question, answered by running both strategies on real contours and
//     comparing the numbers.
//
// Reports are data: the package never logs and never writes files. Pair it
// with package render to persist the per-strategy rasters.
//
// Errors:
//
//   - ErrNilRaster: nil source raster.
//   - ErrNoStrategies: empty strategy list.
//   - ErrNoReports: Summary over an empty report list.
package compare
