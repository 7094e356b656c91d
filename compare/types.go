// Package compare defines the report and summary types for the comparison
// harness of github.com/Hub-er/skeletonAlgo.
package compare

import (
	"errors"
	"time"

	"github.com/Hub-er/skeletonAlgo/thinning"
)

// Sentinel errors for the comparison harness.
var (
	// ErrNilRaster indicates a nil source raster.
	ErrNilRaster = errors.New("compare: source raster must not be nil")
	// ErrNoStrategies indicates an empty strategy list.
	ErrNoStrategies = errors.New("compare: at least one strategy is required")
	// ErrNoReports indicates Summary was called with no reports.
	ErrNoReports = errors.New("compare: at least one report is required")
)

// Report records one strategy's run on the shared source raster.
type Report struct {
	// Strategy is the strategy name.
	Strategy string
	// Points is the number of surviving skeleton coordinates.
	Points int
	// Segments is the number of Conn8-connected skeleton components.
	// A well-formed single stroke should yield exactly one.
	Segments int
	// Elapsed is the wall time of the thinning run alone (cloning and
	// extraction excluded).
	Elapsed time.Duration
	// Result carries the strategy's own diagnostics.
	Result thinning.Result
}

// Stats aggregates a report list.
type Stats struct {
	// MeanPoints, MinPoints and MaxPoints summarize the surviving point
	// counts across strategies.
	MeanPoints float64
	MinPoints  float64
	MaxPoints  float64
	// SpeedRatios holds, per report, Elapsed divided by the first report's
	// Elapsed. The baseline entry is 1 by construction.
	SpeedRatios []float64
}
