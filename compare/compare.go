package compare

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Hub-er/skeletonAlgo/raster"
	"github.com/Hub-er/skeletonAlgo/thinning"
)

// Run executes every strategy on its own clone of src and returns one
// Report per strategy, in input order. src itself is never modified, so
// the same raster can back any number of comparisons.
// Complexity: O(len(strategies)) thinning runs, each O(W×H×I).
func Run(src *raster.Raster, strategies []thinning.Strategy, opts thinning.Options) ([]Report, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if len(strategies) == 0 {
		return nil, ErrNoStrategies
	}

	reports := make([]Report, 0, len(strategies))
	for _, s := range strategies {
		work := src.Clone()
		start := time.Now()
		res, err := s.Thin(work, opts)
		elapsed := time.Since(start)
		if err != nil {
			return nil, err
		}
		reports = append(reports, Report{
			Strategy: s.Name(),
			Points:   len(thinning.ExtractSkeleton(work)),
			Segments: len(work.Components(raster.Conn8)),
			Elapsed:  elapsed,
			Result:   res,
		})
	}
	return reports, nil
}

// Summary aggregates the reports: point-count statistics across strategies
// and per-strategy speed ratios against the first report (the baseline).
func Summary(reports []Report) (Stats, error) {
	if len(reports) == 0 {
		return Stats{}, ErrNoReports
	}

	points := make([]float64, len(reports))
	ratios := make([]float64, len(reports))
	base := reports[0].Elapsed.Seconds()
	for i, rep := range reports {
		points[i] = float64(rep.Points)
		if base > 0 {
			ratios[i] = rep.Elapsed.Seconds() / base
		} else {
			ratios[i] = 1
		}
	}

	return Stats{
		MeanPoints:  stat.Mean(points, nil),
		MinPoints:   floats.Min(points),
		MaxPoints:   floats.Max(points),
		SpeedRatios: ratios,
	}, nil
}
