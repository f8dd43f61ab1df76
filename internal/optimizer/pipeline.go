package optimizer

import (
	"fmt"
	"math"
)

// Pipeline runs the full optimization sequence: noise filter, backtrack
// remover, then curve simplifier. The stage order matters: filtering first
// keeps the simplifier from anchoring on noisy outliers, and collapsing
// backtracks before simplification keeps the simplifier from smoothing
// through a real loop.
//
// A Pipeline is a plain value holding tunables; it is safe for concurrent
// use since every run works on its own data.
type Pipeline struct {
	// MinDistance is the noise filter's minimum spacing in meters.
	MinDistance float64
	// AngleThreshold is the noise filter's spike angle in degrees.
	AngleThreshold float64
	// Backtrack bounds the backtrack remover.
	Backtrack BacktrackOptions
}

// NewPipeline returns a pipeline with the documented default thresholds.
func NewPipeline() *Pipeline {
	return &Pipeline{
		MinDistance:    DefaultMinDistance,
		AngleThreshold: DefaultAngleThreshold,
		Backtrack:      DefaultBacktrackOptions(),
	}
}

// Optimize concatenates the input tracks in order and runs the three stages
// over the combined sequence. The inputs are never mutated.
//
// Zero total points fail with ErrEmptyInput. A single point is returned
// as-is with zero distance; no stage runs. A malformed point (NaN, Inf or
// out-of-range coordinates) aborts the whole run with no partial result.
func (p *Pipeline) Optimize(tracks []Track, level Level) (*Result, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, string(level))
	}

	total := 0
	for _, t := range tracks {
		total += len(t)
	}
	if total == 0 {
		return nil, ErrEmptyInput
	}

	all := make(Track, 0, total)
	for _, t := range tracks {
		all = append(all, t...)
	}

	if err := checkPoints(all); err != nil {
		return nil, err
	}

	if len(all) == 1 {
		return &Result{Track: all, DistanceMeters: 0, Level: level}, nil
	}

	filtered := FilterNoise(all, p.MinDistance, p.AngleThreshold)
	collapsed, segmentsRemoved := RemoveBacktracks(filtered, p.Backtrack)
	simplified := Simplify(collapsed, level.Epsilon())

	return &Result{
		Track:           simplified,
		DistanceMeters:  simplified.TotalDistance(),
		SegmentsRemoved: segmentsRemoved,
		Level:           level,
	}, nil
}

// Optimize runs the pipeline with default thresholds.
func Optimize(tracks []Track, level Level) (*Result, error) {
	return NewPipeline().Optimize(tracks, level)
}

func checkPoints(track Track) error {
	for i, pt := range track {
		if math.IsNaN(pt.Lat) || math.IsNaN(pt.Lon) || math.IsInf(pt.Lat, 0) || math.IsInf(pt.Lon, 0) {
			return fmt.Errorf("malformed point at index %d: non-finite coordinates", i)
		}
		if pt.Lat < -90 || pt.Lat > 90 || pt.Lon < -180 || pt.Lon > 180 {
			return fmt.Errorf("malformed point at index %d: (%f, %f) out of range", i, pt.Lat, pt.Lon)
		}
	}
	return nil
}
