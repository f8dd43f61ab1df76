package optimizer

import "math"

// Report quantifies an optimization: point and distance reduction plus a
// derived efficiency score. It is a pure value computed once per comparison.
type Report struct {
	OriginalPoints           int     `json:"original_points"`
	OptimizedPoints          int     `json:"optimized_points"`
	PointsReduction          int     `json:"points_reduction"`
	OriginalDistanceKm       float64 `json:"original_distance_km"`
	OptimizedDistanceKm      float64 `json:"optimized_distance_km"`
	DistanceReductionKm      float64 `json:"distance_reduction_km"`
	DistanceReductionPercent float64 `json:"distance_reduction_percent"`
	LoopsRemoved             int     `json:"loops_removed"`
	EfficiencyScore          float64 `json:"efficiency_score"`
}

// Validate compares an original track against its optimized form and returns
// the reduction metrics. It is a pure function: no side effects, and it does
// not care how either track was produced. All rounding happens here at the
// report boundary, so repeated calls are exact and reproducible.
func Validate(original, optimized Track) Report {
	originalDist := original.TotalDistance()
	optimizedDist := optimized.TotalDistance()

	reduction := originalDist - optimizedDist
	reductionPercent := 0.0
	if originalDist > 0 {
		reductionPercent = reduction / originalDist * 100
	}

	efficiency := 0.0
	pointsReduction := len(original) - len(optimized)
	if len(original) > 0 {
		efficiency = float64(pointsReduction) / float64(len(original)) * 100
	}

	return Report{
		OriginalPoints:           len(original),
		OptimizedPoints:          len(optimized),
		PointsReduction:          pointsReduction,
		OriginalDistanceKm:       round2(originalDist / 1000),
		OptimizedDistanceKm:      round2(optimizedDist / 1000),
		DistanceReductionKm:      round2(reduction / 1000),
		DistanceReductionPercent: round1(reductionPercent),
		LoopsRemoved:             len(DetectLoops(optimized, defaultLoopTolerance)),
		EfficiencyScore:          round1(efficiency),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
