package optimizer

import (
	"github.com/vialtrack/route-optimizer-go/internal/spatial"
)

// Simplify reduces a track with the Ramer-Douglas-Peucker algorithm.
// epsilon is the maximum allowed deviation in meters from the simplified
// path; deviation is measured with a local equirectangular projection so the
// tolerance means the same thing at any latitude. Inputs of length <= 2 are
// returned as-is (copied). Simplifying an already-simplified track with the
// same epsilon yields no further change.
func Simplify(track Track, epsilon float64) Track {
	if len(track) <= 2 {
		return track.Clone()
	}
	return douglasPeucker(track, epsilon).Clone()
}

func douglasPeucker(points Track, epsilon float64) Track {
	if len(points) <= 2 {
		return points
	}

	end := len(points) - 1
	maxDist := 0.0
	maxIndex := 0

	for i := 1; i < end; i++ {
		dist := spatial.PerpendicularDistance(points[i], points[0], points[end])
		if dist > maxDist {
			maxDist = dist
			maxIndex = i
		}
	}

	// If the farthest point deviates more than epsilon, keep it and simplify
	// both halves; otherwise the whole run collapses to its endpoints.
	if maxDist > epsilon {
		left := douglasPeucker(points[:maxIndex+1], epsilon)
		right := douglasPeucker(points[maxIndex:], epsilon)

		// Concatenate, dropping the shared point at maxIndex.
		result := make(Track, 0, len(left)+len(right)-1)
		result = append(result, left[:len(left)-1]...)
		result = append(result, right...)
		return result
	}

	return Track{points[0], points[end]}
}
