package optimizer

import (
	"github.com/vialtrack/route-optimizer-go/internal/spatial"
)

// Noise filter defaults, tuned for vehicle tracks sampled every few seconds.
const (
	DefaultMinDistance    = 15.0  // meters
	DefaultAngleThreshold = 160.0 // degrees
)

// FilterNoise removes GPS jitter from a track in a single left-to-right pass.
// An interior point is dropped when it lies closer than minDistance to the
// last kept point, or when the turn through it (last kept -> current -> next
// raw point) exceeds angleThreshold degrees, which marks an out-and-back
// spike rather than a real maneuver. Dropped points are excluded from all
// subsequent comparisons.
//
// The first and last input points are always retained, so the output has at
// least two points whenever the input does. Inputs of length <= 2 are
// returned as-is (copied).
func FilterNoise(track Track, minDistance, angleThreshold float64) Track {
	if len(track) <= 2 {
		return track.Clone()
	}

	cleaned := make(Track, 1, len(track))
	cleaned[0] = track[0]

	for i := 1; i < len(track)-1; i++ {
		cur := track[i]
		prev := cleaned[len(cleaned)-1]

		if spatial.Distance(prev, cur) < minDistance {
			continue
		}

		if spatial.SegmentAngle(prev, cur, track[i+1]) > angleThreshold {
			continue
		}

		cleaned = append(cleaned, cur)
	}

	// The dedup guard must not fire on a closed loop whose interior collapsed
	// entirely: a [p, p] result still honors the two-point minimum.
	if last := track[len(track)-1]; cleaned[len(cleaned)-1] != last || len(cleaned) < 2 {
		cleaned = append(cleaned, last)
	}

	return cleaned
}
