package optimizer

import (
	"github.com/vialtrack/route-optimizer-go/internal/spatial"
)

// BacktrackOptions bounds the backtrack scan. The windows are explicit
// configuration so tests can shrink them; together they keep the worst case
// at O(n * Lookahead * Lookback) instead of O(n²).
type BacktrackOptions struct {
	// Threshold is the revisit radius in meters.
	Threshold float64
	// Lookahead is how many upcoming raw points to scan for a revisit.
	Lookahead int
	// Lookback is how many recently retained points each candidate is
	// compared against.
	Lookback int
}

// DefaultBacktrackOptions returns the production thresholds: 50 m revisit
// radius, 50 points ahead, 10 retained points back.
func DefaultBacktrackOptions() BacktrackOptions {
	return BacktrackOptions{
		Threshold: 50.0,
		Lookahead: 50,
		Lookback:  10,
	}
}

// RemoveBacktracks collapses excursions where the track returns to a vicinity
// it already passed through, such as a vehicle reversing or looping. When an
// upcoming point within the lookahead window lands inside Threshold meters of
// a recently retained point, everything strictly between the current position
// and that point is treated as a detour and skipped. Returns the collapsed
// track and the number of removed detour segments.
//
// This is a bounded heuristic, not an exact shortest-loop detector: it can
// occasionally collapse legitimate close-parallel road segments, and detours
// longer than the lookahead window are kept. Inputs of length <= 3 are
// returned unchanged (copied) with a count of 0.
func RemoveBacktracks(track Track, opts BacktrackOptions) (Track, int) {
	if len(track) <= 3 {
		return track.Clone(), 0
	}

	cleaned := make(Track, 0, len(track))
	removed := 0

	for i := 0; i < len(track); i++ {
		cleaned = append(cleaned, track[i])

		if len(cleaned) < 3 {
			continue
		}

		limit := i + opts.Lookahead
		if limit > len(track) {
			limit = len(track)
		}
		start := len(cleaned) - opts.Lookback
		if start < 0 {
			start = 0
		}

	scan:
		// Candidates begin 3 points ahead; anything nearer is normal driving,
		// not a detour worth collapsing.
		for j := i + 3; j < limit; j++ {
			for k := start; k < len(cleaned); k++ {
				if spatial.Distance(cleaned[k], track[j]) < opts.Threshold {
					// Revisit found: jump to j (the loop increment lands there).
					i = j - 1
					removed++
					break scan
				}
			}
		}
	}

	return cleaned, removed
}
