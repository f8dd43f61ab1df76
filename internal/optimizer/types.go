// Package optimizer implements the GPS track optimization engine: geometric
// noise filtering, backtrack removal, Douglas-Peucker simplification and
// before/after metrics over an ordered sequence of geographic points.
//
// The engine holds no state. Every function takes its inputs by value,
// returns fresh slices and never mutates what it was given, so independent
// optimization runs can execute in parallel without coordination.
package optimizer

import (
	"github.com/vialtrack/route-optimizer-go/internal/spatial"
)

// Track is an ordered sequence of GPS points. Insertion order is the
// traversal order and is semantically significant.
type Track []spatial.Point

// TotalDistance returns the sum of consecutive pairwise great-circle
// distances in meters. Tracks with fewer than two points measure 0.
func (t Track) TotalDistance() float64 {
	return spatial.PathLength(t)
}

// Clone returns an independent copy of the track.
func (t Track) Clone() Track {
	if t == nil {
		return nil
	}
	out := make(Track, len(t))
	copy(out, t)
	return out
}

// Result is the output of one pipeline run. The caller owns it; the engine
// keeps no reference to the returned track.
type Result struct {
	Track           Track   `json:"points"`
	DistanceMeters  float64 `json:"distance_m"`
	SegmentsRemoved int     `json:"segments_removed"`
	Level           Level   `json:"level"`
}
