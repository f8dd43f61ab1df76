package optimizer

// defaultLoopTolerance is the revisit radius in meters DetectLoops would use.
const defaultLoopTolerance = 100.0

// Loop marks a closed excursion between two indices of a track.
type Loop struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// DetectLoops finds closed loops in a track within the given tolerance.
//
// Not implemented: the legacy system declared loop detection but never built
// it, and its callers treat zero loops as a valid, meaningful answer. The
// stub is kept so reports carry an explicit loops_removed field rather than
// omitting it.
func DetectLoops(track Track, tolerance float64) []Loop {
	return nil
}
