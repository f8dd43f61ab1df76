package optimizer

import (
	"testing"
)

func TestRemoveBacktracks_ShortInputUnchanged(t *testing.T) {
	track := Track{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.001},
		{Lat: 0, Lon: 0.002},
	}

	got, removed := RemoveBacktracks(track, DefaultBacktrackOptions())
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
	if len(got) != len(track) {
		t.Errorf("len = %d, want %d", len(got), len(track))
	}
}

func TestRemoveBacktracks_StraightTrackUntouched(t *testing.T) {
	// Points ~111 m apart heading east; nothing ever comes back near an
	// earlier position.
	var track Track
	for i := 0; i < 20; i++ {
		track = append(track, point(0, float64(i)*0.001))
	}

	got, removed := RemoveBacktracks(track, DefaultBacktrackOptions())
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
	if len(got) != len(track) {
		t.Errorf("len = %d, want %d", len(got), len(track))
	}
}

// A reversal excursion: the vehicle leaves the road at p2, drives out ~80 m
// and returns to within a couple of meters of p2 before continuing. The
// excursion points must be collapsed and counted as one removed segment.
func TestRemoveBacktracks_CollapsesExcursion(t *testing.T) {
	track := Track{
		point(0, 0),             // p0
		point(0, 0.001),         // p1
		point(0, 0.002),         // p2 departure point
		point(0.0004, 0.002),    // detour out
		point(0.00072, 0.002),   // detour apex, ~80 m from p2
		point(0.0005, 0.0011),   // detour back
		point(0.00001, 0.002),   // ~1 m from p2: revisit
		point(0, 0.003),         // continues
		point(0, 0.004),
	}

	got, removed := RemoveBacktracks(track, DefaultBacktrackOptions())

	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if len(got) >= len(track) {
		t.Fatalf("expected the detour to shrink the track: %d -> %d", len(track), len(got))
	}
	for _, p := range got {
		if p == track[3] || p == track[4] || p == track[5] {
			t.Errorf("detour point survived: %+v", p)
		}
	}
	if got[len(got)-1] != track[len(track)-1] {
		t.Errorf("last point not preserved: %+v", got[len(got)-1])
	}
}

func TestRemoveBacktracks_LookaheadBoundsDetection(t *testing.T) {
	track := Track{
		point(0, 0),
		point(0, 0.001),
		point(0, 0.002),
		point(0.0004, 0.002),
		point(0.00072, 0.002),
		point(0.0005, 0.0011),
		point(0.00001, 0.002),
		point(0, 0.003),
		point(0, 0.004),
	}

	opts := DefaultBacktrackOptions()
	opts.Lookahead = 3 // the scan window starts 3 ahead, so nothing qualifies

	got, removed := RemoveBacktracks(track, opts)
	if removed != 0 {
		t.Errorf("removed = %d, want 0 with a closed window", removed)
	}
	if len(got) != len(track) {
		t.Errorf("len = %d, want %d", len(got), len(track))
	}
}
