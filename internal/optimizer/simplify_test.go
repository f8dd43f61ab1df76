package optimizer

import (
	"testing"
)

func TestSimplify_ShortInputUnchanged(t *testing.T) {
	track := Track{point(0, 0), point(0, 0.001)}
	got := Simplify(track, 22)
	if len(got) != 2 || got[0] != track[0] || got[1] != track[1] {
		t.Errorf("Simplify(2 points) = %+v", got)
	}
}

func TestSimplify_HugeEpsilonCollapsesToEndpoints(t *testing.T) {
	track := zigzag(9, 0.001, 0.002)

	got := Simplify(track, 1e9)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != track[0] || got[1] != track[len(track)-1] {
		t.Errorf("endpoints wrong: %+v", got)
	}
}

func TestSimplify_ZeroEpsilonKeepsDeviatingPoints(t *testing.T) {
	// Every interior point deviates from its chord, so epsilon 0 keeps all.
	track := zigzag(7, 0.0005)

	got := Simplify(track, 0)
	if len(got) != len(track) {
		t.Errorf("len = %d, want %d", len(got), len(track))
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	track := zigzag(15, 0.00012, 0.00027, 0.00063)

	once := Simplify(track, epsilonMedium)
	twice := Simplify(once, epsilonMedium)

	if len(once) != len(twice) {
		t.Fatalf("not idempotent: %d -> %d points", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("point %d changed on re-simplify: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestSimplify_FinerToleranceKeepsMore(t *testing.T) {
	// Wiggles of ~13 m, ~30 m and ~70 m: each tolerance tier prunes a
	// different subset.
	track := zigzag(31, 0.00012, 0.00027, 0.00063)

	advanced := Simplify(track, epsilonAdvanced)
	medium := Simplify(track, epsilonMedium)
	basic := Simplify(track, epsilonBasic)

	if len(advanced) < len(medium) || len(medium) < len(basic) {
		t.Errorf("tolerance ordering violated: advanced=%d medium=%d basic=%d",
			len(advanced), len(medium), len(basic))
	}
	if len(advanced) <= len(basic) {
		t.Errorf("expected advanced to retain more points than basic: %d vs %d",
			len(advanced), len(basic))
	}
}

func TestSimplify_DoesNotMutateInput(t *testing.T) {
	track := zigzag(9, 0.0005)
	original := track.Clone()

	Simplify(track, 1e9)

	for i := range track {
		if track[i] != original[i] {
			t.Fatalf("input mutated at %d", i)
		}
	}
}
