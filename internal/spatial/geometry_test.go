package spatial

import (
	"math"
	"testing"
)

func TestCentroid(t *testing.T) {
	points := []Point{
		{Lat: 0, Lon: 0},
		{Lat: 2, Lon: 0},
		{Lat: 0, Lon: 2},
		{Lat: 2, Lon: 2},
	}

	c := Centroid(points)
	if c.Lat != 1 || c.Lon != 1 {
		t.Errorf("Centroid() = %+v, want {1 1}", c)
	}

	if c := Centroid(nil); c != (Point{}) {
		t.Errorf("Centroid(nil) = %+v, want zero point", c)
	}
}

func TestBoundingBox(t *testing.T) {
	points := []Point{
		{Lat: 1, Lon: -3},
		{Lat: -2, Lon: 5},
		{Lat: 4, Lon: 0},
	}

	minLat, minLon, maxLat, maxLon := BoundingBox(points)
	if minLat != -2 || minLon != -3 || maxLat != 4 || maxLon != 5 {
		t.Errorf("BoundingBox() = %f %f %f %f", minLat, minLon, maxLat, maxLon)
	}
}

func TestPathLength(t *testing.T) {
	if got := PathLength(nil); got != 0 {
		t.Errorf("PathLength(nil) = %f, want 0", got)
	}
	if got := PathLength([]Point{{Lat: 1, Lon: 1}}); got != 0 {
		t.Errorf("PathLength(single) = %f, want 0", got)
	}

	// Appending points must never decrease the total.
	points := []Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.01},
		{Lat: 0.01, Lon: 0.01},
		{Lat: 0.01, Lon: 0.02},
	}

	prev := 0.0
	for i := 1; i <= len(points); i++ {
		got := PathLength(points[:i])
		if got < prev {
			t.Fatalf("PathLength decreased from %f to %f at %d points", prev, got, i)
		}
		prev = got
	}

	want := Distance(points[0], points[1]) + Distance(points[1], points[2]) + Distance(points[2], points[3])
	if math.Abs(prev-want) > 1e-9 {
		t.Errorf("PathLength() = %f, want %f", prev, want)
	}
}

func TestPerpendicularDistance(t *testing.T) {
	// Point 0.001 degrees of latitude off a chord along the equator.
	a := Point{Lat: 0, Lon: 0}
	b := Point{Lat: 0, Lon: 0.01}
	p := Point{Lat: 0.001, Lon: 0.005}

	got := PerpendicularDistance(p, a, b)
	want := 0.001 * MetersPerDegree
	if math.Abs(got-want) > 1.0 {
		t.Errorf("PerpendicularDistance() = %f, want ~%f", got, want)
	}

	// Point on the chord.
	onLine := Point{Lat: 0, Lon: 0.005}
	if got := PerpendicularDistance(onLine, a, b); got > 1e-6 {
		t.Errorf("PerpendicularDistance(on line) = %f, want 0", got)
	}

	// Degenerate chord falls back to direct distance.
	got = PerpendicularDistance(p, a, a)
	want = Distance(p, a)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PerpendicularDistance(degenerate) = %f, want %f", got, want)
	}
}
