package spatial

import (
	"math"
	"testing"
)

func TestHaversineDistance_KnownDistances(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		wantMeters float64
		tolerance  float64
	}{
		{
			name: "same point",
			lat1: 40.4168, lon1: -3.7038,
			lat2: 40.4168, lon2: -3.7038,
			wantMeters: 0,
			tolerance:  0.001,
		},
		{
			name: "one degree of longitude at equator (~111km)",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 1,
			wantMeters: 111195,
			tolerance:  200,
		},
		{
			name: "Madrid to Barcelona (~505km)",
			lat1: 40.4168, lon1: -3.7038,
			lat2: 41.3874, lon2: 2.1686,
			wantMeters: 505000,
			tolerance:  5000,
		},
		{
			name: "antipodal points (~half circumference)",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 180,
			wantMeters: math.Pi * EarthRadiusMeters,
			tolerance:  1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.wantMeters) > tt.tolerance {
				t.Errorf("HaversineDistance() = %f, want %f (±%f)", got, tt.wantMeters, tt.tolerance)
			}
		})
	}
}

func TestHaversineDistance_Symmetry(t *testing.T) {
	d1 := HaversineDistance(40.4168, -3.7038, 41.3874, 2.1686)
	d2 := HaversineDistance(41.3874, 2.1686, 40.4168, -3.7038)
	if math.Abs(d1-d2) > 1e-6 {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}

func TestSegmentAngle(t *testing.T) {
	tests := []struct {
		name            string
		prev, cur, next Point
		wantDeg         float64
		tolerance       float64
	}{
		{
			name: "straight line",
			prev: Point{0, 0}, cur: Point{0, 0.001}, next: Point{0, 0.002},
			wantDeg: 0, tolerance: 0.001,
		},
		{
			name: "full reversal",
			prev: Point{0, 0}, cur: Point{0, 0.001}, next: Point{0, 0},
			wantDeg: 180, tolerance: 0.001,
		},
		{
			name: "right angle",
			prev: Point{0, 0}, cur: Point{0, 0.001}, next: Point{0.001, 0.001},
			wantDeg: 90, tolerance: 0.001,
		},
		{
			name: "zero-length first segment",
			prev: Point{0, 0}, cur: Point{0, 0}, next: Point{0, 0.001},
			wantDeg: 0, tolerance: 0.001,
		},
		{
			name: "zero-length second segment",
			prev: Point{0, 0}, cur: Point{0, 0.001}, next: Point{0, 0.001},
			wantDeg: 0, tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentAngle(tt.prev, tt.cur, tt.next)
			if math.Abs(got-tt.wantDeg) > tt.tolerance {
				t.Errorf("SegmentAngle() = %f, want %f", got, tt.wantDeg)
			}
		})
	}
}
