package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers

	// MetersPerDegree is the approximate length of one degree of latitude.
	MetersPerDegree = 111320.0
)

// HaversineDistance calculates the great-circle distance between two points in meters
// using the Haversine formula. Symmetric, and zero for identical points; antipodal
// input resolves to half the circumference rather than a domain error.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Distance is HaversineDistance over Point values.
func Distance(a, b Point) float64 {
	return HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
}

// SegmentAngle returns the turning angle at cur, in degrees, between the segment
// vectors prev->cur and cur->next taken as planar vectors in (lat,lon) space.
// 0 means the heading is unchanged, values near 180 mean a full reversal.
// A zero-length segment yields 0.
func SegmentAngle(prev, cur, next Point) float64 {
	v1Lat := cur.Lat - prev.Lat
	v1Lon := cur.Lon - prev.Lon
	v2Lat := next.Lat - cur.Lat
	v2Lon := next.Lon - cur.Lon

	mag1 := math.Sqrt(v1Lat*v1Lat + v1Lon*v1Lon)
	mag2 := math.Sqrt(v2Lat*v2Lat + v2Lon*v2Lon)
	if mag1 == 0 || mag2 == 0 {
		return 0
	}

	cos := (v1Lat*v2Lat + v1Lon*v2Lon) / (mag1 * mag2)
	// Floating error can push the ratio slightly outside acos's domain.
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi
}
