package spatial

import (
	"math"
)

// Point represents a 2D point with latitude and longitude in decimal degrees (WGS-84)
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}

// Centroid calculates the geographic centroid of a set of points
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}

	return Point{
		Lat: sumLat / float64(len(points)),
		Lon: sumLon / float64(len(points)),
	}
}

// BoundingBox calculates the bounding box of a set of points
// Returns (minLat, minLon, maxLat, maxLon)
func BoundingBox(points []Point) (float64, float64, float64, float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat := points[0].Lat, points[0].Lat
	minLon, maxLon := points[0].Lon, points[0].Lon

	for _, p := range points[1:] {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lon < minLon {
			minLon = p.Lon
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
	}

	return minLat, minLon, maxLat, maxLon
}

// PathLength calculates the total length of a path (sequence of points) in meters
func PathLength(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	var totalDist float64
	for i := 1; i < len(points); i++ {
		totalDist += Distance(points[i-1], points[i])
	}

	return totalDist
}

// PerpendicularDistance calculates the distance in meters from a point to the
// chord through lineStart and lineEnd. The three points are projected onto a
// local equirectangular plane (longitude scaled by the cosine of the mean
// latitude) so the result stays in meters at any latitude. A degenerate chord
// falls back to the direct great-circle distance.
func PerpendicularDistance(point, lineStart, lineEnd Point) float64 {
	if lineStart == lineEnd {
		return Distance(point, lineStart)
	}

	cosLat := math.Cos((lineStart.Lat + lineEnd.Lat) / 2 * math.Pi / 180)

	x0, y0 := point.Lon*MetersPerDegree*cosLat, point.Lat*MetersPerDegree
	x1, y1 := lineStart.Lon*MetersPerDegree*cosLat, lineStart.Lat*MetersPerDegree
	x2, y2 := lineEnd.Lon*MetersPerDegree*cosLat, lineEnd.Lat*MetersPerDegree

	num := math.Abs((y2-y1)*x0 - (x2-x1)*y0 + x2*y1 - y2*x1)
	den := math.Hypot(y2-y1, x2-x1)
	if den == 0 {
		return Distance(point, lineStart)
	}

	return num / den
}
